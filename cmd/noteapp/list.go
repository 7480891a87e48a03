package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aretw0/noteapp/pkg/adapters/fs"
	"github.com/aretw0/noteapp/pkg/core"
)

// queryFlags are shared by list and search.
type queryFlags struct {
	category string
	sortBy   string
	desc     bool
	asJSON   bool
}

func (q *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&q.category, "category", "k", "", "Category glob, e.g. 'Раб*'")
	cmd.Flags().StringVar(&q.sortBy, "sort", "", "Sort by title, created, modified or category")
	cmd.Flags().BoolVar(&q.desc, "desc", false, "Sort in descending order")
	cmd.Flags().BoolVar(&q.asJSON, "json", false, "Output in JSON format")
}

func (q *queryFlags) query(text string) (core.Query, error) {
	field, err := core.ParseSortField(q.sortBy)
	if err != nil {
		return core.Query{}, err
	}
	return core.Query{Text: text, Category: q.category, SortBy: field, Desc: q.desc}, nil
}

func newListCmd(a *app) *cobra.Command {
	var qf queryFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			q, err := qf.query("")
			if err != nil {
				return err
			}
			notes, err := svc.Search(q)
			if err != nil {
				return err
			}
			if qf.asJSON {
				return writeJSON(cmd.OutOrStdout(), notes)
			}
			for _, n := range notes {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", n.Category(), n.Title())
			}
			return nil
		},
	}

	qf.register(cmd)
	return cmd
}

func newSearchCmd(a *app) *cobra.Command {
	var qf queryFlags

	cmd := &cobra.Command{
		Use:   "search <text>",
		Short: "Find notes whose title or text contains the given text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			q, err := qf.query(args[0])
			if err != nil {
				return err
			}
			notes, err := svc.Search(q)
			if err != nil {
				return err
			}
			if qf.asJSON {
				return writeJSON(cmd.OutOrStdout(), notes)
			}
			for i, n := range notes {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}

	qf.register(cmd)
	return cmd
}

func newCategoriesCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories with their note counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range svc.Categories() {
				if c.Len() == 0 && !all {
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include empty categories")
	return cmd
}

// writeJSON prints notes in the data file layout.
func writeJSON(w io.Writer, notes []*core.Note) error {
	records := make([]core.Record, 0, len(notes))
	for _, n := range notes {
		records = append(records, n.ToRecord())
	}
	data, err := fs.NewJSONSerializer().Encode(records)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
