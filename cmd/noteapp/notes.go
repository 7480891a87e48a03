package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/noteapp"
	"github.com/aretw0/noteapp/pkg/core"
)

func newAddCmd(a *app) *cobra.Command {
	var content, category string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := a.open(ctx)
			if err != nil {
				return err
			}

			n, err := svc.CreateNote(args[0], content, category)
			if err != nil {
				return err
			}
			reason := noteapp.FormatChangeReason(noteapp.CommitTypeAdd, n.Category(), n.Title(), "")
			if err := a.save(ctx, svc, reason); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %q to %s\n", n.Title(), n.Category())
			return nil
		},
	}

	cmd.Flags().StringVarP(&content, "content", "c", "", "Note text")
	cmd.Flags().StringVarP(&category, "category", "k", core.DefaultCategory, "Category name")
	return cmd
}

func newEditCmd(a *app) *cobra.Command {
	var title, content, category string

	cmd := &cobra.Command{
		Use:   "edit <title>",
		Short: "Change the title, text or category of a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var upd core.NoteUpdate
			if cmd.Flags().Changed("title") {
				upd.Title = &title
			}
			if cmd.Flags().Changed("content") {
				upd.Content = &content
			}
			if cmd.Flags().Changed("category") {
				upd.Category = &category
			}
			if upd == (core.NoteUpdate{}) {
				return fmt.Errorf("nothing to change: pass --title, --content or --category")
			}

			ctx := cmd.Context()
			svc, err := a.open(ctx)
			if err != nil {
				return err
			}
			n, err := svc.UpdateNote(args[0], upd)
			if err != nil {
				return err
			}
			reason := noteapp.FormatChangeReason(noteapp.CommitTypeEdit, n.Category(), n.Title(), "")
			if err := a.save(ctx, svc, reason); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVarP(&content, "content", "c", "", "New text")
	cmd.Flags().StringVarP(&category, "category", "k", "", "New category")
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <title>",
		Short: "Delete every note with the given title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := a.open(ctx)
			if err != nil {
				return err
			}

			removed := svc.DeleteNote(args[0])
			if removed == 0 {
				return fmt.Errorf("%w: %q", core.ErrNotFound, args[0])
			}
			reason := noteapp.FormatChangeReason(noteapp.CommitTypeDelete, "", args[0], "")
			if err := a.save(ctx, svc, reason); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d note(s)\n", removed)
			return nil
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <title>",
		Short: "Print a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			n, err := svc.FindNote(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}
