package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/noteapp"
	"github.com/aretw0/noteapp/pkg/git"
)

func newHistoryCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the git log of the data file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !git.IsInstalled() {
				return fmt.Errorf("git is not installed")
			}

			path := noteapp.ResolveDataPath(a.file, noteapp.IsDevRun())
			client := git.NewClient(filepath.Dir(path), a.logger)
			if !client.IsRepo() {
				return fmt.Errorf("%s is not under version control; use --versioning", path)
			}

			entries, err := client.History(limit, filepath.Base(path))
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Fprintln(cmd.OutOrStdout(), e)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries")
	return cmd
}
