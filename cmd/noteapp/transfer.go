package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/noteapp"
	"github.com/aretw0/noteapp/pkg/adapters/fs"
	"github.com/aretw0/noteapp/pkg/core"
)

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Write all notes to another file (.json, .yaml, .yml or .csv)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.open(cmd.Context())
			if err != nil {
				return err
			}

			notes := svc.Notes()
			store := fs.NewStore(fs.Config{Path: args[0], Logger: a.logger})
			if err := store.SaveToFile(notes, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d note(s) to %s\n", len(notes), args[0])
			return nil
		},
	}
}

func newImportLegacyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import-legacy <path>",
		Short: "Append notes from a legacy file (category -> display strings)",
		Long: `Append notes from a legacy file (category -> display strings).
When the legacy file is the data file itself, it is converted in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := a.open(ctx)
			if errors.Is(err, core.ErrLegacyFormat) && a.isDataFile(args[0]) {
				a.logger.Info("converting legacy data file in place", "path", args[0])
				svc, err = a.service()
			}
			if err != nil {
				return err
			}

			store := fs.NewStore(fs.Config{Path: args[0], Logger: a.logger})
			notes, err := store.ImportLegacy(args[0])
			if err != nil {
				return err
			}
			for _, n := range notes {
				if err := svc.AddNote(n); err != nil {
					return err
				}
			}

			subject := fmt.Sprintf("%d notes", len(notes))
			reason := noteapp.FormatChangeReason(noteapp.CommitTypeImport, "", subject, "from "+args[0])
			if err := a.save(ctx, svc, reason); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d note(s) from %s\n", len(notes), args[0])
			return nil
		},
	}
}
