package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/aretw0/noteapp"
	"github.com/aretw0/noteapp/pkg/core"
)

// EnvFile names the environment variable holding the data file path.
const EnvFile = "NOTEAPP_FILE"

// app carries the persistent flags and the state built from them.
type app struct {
	file       string
	verbose    bool
	versioning bool
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "noteapp",
		Short: "Keep categorized notes in a single data file",
		Long: `noteapp stores notes grouped by category in one JSON file.
Every change rewrites the file atomically and can be committed to git.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
				a.logger.Warn("failed to read .env", "error", err)
			}
			return a.resolveFile()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.file, "file", "f", "", "Data file (default: $"+EnvFile+", then the nearest "+noteapp.DefaultFile+")")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&a.versioning, "versioning", false, "Commit the data file to git after every change")

	rootCmd.AddCommand(
		newAddCmd(a),
		newEditCmd(a),
		newDeleteCmd(a),
		newShowCmd(a),
		newListCmd(a),
		newSearchCmd(a),
		newCategoriesCmd(a),
		newExportCmd(a),
		newImportLegacyCmd(a),
		newHistoryCmd(a),
		newWatchCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// resolveFile picks the data file: flag, then environment, then the nearest
// existing file above the working directory, then ./notes_data.json.
func (a *app) resolveFile() error {
	if a.file != "" {
		return nil
	}
	if env := os.Getenv(EnvFile); env != "" {
		a.file = env
		return nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	if found, err := noteapp.FindDataFile(cwd, noteapp.DefaultFile); err == nil {
		a.file = found
		return nil
	}
	a.file = noteapp.DefaultFile
	return nil
}

// service builds the service without loading anything.
func (a *app) service() (*core.Service, error) {
	return noteapp.New(a.file,
		noteapp.WithAutoInit(true),
		noteapp.WithVersioning(a.versioning),
		noteapp.WithLogger(a.logger),
	)
}

// open builds the service and loads the stored notes.
func (a *app) open(ctx context.Context) (*core.Service, error) {
	svc, err := a.service()
	if err != nil {
		return nil, err
	}
	if err := svc.Load(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// isDataFile reports whether path names the configured data file.
func (a *app) isDataFile(path string) bool {
	if fi1, err := os.Stat(path); err == nil {
		if fi2, err := os.Stat(a.file); err == nil {
			return os.SameFile(fi1, fi2)
		}
	}
	p1, err1 := filepath.Abs(path)
	p2, err2 := filepath.Abs(a.file)
	return err1 == nil && err2 == nil && p1 == p2
}

// save persists svc, recording reason as the change reason.
func (a *app) save(ctx context.Context, svc *core.Service, reason string) error {
	return svc.Save(context.WithValue(ctx, core.ChangeReasonKey, reason))
}
