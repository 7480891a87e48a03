package main

import (
	"context"
	"fmt"

	"github.com/aretw0/lifecycle"
	"github.com/spf13/cobra"

	noteevents "github.com/aretw0/noteapp/pkg/adapters/lifecycle"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Reload and report whenever the data file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := lifecycle.NewSignalContext(cmd.Context())
			defer ctx.Stop()
			defer ctx.Cancel()

			svc, err := a.open(ctx)
			if err != nil {
				return err
			}
			events, err := svc.Watch(ctx)
			if err != nil {
				return err
			}

			source := noteevents.NewSource(events)
			if err := source.Start(ctx); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Watching %s (%d notes)\n", a.file, len(svc.Notes()))
			for ev := range lifecycle.Receive(ctx, source.Events()) {
				if err := svc.Load(context.WithoutCancel(ctx)); err != nil {
					a.logger.Warn("reload failed", "error", err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d notes\n", ev, len(svc.Notes()))
			}
			if sig := ctx.Signal(); sig != nil {
				a.logger.Debug("watch stopped", "signal", sig.String())
			}
			return nil
		},
	}
}
