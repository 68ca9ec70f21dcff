package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/htkhiem/mpd"
	"github.com/htkhiem/mpd/internal/env"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch [subsystem ...]",
	Short: "Log server events as they happen",
	Long: `Log server events as they happen

Blocks on the idle command and prints each batch of changed
subsystems. With no arguments all subsystems are watched.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, signalStop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer signalStop()

		log, err := env.MakeLogger()
		if err != nil {
			return err
		}

		subsystems := make([]mpd.Subsystem, len(args))
		for i, arg := range args {
			subsystems[i] = mpd.Subsystem(arg)
		}

		c, err := connect(ctx)
		if err != nil {
			return err
		}
		defer c.Close()

		log.Info("Watching for events",
			zap.String("server", c.Version().String()),
			zap.Int("subsystems", len(subsystems)))

		// Close the connection on interrupt; the blocked idle read
		// fails and the loop exits.
		go func() {
			<-ctx.Done()
			c.Close()
		}()

		for {
			changed, err := c.Wait(subsystems...)
			if err != nil {
				if ctx.Err() != nil {
					log.Info("Exiting")
					return nil
				}
				return err
			}
			for _, sub := range changed {
				log.Info("Subsystem changed", zap.String("subsystem", string(sub)))
			}
		}
	},
}
