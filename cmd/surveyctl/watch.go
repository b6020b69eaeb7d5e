package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/Rollerskates/internal/hermes"
)

func newWatchCmd() *cobra.Command {
	var natsURL string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print survey events as they are published",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if natsURL == "" {
				return fmt.Errorf("no NATS URL, set --nats or ROLLERSKATES_HERMES_URL")
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))

			c, err := hermes.NewNATSClient(cmd.Context(), natsURL, logger)
			if err != nil {
				return err
			}
			defer c.Close()

			out := cmd.OutOrStdout()
			var mu sync.Mutex
			err = c.Subscribe(hermes.SubjectAll, func(subject string, data []byte) {
				mu.Lock()
				defer mu.Unlock()
				printEvent(out, subject, data)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "watching %s on %s\n", hermes.SubjectAll, natsURL)
			<-cmd.Context().Done()
			return nil
		},
	}

	cmd.Flags().StringVar(&natsURL, "nats", os.Getenv("ROLLERSKATES_HERMES_URL"), "NATS server URL")
	return cmd
}

func printEvent(w io.Writer, subject string, data []byte) {
	fmt.Fprintf(w, "%s %s\n", subject, data)
}
