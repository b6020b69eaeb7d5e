package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/Rollerskates/internal/topsis"
)

const defaultAPIURL = "http://localhost:8000"

type globalOptions struct {
	apiURL  string
	prefix  string
	timeout time.Duration
}

func (o *globalOptions) client() topsis.Client {
	return topsis.NewHTTPClient(o.apiURL, o.prefix, o.timeout)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newRootCmd(newClient func(*globalOptions) topsis.Client) *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "surveyctl",
		Short:         "Manage TOPSIS surveys from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.apiURL, "api", envOr("ROLLERSKATES_API_URL", defaultAPIURL), "TOPSIS API base URL")
	rootCmd.PersistentFlags().StringVar(&opts.prefix, "prefix", envOr("ROLLERSKATES_API_PREFIX", topsis.DefaultPrefix), "API path prefix")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "timeout for each API request")

	clientFn := func() topsis.Client { return newClient(opts) }

	rootCmd.AddCommand(
		newListCmd(clientFn),
		newShowCmd(clientFn),
		newCreateCmd(clientFn),
		newImportCmd(clientFn),
		newExportCmd(clientFn),
		newDeleteCmd(clientFn),
		newRankingCmd(clientFn),
		newWatchCmd(),
	)
	return rootCmd
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCmd((*globalOptions).client)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", topsis.ErrorMessage(err, err.Error()))
		os.Exit(1)
	}
}
