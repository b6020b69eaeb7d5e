package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/MikeSquared-Agency/Rollerskates/internal/ranking"
	"github.com/MikeSquared-Agency/Rollerskates/internal/topsis"
)

func newRankingCmd(client func() topsis.Client) *cobra.Command {
	var xlsxPath string

	cmd := &cobra.Command{
		Use:   "ranking [id]",
		Short: "Print the TOPSIS ranking of a survey",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client()
			id := args[0]

			var (
				m   *topsis.Model
				rnk *topsis.Ranking
			)
			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				var err error
				m, err = c.GetModel(ctx, id)
				return err
			})
			g.Go(func() error {
				var err error
				rnk, err = c.GetRanking(ctx, id)
				return err
			})
			if err := g.Wait(); err != nil {
				return fmt.Errorf("fetch ranking: %w", err)
			}

			out := cmd.OutOrStdout()
			alts := ranking.Alternatives(m, rnk)
			if err := ranking.RenderText(out, m.Name+": alternatives", alts); err != nil {
				return err
			}
			if crit := ranking.Criteria(m, rnk); len(crit) > 0 {
				fmt.Fprintln(out)
				if err := ranking.RenderText(out, m.Name+": criteria", crit); err != nil {
					return err
				}
			}
			if sum, err := ranking.Summarize(alts); err == nil && sum.Count > 0 {
				fmt.Fprintf(out, "\nmean %s  median %s  stddev %s\n",
					ranking.Percent(sum.Mean), ranking.Percent(sum.Median), ranking.Decimal(sum.StdDev))
			}

			if xlsxPath == "" {
				return nil
			}
			f, err := os.Create(xlsxPath)
			if err != nil {
				return err
			}
			if err := ranking.WriteXLSX(f, m, rnk); err != nil {
				f.Close()
				return fmt.Errorf("write workbook: %w", err)
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(out, "wrote %s\n", xlsxPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "also write the ranking to this workbook")
	return cmd
}
