package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/Rollerskates/internal/survey"
	"github.com/MikeSquared-Agency/Rollerskates/internal/topsis"
)

func printModels(w io.Writer, models []topsis.Model) error {
	if len(models) == 0 {
		_, err := fmt.Fprintln(w, "no surveys")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tALTERNATIVES\tCRITERIA\tEXPERTS")
	for _, m := range models {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\n", m.ModelID, m.Name, len(m.Alternatives), len(m.Criteria), len(m.ExpertInputs))
	}
	return tw.Flush()
}

func printModel(w io.Writer, m *topsis.Model) error {
	fmt.Fprintf(w, "%s (%s)\n", m.Name, m.ModelID)
	fmt.Fprintln(w, "Criteria:")
	for _, c := range m.Criteria {
		fmt.Fprintf(w, "  - %s\t%s\n", c.ID, c.Name)
	}
	fmt.Fprintln(w, "Alternatives:")
	for _, a := range m.Alternatives {
		fmt.Fprintf(w, "  - %s\t%s\n", a.ID, a.Name)
	}
	_, err := fmt.Fprintf(w, "Expert inputs: %d\n", len(m.ExpertInputs))
	return err
}

func newListCmd(client func() topsis.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List surveys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			models, err := client().ListModels(cmd.Context())
			if err != nil {
				return fmt.Errorf("list surveys: %w", err)
			}
			return printModels(cmd.OutOrStdout(), models)
		},
	}
}

func newShowCmd(client func() topsis.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show a survey's criteria and alternatives",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := client().GetModel(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get survey: %w", err)
			}
			return printModel(cmd.OutOrStdout(), m)
		},
	}
}

func newCreateCmd(client func() topsis.Client) *cobra.Command {
	form := survey.NewCreateForm()

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a survey",
		Long: `Create a survey from a name, criteria and alternatives.

Example: surveyctl create --name "Skates" -c Price -c Speed -a Quad -a Inline`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := form.Request()
			if err != nil {
				return err
			}
			m, err := client().CreateModel(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("create survey: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", m.ModelID)
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Name, "name", "", "survey name")
	cmd.Flags().StringArrayVarP(&form.Criteria, "criterion", "c", nil, "criterion name (repeatable)")
	cmd.Flags().StringArrayVarP(&form.Alternatives, "alternative", "a", nil, "alternative name (repeatable)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newImportCmd(client func() topsis.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Import a survey from an exported JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if err := survey.CheckImport(filepath.Base(path), ""); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			m, err := client().ImportModel(cmd.Context(), filepath.Base(path), f)
			if err != nil {
				return fmt.Errorf("import survey: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %s (%s)\n", m.Name, m.ModelID)
			return nil
		},
	}
}

func newExportCmd(client func() topsis.Client) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export [id]",
		Short: "Export a survey as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := client().ExportModel(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("export survey: %w", err)
			}
			body, err := survey.MarshalExport(m)
			if err != nil {
				return err
			}
			if output == "-" {
				_, err = cmd.OutOrStdout().Write(append(body, '\n'))
				return err
			}
			if output == "" {
				output = survey.ExportFilename(time.Now())
			}
			if err := os.WriteFile(output, body, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", `output file, "-" for stdout (default survey_<date>.json)`)
	return cmd
}

func newDeleteCmd(client func() topsis.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id...]",
		Short: "Delete surveys and print the ones left",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client()
			models, err := c.ListModels(cmd.Context())
			if err != nil {
				return fmt.Errorf("list surveys: %w", err)
			}
			list := survey.NewModelList(models)

			out := cmd.OutOrStdout()
			var failed int
			for _, id := range args {
				m, err := c.DeleteModel(cmd.Context(), id)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "delete %s: %s\n", id, topsis.ErrorMessage(err, err.Error()))
					failed++
					continue
				}
				list.Remove(id)
				fmt.Fprintf(out, "deleted %s (%s)\n", m.Name, id)
			}

			fmt.Fprintln(out)
			if err := printModels(out, list.Models); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d deletes failed", failed, len(args))
			}
			return nil
		},
	}
}
