package ranking

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/xuri/excelize/v2"

	"github.com/MikeSquared-Agency/Rollerskates/internal/topsis"
)

const (
	SheetAlternatives = "Alternatives"
	SheetCriteria     = "Criteria"
	SheetMatrix       = "Decision matrix"
)

// WriteXLSX writes the alternative ranking, the criteria ranking and the
// decision matrix as a three-sheet workbook.
func WriteXLSX(w io.Writer, m *topsis.Model, r *topsis.Ranking) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetAlternatives); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeRows(f, SheetAlternatives, Alternatives(m, r)); err != nil {
		return err
	}

	if _, err := f.NewSheet(SheetCriteria); err != nil {
		return fmt.Errorf("new sheet %s: %w", SheetCriteria, err)
	}
	if err := writeRows(f, SheetCriteria, Criteria(m, r)); err != nil {
		return err
	}

	if _, err := f.NewSheet(SheetMatrix); err != nil {
		return fmt.Errorf("new sheet %s: %w", SheetMatrix, err)
	}
	matrix := BuildMatrix(m, r)
	header := []interface{}{"Alternative"}
	for _, c := range matrix.Criteria {
		header = append(header, c.Name)
	}
	if err := f.SetSheetRow(SheetMatrix, "A1", &header); err != nil {
		return fmt.Errorf("write matrix header: %w", err)
	}
	for i, row := range matrix.Rows {
		line := []interface{}{row.Alternative.Name}
		for _, v := range row.Values {
			line = append(line, v)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetMatrix, cell, &line); err != nil {
			return fmt.Errorf("write matrix row: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows []Row) error {
	header := []interface{}{"Place", "Name", "Score (%)"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write %s header: %w", sheet, err)
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		line := []interface{}{r.Place, r.Name, r.Score}
		if err := f.SetSheetRow(sheet, cell, &line); err != nil {
			return fmt.Errorf("write %s row: %w", sheet, err)
		}
	}
	return nil
}

// RenderText prints a ranking table for terminals.
func RenderText(w io.Writer, title string, rows []Row) error {
	if _, err := fmt.Fprintf(w, "%s\n", title); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Place\tName\tScore (%)\t")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t\n", r.Place, r.Name, Percent(r.Score))
	}
	return tw.Flush()
}
