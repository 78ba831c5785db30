package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/miluk-lexicon/internal/lexicon"
)

// SheetName is the worksheet holding the exported rows.
const SheetName = "Wordlist"

// Header is the first row of the worksheet.
var Header = []any{
	"ID", "Letter", "English", "Miluk form", "Variants",
	"Americanist", "IPA", "Jacobs", "Am. & IPA",
	"How to say it", "Scholar's notes", "Audio", "Jacobs texts only",
}

// WriteXLSX writes v as a single-sheet workbook.
func WriteXLSX(w io.Writer, v *lexicon.View) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("export: rename sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("export: stream writer: %w", err)
	}
	if err := sw.SetRow("A1", Header); err != nil {
		return fmt.Errorf("export: header: %w", err)
	}

	for i, rec := range Records(v) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("export: cell name: %w", err)
		}
		row := []any{
			rec.ID, rec.Letter, rec.Headword, rec.Form, strings.Join(rec.Variants, "; "),
			rec.Americanist, rec.IPA, rec.Jacobs, rec.AmericanistIPA,
			rec.HowToSay, rec.Notes, strings.Join(rec.Audio, "\n"), yesNo(rec.SecondaryOnly),
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("export: row %d: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("export: flush: %w", err)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("export: write workbook: %w", err)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
