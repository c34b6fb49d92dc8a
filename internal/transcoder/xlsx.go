package transcoder

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/DanRulev/wordtrainer/internal/models"
)

const sheetName = "Sheet1"

// EncodeXLSX lays out words the same way as EncodeCSV, one sheet with a
// header row.
func EncodeXLSX(words []models.Word) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write xlsx header: %w", err)
	}

	for i, w := range words {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{w.OriginalWord, w.Translation, string(w.Language), w.DifficultyLevel, w.ProficiencyLevel}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write xlsx row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeXLSX reads the first sheet. Trailing empty cells are dropped by the
// reader, so a row missing its last columns shows up as a field count error.
func DecodeXLSX(data []byte) Decoded {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return Decoded{Errors: []models.ParseError{{Row: 0, Reason: fmt.Sprintf("open xlsx: %v", err)}}}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Decoded{Errors: []models.ParseError{{Row: 0, Reason: "workbook has no sheets"}}}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Decoded{Errors: []models.ParseError{{Row: 0, Reason: fmt.Sprintf("read sheet %q: %v", sheets[0], err)}}}
	}

	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		if len(r) == 0 {
			continue
		}
		records = append(records, r)
	}
	return collect(records)
}
