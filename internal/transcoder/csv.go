package transcoder

import (
	"bytes"
	"cmp"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/DanRulev/wordtrainer/internal/models"
)

// Columns is the fixed export layout.
var Columns = []string{"originalWord", "translation", "language", "difficultyLevel", "proficiencyLevel"}

type Row struct {
	Index  int
	Fields []string
}

type Decoded struct {
	Header []string
	Rows   []Row
	Errors []models.ParseError
}

// EncodeCSV writes the header and one row per word in the given order.
func EncodeCSV(words []models.Word) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Columns); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, word := range words {
		if err := w.Write(record(word)); err != nil {
			return nil, fmt.Errorf("write csv row for %q: %w", word.OriginalWord, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func record(w models.Word) []string {
	return []string{
		w.OriginalWord,
		w.Translation,
		string(w.Language),
		strconv.Itoa(w.DifficultyLevel),
		strconv.Itoa(w.ProficiencyLevel),
	}
}

// DecodeCSV parses every row it can. Malformed rows are reported in Errors and
// skipped; decoding never stops at the first bad row.
func DecodeCSV(data []byte) Decoded {
	data, err := ToUTF8(data)
	if err != nil {
		return Decoded{Errors: []models.ParseError{{Row: 0, Reason: err.Error()}}}
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	var records [][]string
	var readErrs []models.ParseError
	var offset int64
	for index := 0; ; index++ {
		rec, err := r.Read()
		start := offset
		offset = r.InputOffset()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if !errors.As(err, &pe) {
				readErrs = append(readErrs, models.ParseError{Row: index, Reason: err.Error()})
				break
			}
			readErrs = append(readErrs, models.ParseError{Row: index, Reason: pe.Err.Error()})
			records = append(records, nil)
			continue
		}
		if raw := data[start:offset]; bytes.Contains(raw, []byte("\r\n")) {
			if kept := splitRecord(string(raw)); len(kept) == len(rec) {
				rec = kept
			}
		}
		records = append(records, rec)
	}

	decoded := collect(records)
	decoded.Errors = mergeErrors(readErrs, decoded.Errors)
	return decoded
}

// splitRecord re-reads one record the csv reader already accepted. The reader
// folds CRLF inside quoted fields into LF; this keeps the bytes as written.
func splitRecord(raw string) []string {
	for strings.HasPrefix(raw, "\n") || strings.HasPrefix(raw, "\r\n") {
		raw = raw[strings.IndexByte(raw, '\n')+1:]
	}

	var (
		fields []string
		field  strings.Builder
		quoted bool
	)
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case quoted && c == '"':
			if i+1 < len(raw) && raw[i+1] == '"' {
				field.WriteByte('"')
				i++
			} else {
				quoted = false
			}
		case quoted:
			field.WriteByte(c)
		case c == '"':
			quoted = true
		case c == ',':
			fields = append(fields, field.String())
			field.Reset()
		case c == '\n', c == '\r' && i+1 < len(raw) && raw[i+1] == '\n':
			return append(fields, field.String())
		default:
			field.WriteByte(c)
		}
	}
	return append(fields, field.String())
}

// collect checks the header and column counts. A nil record stands for a row
// the reader already rejected.
func collect(records [][]string) Decoded {
	var d Decoded
	if len(records) == 0 {
		d.Errors = append(d.Errors, models.ParseError{Row: 0, Reason: "payload is empty"})
		return d
	}

	d.Header = records[0]
	if d.Header != nil && !headerMatches(d.Header) {
		d.Errors = append(d.Errors, models.ParseError{
			Row:    0,
			Reason: fmt.Sprintf("unexpected header %q, want %q", strings.Join(d.Header, ","), strings.Join(Columns, ",")),
		})
	}

	for i, rec := range records[1:] {
		index := i + 1
		if rec == nil {
			continue
		}
		if len(rec) != len(Columns) {
			d.Errors = append(d.Errors, models.ParseError{
				Row:    index,
				Reason: fmt.Sprintf("expected %d fields, got %d", len(Columns), len(rec)),
			})
			continue
		}
		d.Rows = append(d.Rows, Row{Index: index, Fields: rec})
	}
	return d
}

func headerMatches(header []string) bool {
	if len(header) != len(Columns) {
		return false
	}
	for i, col := range Columns {
		if !strings.EqualFold(strings.TrimSpace(header[i]), col) {
			return false
		}
	}
	return true
}

func mergeErrors(a, b []models.ParseError) []models.ParseError {
	out := append(append([]models.ParseError{}, a...), b...)
	slices.SortStableFunc(out, func(x, y models.ParseError) int {
		return cmp.Compare(x.Row, y.Row)
	})
	return out
}
