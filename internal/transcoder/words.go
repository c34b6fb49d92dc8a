package transcoder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DanRulev/wordtrainer/internal/models"
)

// ToWords converts decoded rows into words. Text fields are kept byte for
// byte; only the numeric and language columns are trimmed before parsing.
func ToWords(rows []Row) ([]models.Word, []models.ParseError) {
	words := make([]models.Word, 0, len(rows))
	var errs []models.ParseError

	for _, row := range rows {
		w, reason := parseRow(row.Fields)
		if reason != "" {
			errs = append(errs, models.ParseError{Row: row.Index, Reason: reason})
			continue
		}
		words = append(words, w)
	}
	return words, errs
}

func parseRow(fields []string) (models.Word, string) {
	if len(fields) != len(Columns) {
		return models.Word{}, fmt.Sprintf("expected %d fields, got %d", len(Columns), len(fields))
	}

	original, translation := fields[0], fields[1]
	if strings.TrimSpace(original) == "" {
		return models.Word{}, "originalWord is empty"
	}
	if strings.TrimSpace(translation) == "" {
		return models.Word{}, "translation is empty"
	}

	lang, ok := models.ParseLanguage(fields[2])
	if !ok {
		return models.Word{}, fmt.Sprintf("unknown language %q", fields[2])
	}

	difficulty, err := strconv.Atoi(strings.TrimSpace(fields[3]))
	if err != nil || difficulty < models.MinDifficulty || difficulty > models.MaxDifficulty {
		return models.Word{}, fmt.Sprintf("difficultyLevel %q must be %d-%d", fields[3], models.MinDifficulty, models.MaxDifficulty)
	}

	proficiency, err := strconv.Atoi(strings.TrimSpace(fields[4]))
	if err != nil || proficiency < models.MinProficiency || proficiency > models.MaxProficiency {
		return models.Word{}, fmt.Sprintf("proficiencyLevel %q must be %d-%d", fields[4], models.MinProficiency, models.MaxProficiency)
	}

	return models.Word{
		OriginalWord:     original,
		Translation:      translation,
		Language:         lang,
		DifficultyLevel:  difficulty,
		ProficiencyLevel: proficiency,
	}, ""
}

// Preview is what an import would send, checked locally first.
type Preview struct {
	Words  []models.Word
	Errors []models.ParseError
}

// PreviewCSV decodes and validates a CSV payload without sending anything.
func PreviewCSV(data []byte) Preview {
	return preview(DecodeCSV(data))
}

// PreviewXLSX is PreviewCSV for spreadsheet uploads.
func PreviewXLSX(data []byte) Preview {
	return preview(DecodeXLSX(data))
}

func preview(d Decoded) Preview {
	words, errs := ToWords(d.Rows)
	return Preview{Words: words, Errors: mergeErrors(d.Errors, errs)}
}

// Err returns an *ImportError when any row failed. A payload with no rows at
// all is also rejected.
func (p Preview) Err() error {
	if len(p.Errors) > 0 {
		return &ImportError{Errors: p.Errors}
	}
	if len(p.Words) == 0 {
		return &ImportError{Errors: []models.ParseError{{Row: 0, Reason: "no words to import"}}}
	}
	return nil
}

// ImportError rejects the whole payload and lists every bad row.
type ImportError struct {
	Errors []models.ParseError
}

func (e *ImportError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, pe := range e.Errors {
		msgs = append(msgs, pe.Error())
	}
	return fmt.Sprintf("import rejected, %d malformed row(s): %s", len(e.Errors), strings.Join(msgs, "; "))
}

func (e *ImportError) Unwrap() []error {
	errs := make([]error, 0, len(e.Errors))
	for _, pe := range e.Errors {
		errs = append(errs, pe)
	}
	return errs
}
