package transcoder

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/DanRulev/wordtrainer/internal/models"
)

const header = "originalWord,translation,language,difficultyLevel,proficiencyLevel\n"

func sampleWords() []models.Word {
	return []models.Word{
		{OriginalWord: "café", Translation: "coffee", Language: models.LanguageFrench, DifficultyLevel: 1, ProficiencyLevel: 0},
		{OriginalWord: "déjà vu", Translation: "already seen, again", Language: models.LanguageFrench, DifficultyLevel: 3, ProficiencyLevel: 2},
		{OriginalWord: `say "hi"`, Translation: "powiedz \"cześć\"", Language: models.LanguagePolish, DifficultyLevel: 2, ProficiencyLevel: 5},
		{OriginalWord: "two\nlines", Translation: "zwei\nZeilen", Language: models.LanguageGerman, DifficultyLevel: 1, ProficiencyLevel: 1},
		{OriginalWord: "żółw", Translation: "tortuga", Language: models.LanguageSpanish, DifficultyLevel: 2, ProficiencyLevel: 3},
		{OriginalWord: "Straße", Translation: "street", Language: models.LanguageGerman, DifficultyLevel: 1, ProficiencyLevel: 4},
	}
}

func TestCSV_RoundTrip(t *testing.T) {
	t.Parallel()

	words := append(sampleWords(),
		models.Word{OriginalWord: "line one\r\nline two", Translation: "linea\r\nuno\rdos", Language: models.LanguageSpanish, DifficultyLevel: 1},
		models.Word{OriginalWord: "trailing\r\n", Translation: "\r\n", Language: models.LanguageEnglish, DifficultyLevel: 2},
	)

	data, err := EncodeCSV(words)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), header))

	decoded := DecodeCSV(data)
	require.Empty(t, decoded.Errors)
	assert.Equal(t, Columns, decoded.Header)

	got, errs := ToWords(decoded.Rows)
	require.Empty(t, errs)
	assert.Equal(t, words, got)
}

func TestDecodeCSV_CRLFLineEndings(t *testing.T) {
	t.Parallel()

	data := "originalWord,translation,language,difficultyLevel,proficiencyLevel\r\n" +
		"gato,cat,spanish,1,0\r\n" +
		"\r\n" +
		"\"say \"\"hi\"\"\",\"two\r\nlines\",english,2,3\r\n"

	decoded := DecodeCSV([]byte(data))
	require.Empty(t, decoded.Errors)
	assert.Equal(t, Columns, decoded.Header)
	require.Len(t, decoded.Rows, 2)
	assert.Equal(t, []string{"gato", "cat", "spanish", "1", "0"}, decoded.Rows[0].Fields)
	assert.Equal(t, []string{`say "hi"`, "two\r\nlines", "english", "2", "3"}, decoded.Rows[1].Fields)
}

func TestEncodeCSV_Empty(t *testing.T) {
	t.Parallel()

	data, err := EncodeCSV(nil)
	require.NoError(t, err)
	assert.Equal(t, header, string(data))
}

func TestEncodeCSV_NoBOM(t *testing.T) {
	t.Parallel()

	data, err := EncodeCSV(sampleWords()[:1])
	require.NoError(t, err)
	assert.False(t, strings.HasPrefix(string(data), "\ufeff"))
	assert.Contains(t, string(data), "café,coffee,french,1,0\n")
}

func TestDecodeCSV_RowErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantRows  int
		wantError []int
	}{
		{
			name:     "valid payload",
			input:    header + "cat,gato,spanish,1,0\ndog,perro,spanish,1,0\n",
			wantRows: 2,
		},
		{
			name:      "wrong column count in the middle",
			input:     header + "cat,gato,spanish,1,0\ndog,perro,spanish\nbird,pájaro,spanish,2,0\n",
			wantRows:  2,
			wantError: []int{2},
		},
		{
			name:      "bare quote",
			input:     header + "ca\"t,gato,spanish,1,0\ndog,perro,spanish,1,0\n",
			wantRows:  1,
			wantError: []int{1},
		},
		{
			name:      "unexpected header",
			input:     "word,meaning,lang,d,p\ncat,gato,spanish,1,0\n",
			wantRows:  1,
			wantError: []int{0},
		},
		{
			name:      "empty payload",
			input:     "",
			wantError: []int{0},
		},
		{
			name:     "header only",
			input:    header,
			wantRows: 0,
		},
		{
			name:     "blank lines are skipped",
			input:    header + "\ncat,gato,spanish,1,0\n\n",
			wantRows: 1,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			decoded := DecodeCSV([]byte(tt.input))
			assert.Len(t, decoded.Rows, tt.wantRows)

			rows := make([]int, 0, len(decoded.Errors))
			for _, e := range decoded.Errors {
				rows = append(rows, e.Row)
			}
			if len(tt.wantError) == 0 {
				assert.Empty(t, rows)
				return
			}
			assert.Equal(t, tt.wantError, rows)
		})
	}
}

func TestDecodeCSV_InvalidUTF8(t *testing.T) {
	t.Parallel()

	decoded := DecodeCSV(append([]byte(header), 0xff, 0xfe, 0xfd, '\n'))
	require.Len(t, decoded.Errors, 1)
	assert.Equal(t, 0, decoded.Errors[0].Row)
	assert.Empty(t, decoded.Rows)
}

func TestToUTF8(t *testing.T) {
	t.Parallel()

	text := header + "café,coffee,french,1,0\n"

	utf16le, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(text))
	require.NoError(t, err)
	utf16be, err := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(text))
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   []byte
		want    string
		wantErr error
	}{
		{name: "plain utf-8", input: []byte(text), want: text},
		{name: "utf-8 with bom", input: append([]byte{0xEF, 0xBB, 0xBF}, text...), want: text},
		{name: "utf-16le with bom", input: utf16le, want: text},
		{name: "utf-16be with bom", input: utf16be, want: text},
		{name: "invalid bytes", input: []byte{'a', 0xC3}, wantErr: ErrInvalidUTF8},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ToUTF8(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestPreviewCSV(t *testing.T) {
	t.Parallel()

	t.Run("one bad row rejects the payload", func(t *testing.T) {
		t.Parallel()

		p := PreviewCSV([]byte(header +
			"cat,gato,spanish,1,0\n" +
			"dog,perro,spanish,1\n" +
			"bird,pájaro,spanish,2,0\n"))

		err := p.Err()
		require.Error(t, err)

		var importErr *ImportError
		require.ErrorAs(t, err, &importErr)
		require.Len(t, importErr.Errors, 1)
		assert.Equal(t, 2, importErr.Errors[0].Row)
		assert.Contains(t, err.Error(), "row 2")

		var pe models.ParseError
		assert.True(t, errors.As(err, &pe))
	})

	t.Run("field validation", func(t *testing.T) {
		t.Parallel()

		p := PreviewCSV([]byte(header +
			"cat,gato,klingon,1,0\n" +
			" ,gato,spanish,1,0\n" +
			"cat,gato,spanish,4,0\n" +
			"cat,gato,spanish,1,9\n" +
			"cat,gato,Spanish, 2 ,0\n"))

		require.Len(t, p.Errors, 4)
		assert.Equal(t, []int{1, 2, 3, 4}, []int{p.Errors[0].Row, p.Errors[1].Row, p.Errors[2].Row, p.Errors[3].Row})
		require.Len(t, p.Words, 1)
		assert.Equal(t, models.LanguageSpanish, p.Words[0].Language)
		assert.Equal(t, 2, p.Words[0].DifficultyLevel)
	})

	t.Run("no rows", func(t *testing.T) {
		t.Parallel()

		assert.Error(t, PreviewCSV([]byte(header)).Err())
	})

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		p := PreviewCSV([]byte(header + "cat,gato,spanish,1,0\n"))
		require.NoError(t, p.Err())
		assert.Len(t, p.Words, 1)
	})
}
