package validator

import (
	"errors"
	"testing"

	"github.com/DanRulev/wordtrainer/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		word       models.NewWord
		wantFields []string
	}{
		{
			name: "valid",
			word: models.NewWord{OriginalWord: "cat", Translation: "gato", Language: models.LanguageSpanish, DifficultyLevel: 1},
		},
		{
			name:       "empty translation",
			word:       models.NewWord{OriginalWord: "cat", Language: models.LanguageSpanish, DifficultyLevel: 1},
			wantFields: []string{"translation"},
		},
		{
			name:       "difficulty out of range and unknown language",
			word:       models.NewWord{OriginalWord: "cat", Translation: "gato", Language: "latin", DifficultyLevel: 4},
			wantFields: []string{"language", "difficultyLevel"},
		},
		{
			name:       "zero difficulty",
			word:       models.NewWord{OriginalWord: "cat", Translation: "gato", Language: models.LanguageSpanish},
			wantFields: []string{"difficultyLevel"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(tt.word)
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}

			var verrs models.ValidationErrors
			require.True(t, errors.As(err, &verrs))

			fields := make([]string, 0, len(verrs))
			for _, v := range verrs {
				fields = append(fields, v.Field)
			}
			assert.ElementsMatch(t, tt.wantFields, fields)
		})
	}
}

func TestValidateStructMessages(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(models.NewWord{OriginalWord: "cat", Translation: "gato", Language: models.LanguageSpanish, DifficultyLevel: 7})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "difficultyLevel: must be at most 3")
}
