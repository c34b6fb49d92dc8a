package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanRulev/wordtrainer/internal/models"
)

func word(id int64, original string, difficulty, proficiency int) models.Word {
	return models.Word{
		ID:               id,
		OriginalWord:     original,
		Translation:      original + "-t",
		Language:         models.LanguageSpanish,
		DifficultyLevel:  difficulty,
		ProficiencyLevel: proficiency,
	}
}

func manyWords(n int) []models.Word {
	words := make([]models.Word, 0, n)
	for i := 1; i <= n; i++ {
		words = append(words, word(int64(i), fmt.Sprintf("w%02d", i), 1, 0))
	}
	return words
}

func ids(words []models.Word) []int64 {
	out := make([]int64, 0, len(words))
	for _, w := range words {
		out = append(out, w.ID)
	}
	return out
}

func TestNewTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pageSize int
		want     int
	}{
		{name: "allowed", pageSize: 25, want: 25},
		{name: "zero falls back", pageSize: 0, want: DefaultPageSize},
		{name: "unsupported falls back", pageSize: 7, want: DefaultPageSize},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := NewTable(tt.pageSize).View()
			assert.Equal(t, tt.want, v.PageSize)
			assert.Equal(t, SortByOriginalWord, v.SortKey)
			assert.Equal(t, SortAsc, v.SortDir)
			assert.Zero(t, v.Page)
		})
	}
}

func TestTable_SetSort(t *testing.T) {
	t.Parallel()

	base := NewTable(5).ReplaceCollection([]models.Word{
		word(1, "banana", 2, 3),
		word(2, "apple", 1, 5),
		word(3, "cherry", 2, 0),
		word(4, "Zebra", 3, 1),
		word(5, "ábaco", 1, 2),
	})

	t.Run("same key flips direction", func(t *testing.T) {
		t.Parallel()

		tb, err := base.SetSort(SortByOriginalWord)
		require.NoError(t, err)
		assert.Equal(t, SortDesc, tb.View().SortDir)

		tb, err = tb.SetSort(SortByOriginalWord)
		require.NoError(t, err)
		assert.Equal(t, SortAsc, tb.View().SortDir)
	})

	t.Run("new key starts ascending", func(t *testing.T) {
		t.Parallel()

		tb, _ := base.SetSort(SortByOriginalWord)
		tb, err := tb.SetSort(SortByDifficulty)
		require.NoError(t, err)
		assert.Equal(t, SortByDifficulty, tb.View().SortKey)
		assert.Equal(t, SortAsc, tb.View().SortDir)
	})

	t.Run("codepoint order for text", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []int64{4, 2, 1, 3, 5}, ids(base.Visible()))
	})

	t.Run("stable for equal keys in both directions", func(t *testing.T) {
		t.Parallel()

		tb, err := base.SetSort(SortByDifficulty)
		require.NoError(t, err)
		assert.Equal(t, []int64{2, 5, 1, 3, 4}, ids(tb.Visible()))

		tb, err = tb.SetSort(SortByDifficulty)
		require.NoError(t, err)
		assert.Equal(t, []int64{4, 1, 3, 2, 5}, ids(tb.Visible()))
	})

	t.Run("resets page", func(t *testing.T) {
		t.Parallel()

		tb := NewTable(5).ReplaceCollection(manyWords(12)).SetPage(2)
		require.Equal(t, 2, tb.View().Page)

		tb, err := tb.SetSort(SortByProficiency)
		require.NoError(t, err)
		assert.Zero(t, tb.View().Page)
	})

	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()

		tb, err := base.SetSort("translation")
		var verr models.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "sortKey", verr.Field)
		assert.Equal(t, base.View(), tb.View())
	})

	t.Run("does not modify the receiver", func(t *testing.T) {
		t.Parallel()

		_, err := base.SetSort(SortByProficiency)
		require.NoError(t, err)
		assert.Equal(t, SortByOriginalWord, base.View().SortKey)
	})
}

func TestTable_Pagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		table     func() Table
		wantPage  int
		wantIDs   []int64
		wantCount int
	}{
		{
			name:     "second page",
			table:    func() Table { return NewTable(5).ReplaceCollection(manyWords(12)).SetPage(1) },
			wantPage: 1,
			wantIDs:  []int64{6, 7, 8, 9, 10},
		},
		{
			name:     "last page is partial",
			table:    func() Table { return NewTable(5).ReplaceCollection(manyWords(12)).SetPage(2) },
			wantPage: 2,
			wantIDs:  []int64{11, 12},
		},
		{
			name:     "page is clamped to the last one",
			table:    func() Table { return NewTable(5).ReplaceCollection(manyWords(12)).SetPage(9) },
			wantPage: 2,
			wantIDs:  []int64{11, 12},
		},
		{
			name:     "negative page is clamped to zero",
			table:    func() Table { return NewTable(5).ReplaceCollection(manyWords(12)).SetPage(-3) },
			wantPage: 0,
			wantIDs:  []int64{1, 2, 3, 4, 5},
		},
		{
			name: "page size change resets page",
			table: func() Table {
				tb, _ := NewTable(5).ReplaceCollection(manyWords(12)).SetPage(2).SetPageSize(10)
				return tb
			},
			wantPage: 0,
			wantIDs:  []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		},
		{
			name: "collection shrink resets page",
			table: func() Table {
				return NewTable(5).ReplaceCollection(manyWords(12)).SetPage(2).ReplaceCollection(manyWords(7))
			},
			wantPage: 0,
			wantIDs:  []int64{1, 2, 3, 4, 5},
		},
		{
			name: "shrink that keeps the page in range",
			table: func() Table {
				return NewTable(5).ReplaceCollection(manyWords(12)).SetPage(1).ReplaceCollection(manyWords(6))
			},
			wantPage: 1,
			wantIDs:  []int64{6},
		},
		{
			name: "removing the last word of a page",
			table: func() Table {
				return NewTable(5).ReplaceCollection(manyWords(6)).SetPage(1).Without(6)
			},
			wantPage: 0,
			wantIDs:  []int64{1, 2, 3, 4, 5},
		},
		{
			name:     "empty collection",
			table:    func() Table { return NewTable(5).ReplaceCollection(nil).SetPage(3) },
			wantPage: 0,
			wantIDs:  []int64{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tb := tt.table()
			assert.Equal(t, tt.wantPage, tb.View().Page)
			assert.Equal(t, tt.wantIDs, ids(tb.Visible()))
		})
	}
}

func TestTable_SetPageSize(t *testing.T) {
	t.Parallel()

	for _, size := range PageSizes {
		tb, err := NewTable(10).SetPageSize(size)
		require.NoError(t, err)
		assert.Equal(t, size, tb.View().PageSize)
	}

	tb := NewTable(10)
	for _, size := range []int{0, -5, 1, 7, 100} {
		got, err := tb.SetPageSize(size)
		var verr models.ValidationError
		require.ErrorAs(t, err, &verr, "size %d", size)
		assert.Equal(t, 10, got.View().PageSize)
	}
}

func TestTable_ReplaceCollection(t *testing.T) {
	t.Parallel()

	tb := NewTable(10).ReplaceCollection([]models.Word{
		word(1, "first", 1, 0),
		word(2, "second", 1, 0),
		word(1, "duplicate", 3, 5),
	})

	words := tb.Words()
	require.Len(t, words, 2)
	assert.Equal(t, "first", words[0].OriginalWord)

	desc, err := tb.SetSort(SortByOriginalWord)
	require.NoError(t, err)
	again := desc.ReplaceCollection(manyWords(3))
	assert.Equal(t, SortDesc, again.View().SortDir)
	assert.Equal(t, []int64{3, 2, 1}, ids(again.Visible()))
}

func TestTable_SetLanguage(t *testing.T) {
	t.Parallel()

	words := manyWords(8)
	words[1].Language = models.LanguageFrench
	words[6].Language = models.LanguageFrench

	tb := NewTable(5).ReplaceCollection(words).SetPage(1).SetLanguage(models.LanguageFrench)
	assert.Zero(t, tb.View().Page)
	assert.Equal(t, 2, tb.Count())
	assert.Equal(t, []int64{2, 7}, ids(tb.Visible()))

	tb = tb.SetLanguage("")
	assert.Equal(t, 8, tb.Count())
}

func TestTable_With(t *testing.T) {
	t.Parallel()

	tb := NewTable(10).ReplaceCollection(manyWords(2))

	tb = tb.With(word(3, "new", 2, 0))
	assert.Equal(t, []int64{1, 2, 3}, ids(tb.Words()))

	updated := word(1, "w01", 3, 0)
	tb = tb.With(updated)
	assert.Equal(t, []int64{1, 2, 3}, ids(tb.Words()))
	assert.Equal(t, 3, tb.Words()[0].DifficultyLevel)
}
