package service

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"github.com/DanRulev/wordtrainer/internal/models"
)

type SortKey string

const (
	SortByOriginalWord SortKey = "originalWord"
	SortByDifficulty   SortKey = "difficultyLevel"
	SortByProficiency  SortKey = "proficiencyLevel"
)

var SortKeys = []SortKey{SortByOriginalWord, SortByDifficulty, SortByProficiency}

type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

var PageSizes = []int{5, 10, 25}

const DefaultPageSize = 10

type ViewState struct {
	SortKey  SortKey
	SortDir  SortDir
	Page     int
	PageSize int
	Language models.Language
}

// Table is a word collection plus how it is viewed. Every transition returns
// a new Table and leaves the receiver untouched.
type Table struct {
	words []models.Word
	view  ViewState
}

func NewTable(pageSize int) Table {
	if !slices.Contains(PageSizes, pageSize) {
		pageSize = DefaultPageSize
	}
	return Table{
		view: ViewState{
			SortKey:  SortByOriginalWord,
			SortDir:  SortAsc,
			PageSize: pageSize,
		},
	}
}

func (t Table) View() ViewState {
	return t.view
}

// Words returns the whole collection in its stored order.
func (t Table) Words() []models.Word {
	return slices.Clone(t.words)
}

// ReplaceCollection keeps the first word seen for each ID.
func (t Table) ReplaceCollection(words []models.Word) Table {
	t.words = lo.UniqBy(words, func(w models.Word) int64 { return w.ID })
	return t.fixPage()
}

// SetSort flips the direction when key is already active; a new key starts
// ascending.
func (t Table) SetSort(key SortKey) (Table, error) {
	if !slices.Contains(SortKeys, key) {
		return t, models.ValidationError{Field: "sortKey", Message: "must be one of [originalWord difficultyLevel proficiencyLevel]"}
	}

	if t.view.SortKey == key {
		t.view.SortDir = lo.Ternary(t.view.SortDir == SortAsc, SortDesc, SortAsc)
	} else {
		t.view.SortKey = key
		t.view.SortDir = SortAsc
	}
	t.view.Page = 0
	return t, nil
}

func (t Table) SetPage(page int) Table {
	t.view.Page = max(0, min(page, t.LastPage()))
	return t
}

func (t Table) SetPageSize(size int) (Table, error) {
	if !slices.Contains(PageSizes, size) {
		return t, models.ValidationError{Field: "pageSize", Message: "must be one of [5 10 25]"}
	}
	t.view.PageSize = size
	t.view.Page = 0
	return t, nil
}

// SetLanguage narrows the view to one language. An empty language shows all.
func (t Table) SetLanguage(lang models.Language) Table {
	t.view.Language = lang
	t.view.Page = 0
	return t
}

// Without echoes a server-confirmed removal.
func (t Table) Without(ids ...int64) Table {
	t.words = lo.Reject(t.words, func(w models.Word, _ int) bool {
		return slices.Contains(ids, w.ID)
	})
	return t.fixPage()
}

// With echoes a server-confirmed create or update. An existing ID is
// replaced in place.
func (t Table) With(word models.Word) Table {
	words := slices.Clone(t.words)
	if i := slices.IndexFunc(words, func(w models.Word) bool { return w.ID == word.ID }); i >= 0 {
		words[i] = word
	} else {
		words = append(words, word)
	}
	t.words = words
	return t.fixPage()
}

// Count is the number of words that pass the language filter.
func (t Table) Count() int {
	return len(t.filtered())
}

func (t Table) LastPage() int {
	n := t.Count()
	if n == 0 {
		return 0
	}
	return (n - 1) / t.view.PageSize
}

// Visible returns the current page of the filtered collection, stably
// sorted. Equal keys keep their collection order in both directions.
func (t Table) Visible() []models.Word {
	words := t.filtered()
	slices.SortStableFunc(words, t.compare)

	start := t.view.Page * t.view.PageSize
	if start >= len(words) {
		return []models.Word{}
	}
	end := min(start+t.view.PageSize, len(words))
	return words[start:end]
}

func (t Table) filtered() []models.Word {
	if t.view.Language == "" {
		return slices.Clone(t.words)
	}
	return lo.Filter(t.words, func(w models.Word, _ int) bool {
		return w.Language == t.view.Language
	})
}

func (t Table) compare(a, b models.Word) int {
	var c int
	switch t.view.SortKey {
	case SortByDifficulty:
		c = cmp.Compare(a.DifficultyLevel, b.DifficultyLevel)
	case SortByProficiency:
		c = cmp.Compare(a.ProficiencyLevel, b.ProficiencyLevel)
	default:
		c = cmp.Compare(a.OriginalWord, b.OriginalWord)
	}
	if t.view.SortDir == SortDesc {
		return -c
	}
	return c
}

func (t Table) fixPage() Table {
	if t.view.Page > 0 && t.view.Page*t.view.PageSize >= t.Count() {
		t.view.Page = 0
	}
	return t
}
