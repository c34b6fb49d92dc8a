package service

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"github.com/DanRulev/wordtrainer/internal/models"
	"github.com/DanRulev/wordtrainer/internal/transcoder"
	"github.com/DanRulev/wordtrainer/pkg/validator"
	"go.uber.org/zap"
)

// Page is one rendered view of the table.
type Page struct {
	Words []models.Word
	View  ViewState
	Total int
	Pages int
}

// WordList drives a Table for one chat. The lock is never held across a
// repository call; state only changes after the server confirmed it. Clear
// starts a new epoch, and responses issued before it are dropped with
// ErrStale.
type WordList struct {
	mu         sync.Mutex
	table      Table
	epoch      uint64
	repo       WordRepositoryI
	translator TranslatorI
	log        *zap.Logger
}

func NewWordList(repo WordRepositoryI, translator TranslatorI, pageSize int, log *zap.Logger) *WordList {
	return &WordList{
		table:      NewTable(pageSize),
		repo:       repo,
		translator: translator,
		log:        log,
	}
}

func (l *WordList) Refresh(ctx context.Context) (Page, error) {
	epoch := l.currentEpoch()
	words, err := l.repo.List(ctx)
	if err != nil {
		l.log.Warn("failed to load words", zap.Error(err))
		return Page{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if epoch != l.epoch {
		l.log.Debug("dropping stale word list", zap.Int("words", len(words)))
		return l.page(), ErrStale
	}
	l.table = l.table.ReplaceCollection(words)
	return l.page(), nil
}

func (l *WordList) View() Page {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.page()
}

func (l *WordList) Sort(key SortKey) (Page, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	t, err := l.table.SetSort(key)
	if err != nil {
		return l.page(), err
	}
	l.table = t
	return l.page(), nil
}

func (l *WordList) SetPage(page int) Page {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.table = l.table.SetPage(page)
	return l.page()
}

func (l *WordList) SetPageSize(size int) (Page, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	t, err := l.table.SetPageSize(size)
	if err != nil {
		return l.page(), err
	}
	l.table = t
	return l.page(), nil
}

func (l *WordList) Filter(lang models.Language) Page {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.table = l.table.SetLanguage(lang)
	return l.page()
}

// Add validates locally before anything is sent.
func (l *WordList) Add(ctx context.Context, word models.NewWord) (models.Word, error) {
	word = word.Normalize()
	if err := validator.ValidateStruct(word); err != nil {
		return models.Word{}, err
	}

	epoch := l.currentEpoch()
	created, err := l.repo.Create(ctx, word)
	if err != nil {
		l.log.Warn("failed to create word", zap.String("word", word.OriginalWord), zap.Error(err))
		return models.Word{}, err
	}

	if err := l.apply(epoch, func(t Table) Table { return t.With(created) }); err != nil {
		return models.Word{}, err
	}
	return created, nil
}

func (l *WordList) Update(ctx context.Context, id int64, word models.NewWord) (models.Word, error) {
	word = word.Normalize()
	if err := validator.ValidateStruct(word); err != nil {
		return models.Word{}, err
	}

	epoch := l.currentEpoch()
	updated, err := l.repo.Update(ctx, id, word)
	if err != nil {
		l.log.Warn("failed to update word", zap.Int64("word_id", id), zap.Error(err))
		return models.Word{}, err
	}

	if err := l.apply(epoch, func(t Table) Table { return t.With(updated) }); err != nil {
		return models.Word{}, err
	}
	return updated, nil
}

// Lookup reloads one word from the server and updates it in the table.
func (l *WordList) Lookup(ctx context.Context, id int64) (models.Word, error) {
	epoch := l.currentEpoch()
	w, err := l.repo.Get(ctx, id)
	if err != nil {
		l.log.Warn("failed to get word", zap.Int64("word_id", id), zap.Error(err))
		return models.Word{}, err
	}

	if err := l.apply(epoch, func(t Table) Table { return t.With(w) }); err != nil {
		return models.Word{}, err
	}
	return w, nil
}

// Delete removes the word locally only after the server confirmed it. On
// failure the word stays visible.
func (l *WordList) Delete(ctx context.Context, id int64) error {
	if err := l.repo.Remove(ctx, id); err != nil {
		l.log.Warn("failed to delete word", zap.Int64("word_id", id), zap.Error(err))
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.table = l.table.Without(id)
	return nil
}

func (l *WordList) DeleteMany(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, models.ValidationError{Field: "ids", Message: "is required"}
	}

	n, err := l.repo.BulkDelete(ctx, ids)
	if err != nil {
		l.log.Warn("failed to bulk delete words", zap.Int64s("word_ids", ids), zap.Error(err))
		return 0, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.table = l.table.Without(ids...)
	return n, nil
}

// Export returns the server's CSV export as UTF-8.
func (l *WordList) Export(ctx context.Context) ([]byte, error) {
	data, err := l.repo.ExportCSV(ctx)
	if err != nil {
		l.log.Warn("failed to export words", zap.Error(err))
		return nil, err
	}
	return data, nil
}

// ExportXLSX builds a workbook from a fresh copy of the collection.
func (l *WordList) ExportXLSX(ctx context.Context) ([]byte, error) {
	epoch := l.currentEpoch()
	words, err := l.repo.List(ctx)
	if err != nil {
		l.log.Warn("failed to load words for xlsx export", zap.Error(err))
		return nil, err
	}

	if err := l.apply(epoch, func(t Table) Table { return t.ReplaceCollection(words) }); err != nil {
		return nil, err
	}

	data, err := transcoder.EncodeXLSX(words)
	if err != nil {
		l.log.Error("failed to encode xlsx", zap.Int("words", len(words)), zap.Error(err))
		return nil, err
	}
	return data, nil
}

// PreviewImport checks a file without sending it. Files named *.xlsx are
// read as workbooks, anything else as CSV.
func (l *WordList) PreviewImport(data []byte, filename string) transcoder.Preview {
	if strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		return transcoder.PreviewXLSX(data)
	}
	return transcoder.PreviewCSV(data)
}

// Import uploads the file only when every row is valid. The payload is
// re-encoded as UTF-8 CSV, so workbooks and UTF-16 files are accepted too.
// The list is reloaded afterwards because the server is authoritative.
func (l *WordList) Import(ctx context.Context, data []byte, filename string) (int, error) {
	preview := l.PreviewImport(data, filename)
	if err := preview.Err(); err != nil {
		l.log.Info("import rejected locally", zap.String("file", filename), zap.Int("bad_rows", len(preview.Errors)))
		return 0, err
	}

	payload, err := transcoder.EncodeCSV(preview.Words)
	if err != nil {
		l.log.Error("failed to encode import payload", zap.Error(err))
		return 0, err
	}

	if err := l.repo.ImportCSV(ctx, payload); err != nil {
		l.log.Warn("failed to import words", zap.String("file", filename), zap.Error(err))
		return 0, err
	}

	if _, err := l.Refresh(ctx); err != nil {
		return len(preview.Words), err
	}
	return len(preview.Words), nil
}

// Suggest asks the translator for a translation of text.
func (l *WordList) Suggest(ctx context.Context, text string, from, to models.Language) (models.Suggestion, error) {
	s, err := l.translator.Suggest(ctx, text, from, to)
	if err != nil {
		l.log.Warn("failed to get suggestion", zap.String("text", text), zap.Error(err))
		return models.Suggestion{}, err
	}
	return s, nil
}

// Clear forgets the collection but keeps the view settings. Responses still
// in flight are dropped when they arrive.
func (l *WordList) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.epoch++
	l.table = l.table.ReplaceCollection(nil)
}

func (l *WordList) currentEpoch() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.epoch
}

// apply changes the table unless Clear ran after epoch was taken.
func (l *WordList) apply(epoch uint64, change func(Table) Table) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if epoch != l.epoch {
		l.log.Debug("dropping stale word response", zap.Uint64("epoch", epoch), zap.Uint64("current", l.epoch))
		return ErrStale
	}
	l.table = change(l.table)
	return nil
}

func (l *WordList) page() Page {
	return Page{
		Words: l.table.Visible(),
		View:  l.table.View(),
		Total: l.table.Count(),
		Pages: l.table.LastPage() + 1,
	}
}
