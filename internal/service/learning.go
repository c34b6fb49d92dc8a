package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/DanRulev/wordtrainer/internal/models"
	"go.uber.org/zap"
)

var (
	ErrBusy     = errors.New("previous request is still in progress")
	ErrStale    = errors.New("result belongs to an abandoned session")
	ErrNotReady = errors.New("nothing to submit")
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhasePresented
	PhaseChecked
)

func (p Phase) String() string {
	switch p {
	case PhasePresented:
		return "presented"
	case PhaseChecked:
		return "checked"
	default:
		return "idle"
	}
}

// LearnState is one step of the fetch, guess, result cycle.
type LearnState struct {
	Phase  Phase
	Word   *models.Word
	Answer string
	Result *models.CheckResult
}

func (s LearnState) present(w models.Word) LearnState {
	return LearnState{Phase: PhasePresented, Word: &w}
}

func (s LearnState) withAnswer(answer string) LearnState {
	s.Answer = answer
	return s
}

func (s LearnState) checked(r models.CheckResult) LearnState {
	s.Phase = PhaseChecked
	s.Result = &r
	return s
}

func (s LearnState) reset() LearnState {
	return LearnState{}
}

type Stats struct {
	Correct int
	Total   int
}

// Learning runs the learning session of one chat.
//
// At most one fetch and one check are in flight. Reset and Start move to a
// new epoch; a response that comes back for an older epoch is dropped and
// reported as ErrStale.
type Learning struct {
	mu       sync.Mutex
	state    LearnState
	epoch    uint64
	fetching bool
	checking bool
	lang     models.Language
	stats    Stats
	repo     WordRepositoryI
	log      *zap.Logger
}

func NewLearning(repo WordRepositoryI, log *zap.Logger) *Learning {
	return &Learning{
		repo: repo,
		log:  log,
	}
}

func (l *Learning) State() LearnState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *Learning) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stats
}

// SetLanguage limits the following fetches to one language. Empty means any.
func (l *Learning) SetLanguage(lang models.Language) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lang = lang
}

// Start presents a random word from any phase. Starting from Idle also
// begins a fresh score.
func (l *Learning) Start(ctx context.Context) (LearnState, error) {
	return l.fetch(ctx, func(Phase) bool { return true })
}

// Next is Start restricted to a checked word.
func (l *Learning) Next(ctx context.Context) (LearnState, error) {
	return l.fetch(ctx, func(p Phase) bool { return p == PhaseChecked })
}

func (l *Learning) fetch(ctx context.Context, allowed func(Phase) bool) (LearnState, error) {
	l.mu.Lock()
	if l.fetching {
		state := l.state
		l.mu.Unlock()
		return state, ErrBusy
	}
	if !allowed(l.state.Phase) {
		state := l.state
		l.mu.Unlock()
		return state, ErrNotReady
	}
	l.epoch++
	epoch := l.epoch
	l.fetching = true
	l.checking = false
	lang := l.lang
	fresh := l.state.Phase == PhaseIdle
	l.mu.Unlock()

	word, err := l.repo.FetchRandom(ctx, lang)

	l.mu.Lock()
	defer l.mu.Unlock()
	if epoch != l.epoch {
		l.log.Debug("dropping stale word", zap.Uint64("epoch", epoch), zap.Uint64("current", l.epoch))
		return l.state, ErrStale
	}
	l.fetching = false

	if err != nil {
		l.log.Warn("failed to fetch random word", zap.String("language", string(lang)), zap.Error(err))
		return l.state, err
	}

	if fresh {
		l.stats = Stats{}
	}
	l.state = l.state.present(word)
	return l.state, nil
}

// Answer records the pending guess for the presented word.
func (l *Learning) Answer(text string) (LearnState, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state.Phase != PhasePresented {
		return l.state, ErrNotReady
	}
	l.state = l.state.withAnswer(text)
	return l.state, nil
}

// Submit checks the pending answer. It does nothing without a presented word
// and a non-empty answer, or while a check or a new word is in flight. On
// failure the word and answer stay as they were.
func (l *Learning) Submit(ctx context.Context) (LearnState, error) {
	l.mu.Lock()
	if l.checking || l.fetching {
		state := l.state
		l.mu.Unlock()
		return state, ErrBusy
	}
	if l.state.Phase != PhasePresented || strings.TrimSpace(l.state.Answer) == "" {
		state := l.state
		l.mu.Unlock()
		return state, ErrNotReady
	}
	l.checking = true
	epoch := l.epoch
	word := l.state.Word
	original := word.OriginalWord
	answer := l.state.Answer
	l.mu.Unlock()

	result, err := l.repo.CheckTranslation(ctx, original, answer)

	l.mu.Lock()
	defer l.mu.Unlock()
	if epoch != l.epoch || l.state.Word != word {
		l.log.Debug("dropping stale check result", zap.String("word", original))
		return l.state, ErrStale
	}
	l.checking = false

	if err != nil {
		l.log.Warn("failed to check translation", zap.String("word", original), zap.Error(err))
		return l.state, err
	}

	l.stats.Total++
	if result.Correct {
		l.stats.Correct++
	}
	l.state = l.state.checked(result)
	return l.state, nil
}

// Guess is Answer followed by Submit.
func (l *Learning) Guess(ctx context.Context, text string) (LearnState, error) {
	if _, err := l.Answer(text); err != nil {
		return l.State(), err
	}
	return l.Submit(ctx)
}

// Reset returns to Idle. Anything still in flight is discarded when it
// returns.
func (l *Learning) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.epoch++
	l.fetching = false
	l.checking = false
	l.state = l.state.reset()
}
