package service

import (
	"context"

	"github.com/DanRulev/wordtrainer/internal/models"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mock/service_mock.go -package=mock_service

type WordRepositoryI interface {
	List(ctx context.Context) ([]models.Word, error)
	Get(ctx context.Context, id int64) (models.Word, error)
	Create(ctx context.Context, word models.NewWord) (models.Word, error)
	Update(ctx context.Context, id int64, word models.NewWord) (models.Word, error)
	Remove(ctx context.Context, id int64) error
	BulkDelete(ctx context.Context, ids []int64) (int, error)
	FetchRandom(ctx context.Context, lang models.Language) (models.Word, error)
	CheckTranslation(ctx context.Context, originalWord, translation string) (models.CheckResult, error)
	ExportCSV(ctx context.Context) ([]byte, error)
	ImportCSV(ctx context.Context, data []byte) error
}

type AuthI interface {
	Login(ctx context.Context, email, password string) (models.Principal, models.Credential, error)
}

type TranslatorI interface {
	Suggest(ctx context.Context, text string, from, to models.Language) (models.Suggestion, error)
}

type SessionStoreI interface {
	Set(cred models.Credential)
	Get() (models.Credential, bool)
	Clear()
}

// Workspace is everything one chat works with. The repository must be bound
// to the same session store the workspace logs in to.
type Workspace struct {
	*AuthS
	*WordList
	*Learning
}

type Deps struct {
	Repo       WordRepositoryI
	Auth       AuthI
	Translator TranslatorI
	Session    SessionStoreI
	PageSize   int
}

func NewWorkspace(deps Deps, log *zap.Logger) *Workspace {
	return &Workspace{
		AuthS:    NewAuthService(deps.Auth, deps.Session, log),
		WordList: NewWordList(deps.Repo, deps.Translator, deps.PageSize, log),
		Learning: NewLearning(deps.Repo, log),
	}
}

// Logout drops the credential and every piece of state that came from it.
func (w *Workspace) Logout() {
	w.AuthS.Logout()
	w.WordList.Clear()
	w.Learning.Reset()
}
