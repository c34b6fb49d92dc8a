package service

import (
	"context"
	"strings"

	"github.com/DanRulev/wordtrainer/internal/models"
	"go.uber.org/zap"
)

type AuthS struct {
	api   AuthI
	store SessionStoreI
	log   *zap.Logger
}

func NewAuthService(api AuthI, store SessionStoreI, log *zap.Logger) *AuthS {
	return &AuthS{
		api:   api,
		store: store,
		log:   log,
	}
}

// Login replaces any stored credential only when the server accepts the new
// one.
func (a *AuthS) Login(ctx context.Context, email, password string) (models.Principal, error) {
	email = strings.TrimSpace(email)
	var verrs models.ValidationErrors
	if email == "" {
		verrs = append(verrs, models.ValidationError{Field: "email", Message: "is required"})
	}
	if password == "" {
		verrs = append(verrs, models.ValidationError{Field: "password", Message: "is required"})
	}
	if len(verrs) > 0 {
		return models.Principal{}, verrs
	}

	principal, cred, err := a.api.Login(ctx, email, password)
	if err != nil {
		a.log.Warn("login failed", zap.String("email", email), zap.Error(err))
		return models.Principal{}, err
	}

	a.store.Set(cred)
	a.log.Info("logged in", zap.String("email", cred.Email), zap.Int64("principal_id", principal.ID))
	return principal, nil
}

func (a *AuthS) Logout() {
	a.store.Clear()
}

// CurrentUser returns the email of the stored credential.
func (a *AuthS) CurrentUser() (string, bool) {
	cred, ok := a.store.Get()
	if !ok {
		return "", false
	}
	return cred.Email, true
}
