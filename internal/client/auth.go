package client

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/DanRulev/wordtrainer/internal/models"
)

type AuthAPI struct {
	api *API
}

func NewAuthAPI(api *API) *AuthAPI {
	return &AuthAPI{api: api}
}

// Login exchanges email and password for the principal and the credential
// that later calls present.
func (a *AuthAPI) Login(ctx context.Context, email, password string) (models.Principal, models.Credential, error) {
	email = strings.TrimSpace(email)
	cred := models.Credential{
		Authorization: basicAuth(email, password),
		Email:         email,
	}

	req, err := a.api.newRequest(ctx, http.MethodPost, "/api/auth/login", nil, "")
	if err != nil {
		return models.Principal{}, models.Credential{}, err
	}
	req.Header.Set("Authorization", cred.Authorization)

	var principal models.Principal
	if err := a.api.sendJSON(req, &principal); err != nil {
		return models.Principal{}, models.Credential{}, err
	}
	if principal.Email == "" {
		principal.Email = email
	}

	return principal, cred, nil
}

func basicAuth(email, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(email+":"+password))
}
