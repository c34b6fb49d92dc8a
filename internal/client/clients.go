package client

import (
	"time"

	"go.uber.org/zap"
)

type Clients struct {
	*API
	*AuthAPI
	*MyMemoryAPI
}

// InitClients shares one HTTP client between the word API and MyMemory. An
// empty myMemoryURL selects the public endpoint.
func InitClients(baseURL, myMemoryURL string, timeout time.Duration, log *zap.Logger) Clients {
	httpClient := NewHTTPClient(timeout)
	api := NewAPI(baseURL, httpClient, log)

	return Clients{
		API:         api,
		AuthAPI:     NewAuthAPI(api),
		MyMemoryAPI: NewMyMemoryAPI(myMemoryURL, httpClient),
	}
}

// Words returns the word repository bound to one session's credentials.
func (c Clients) Words(creds CredentialSource) *WordsAPI {
	return NewWordsAPI(c.API, creds)
}
