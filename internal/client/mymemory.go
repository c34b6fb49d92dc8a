package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/DanRulev/wordtrainer/internal/models"
)

const myMemoryURL = "https://api.mymemory.translated.net/get"

type MyMemoryAPI struct {
	baseURL string
	http    HTTPDoer
}

func NewMyMemoryAPI(baseURL string, doer HTTPDoer) *MyMemoryAPI {
	if baseURL == "" {
		baseURL = myMemoryURL
	}
	return &MyMemoryAPI{baseURL: baseURL, http: doer}
}

// Suggest asks MyMemory for a translation of text from one language to another.
func (m *MyMemoryAPI) Suggest(ctx context.Context, text string, from, to models.Language) (models.Suggestion, error) {
	if from.Code() == "" || to.Code() == "" {
		return models.Suggestion{}, fmt.Errorf("unsupported language pair %q -> %q", from, to)
	}
	if from == to {
		return models.Suggestion{}, errors.New("source and target language are the same")
	}

	q := url.Values{
		"q":        {text},
		"langpair": {from.Code() + "|" + to.Code()},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return models.Suggestion{}, err
	}
	resp, err := m.http.Do(req)
	if err != nil {
		return models.Suggestion{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Suggestion{}, fmt.Errorf("mymemory: unexpected status %d", resp.StatusCode)
	}

	var data models.MyMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return models.Suggestion{}, fmt.Errorf("mymemory: decode response: %w", err)
	}

	if data.ResponseBody.ResponseStatus != http.StatusOK {
		return models.Suggestion{}, fmt.Errorf("mymemory: %s", data.ResponseBody.ResponseDetails)
	}

	translated := strings.TrimSpace(data.ResponseBody.TranslatedText)
	if translated == "" {
		return models.Suggestion{}, errors.New("mymemory: empty translation")
	}

	var alternatives []string
	seen := map[string]bool{strings.ToLower(translated): true}
	for _, match := range data.Matches {
		alt := strings.TrimSpace(match.Translation)
		if alt == "" || seen[strings.ToLower(alt)] {
			continue
		}
		seen[strings.ToLower(alt)] = true
		alternatives = append(alternatives, alt)
	}

	return models.Suggestion{
		Text:         translated,
		Match:        data.ResponseBody.Match,
		Source:       from,
		Target:       to,
		Reliable:     data.ResponseBody.Match >= 0.8,
		Alternatives: alternatives,
	}, nil
}
