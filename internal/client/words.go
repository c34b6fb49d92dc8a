package client

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"

	"github.com/DanRulev/wordtrainer/internal/models"
	"github.com/DanRulev/wordtrainer/internal/transcoder"
)

type CredentialSource interface {
	Get() (models.Credential, bool)
}

// WordsAPI is the word repository of one session. Every call reads the
// credential first and fails with models.ErrUnauthenticated before any
// request is built when there is none.
type WordsAPI struct {
	api   *API
	creds CredentialSource
}

func NewWordsAPI(api *API, creds CredentialSource) *WordsAPI {
	return &WordsAPI{api: api, creds: creds}
}

func (w *WordsAPI) authorize(req *http.Request) (*http.Request, error) {
	cred, ok := w.creds.Get()
	if !ok {
		return nil, models.ErrUnauthenticated
	}
	req.Header.Set("Authorization", cred.Authorization)
	return req, nil
}

func (w *WordsAPI) jsonCall(ctx context.Context, method, path string, payload, out any) error {
	if _, ok := w.creds.Get(); !ok {
		return models.ErrUnauthenticated
	}

	req, err := w.api.newJSONRequest(ctx, method, path, payload)
	if err != nil {
		return err
	}
	if req, err = w.authorize(req); err != nil {
		return err
	}
	return w.api.sendJSON(req, out)
}

func (w *WordsAPI) List(ctx context.Context) ([]models.Word, error) {
	words := make([]models.Word, 0)
	if err := w.jsonCall(ctx, http.MethodGet, "/api/words", nil, &words); err != nil {
		return nil, err
	}
	return words, nil
}

func (w *WordsAPI) Get(ctx context.Context, id int64) (models.Word, error) {
	var word models.Word
	if err := w.jsonCall(ctx, http.MethodGet, wordPath(id), nil, &word); err != nil {
		return models.Word{}, err
	}
	return word, nil
}

func (w *WordsAPI) Create(ctx context.Context, word models.NewWord) (models.Word, error) {
	var created models.Word
	if err := w.jsonCall(ctx, http.MethodPost, "/api/words", word, &created); err != nil {
		return models.Word{}, err
	}
	return created, nil
}

func (w *WordsAPI) Update(ctx context.Context, id int64, word models.NewWord) (models.Word, error) {
	var updated models.Word
	if err := w.jsonCall(ctx, http.MethodPut, wordPath(id), word, &updated); err != nil {
		return models.Word{}, err
	}
	return updated, nil
}

func (w *WordsAPI) Remove(ctx context.Context, id int64) error {
	return w.jsonCall(ctx, http.MethodDelete, wordPath(id), nil, nil)
}

func (w *WordsAPI) BulkDelete(ctx context.Context, ids []int64) (int, error) {
	var resp struct {
		DeletedCount int `json:"deletedCount"`
	}
	if err := w.jsonCall(ctx, http.MethodDelete, "/api/words/bulk", ids, &resp); err != nil {
		return 0, err
	}
	return resp.DeletedCount, nil
}

// FetchRandom returns a word to practise. An empty lang means any language.
func (w *WordsAPI) FetchRandom(ctx context.Context, lang models.Language) (models.Word, error) {
	path := "/api/words/random"
	if lang != "" {
		path += "?" + url.Values{"language": {string(lang)}}.Encode()
	}

	var resp struct {
		models.Word
		IsEmpty bool   `json:"isEmpty"`
		Message string `json:"message"`
	}
	if err := w.jsonCall(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return models.Word{}, err
	}
	if resp.IsEmpty || resp.OriginalWord == "" {
		return models.Word{}, models.ErrNoWords
	}
	return resp.Word, nil
}

func (w *WordsAPI) CheckTranslation(ctx context.Context, originalWord, translation string) (models.CheckResult, error) {
	var result models.CheckResult
	payload := models.TranslationCheck{OriginalWord: originalWord, Translation: translation}
	if err := w.jsonCall(ctx, http.MethodPost, "/api/words/check-translation", payload, &result); err != nil {
		return models.CheckResult{}, err
	}
	return result, nil
}

// ExportCSV downloads the server export and hands it back as UTF-8 whatever
// encoding the server chose.
func (w *WordsAPI) ExportCSV(ctx context.Context) ([]byte, error) {
	if _, ok := w.creds.Get(); !ok {
		return nil, models.ErrUnauthenticated
	}

	req, err := w.api.newRequest(ctx, http.MethodGet, "/api/words/export", nil, "")
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/csv")
	if req, err = w.authorize(req); err != nil {
		return nil, err
	}

	body, _, err := w.api.send(req)
	if err != nil {
		return nil, err
	}

	data, err := transcoder.ToUTF8(body)
	if err != nil {
		return nil, fmt.Errorf("export payload: %w", err)
	}
	return data, nil
}

// ImportCSV uploads the UTF-8 payload as the multipart "file" field.
func (w *WordsAPI) ImportCSV(ctx context.Context, data []byte) error {
	if _, ok := w.creds.Get(); !ok {
		return models.ErrUnauthenticated
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="vocabulary.csv"`)
	header.Set("Content-Type", "text/csv; charset=utf-8")
	part, err := mw.CreatePart(header)
	if err != nil {
		return fmt.Errorf("build import body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("build import body: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("build import body: %w", err)
	}

	req, err := w.api.newRequest(ctx, http.MethodPost, "/api/words/import", &buf, mw.FormDataContentType())
	if err != nil {
		return err
	}
	if req, err = w.authorize(req); err != nil {
		return err
	}

	_, _, err = w.api.send(req)
	return err
}

func wordPath(id int64) string {
	return "/api/words/" + strconv.FormatInt(id, 10)
}
