package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/DanRulev/wordtrainer/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxBodySize = 10 << 20

type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// API is the low-level transport to the word API. It knows nothing about
// sessions; WordsAPI and AuthAPI decide which headers a call carries.
type API struct {
	baseURL string
	http    HTTPDoer
	log     *zap.Logger
}

func NewAPI(baseURL string, doer HTTPDoer, log *zap.Logger) *API {
	return &API{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    doer,
		log:     log,
	}
}

func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func (a *API) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	return req, nil
}

func (a *API) newJSONRequest(ctx context.Context, method, path string, payload any) (*http.Request, error) {
	if payload == nil {
		return a.newRequest(ctx, method, path, nil, "")
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
	}
	return a.newRequest(ctx, method, path, bytes.NewReader(body), "application/json")
}

// send executes req and returns the body of a successful response. Any other
// outcome becomes a *models.RequestFailedError.
func (a *API) send(req *http.Request) ([]byte, http.Header, error) {
	reqID := req.Header.Get("X-Request-Id")
	start := time.Now()

	resp, err := a.http.Do(req)
	if err != nil {
		a.log.Warn("api request failed",
			zap.String("request_id", reqID),
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Error(err),
		)
		return nil, nil, &models.RequestFailedError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		a.log.Warn("failed to read api response", zap.String("request_id", reqID), zap.Error(err))
		return nil, nil, &models.RequestFailedError{Status: resp.StatusCode, Message: err.Error()}
	}

	a.log.Debug("api request",
		zap.String("request_id", reqID),
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		rf := &models.RequestFailedError{
			Status:  resp.StatusCode,
			Message: errorMessage(resp.StatusCode, resp.Header.Get("Content-Type"), body),
		}
		a.log.Warn("api returned error",
			zap.String("request_id", reqID),
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Int("status", rf.Status),
			zap.String("message", rf.Message),
		)
		return nil, nil, rf
	}

	return body, resp.Header, nil
}

func (a *API) sendJSON(req *http.Request, out any) error {
	body, _, err := a.send(req)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &models.RequestFailedError{Message: fmt.Sprintf("decode %s %s response: %v", req.Method, req.URL.Path, err)}
	}
	return nil
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// errorMessage reads the structured JSON error when the server says it sent
// one and falls back to the raw text otherwise.
func errorMessage(status int, contentType string, body []byte) string {
	text := strings.TrimSpace(string(body))

	if isJSON(contentType) {
		var eb errorBody
		if err := json.Unmarshal(body, &eb); err == nil {
			switch {
			case eb.Message != "":
				return eb.Message
			case eb.Error != "":
				return eb.Error
			}
		}
	}

	if text != "" {
		return text
	}
	return http.StatusText(status)
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.Contains(contentType, "json")
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// IsUnauthenticated reports whether err means the user has to log in again.
func IsUnauthenticated(err error) bool {
	if errors.Is(err, models.ErrUnauthenticated) {
		return true
	}
	var rf *models.RequestFailedError
	return errors.As(err, &rf) && rf.Unauthorized()
}
