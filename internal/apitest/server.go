// Package apitest runs an in-process fake of the word API for client tests.
package apitest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/encoding/unicode"

	"github.com/DanRulev/wordtrainer/internal/models"
	"github.com/DanRulev/wordtrainer/internal/transcoder"
)

type failure struct {
	status      int
	contentType string
	body        string
}

// Server keeps one word collection shared by every registered user.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	users    map[string]string
	words    []models.Word
	nextID   int64
	failures map[string]failure
	reqIDs   []string
	imported []byte
	utf16    bool
}

func NewServer() *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{
		users:    make(map[string]string),
		failures: make(map[string]failure),
		nextID:   1,
	}

	r := gin.New()
	r.Use(s.record, s.inject)

	api := r.Group("/api")
	api.POST("/auth/login", s.login)

	words := api.Group("/words", s.authenticate)
	{
		words.GET("", s.list)
		words.POST("", s.create)
		words.GET("/random", s.random)
		words.GET("/export", s.export)
		words.POST("/import", s.importCSV)
		words.POST("/check-translation", s.check)
		words.DELETE("/bulk", s.bulkDelete)
		words.GET("/:id", s.get)
		words.PUT("/:id", s.update)
		words.DELETE("/:id", s.remove)
	}

	s.Server = httptest.NewServer(r)
	return s
}

func (s *Server) AddUser(email, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[email] = password
}

// Seed stores words and returns them with their assigned IDs.
func (s *Server) Seed(words ...models.Word) []models.Word {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Word, 0, len(words))
	for _, w := range words {
		w.ID = s.nextID
		s.nextID++
		s.words = append(s.words, w)
		out = append(out, w)
	}
	return out
}

func (s *Server) Words() []models.Word {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Word(nil), s.words...)
}

// Fail makes the next request to method and path answer with status and body.
func (s *Server) Fail(method, path string, status int, contentType, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+path] = failure{status: status, contentType: contentType, body: body}
}

// ExportUTF16 makes the export endpoint answer in UTF-16LE with a BOM.
func (s *Server) ExportUTF16(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.utf16 = on
}

// RequestIDs lists the X-Request-Id of every request received so far.
func (s *Server) RequestIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.reqIDs...)
}

// Imported is the last uploaded import file.
func (s *Server) Imported() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.imported
}

func (s *Server) record(c *gin.Context) {
	s.mu.Lock()
	s.reqIDs = append(s.reqIDs, c.GetHeader("X-Request-Id"))
	s.mu.Unlock()
	c.Next()
}

func (s *Server) inject(c *gin.Context) {
	key := c.Request.Method + " " + c.Request.URL.Path

	s.mu.Lock()
	f, ok := s.failures[key]
	delete(s.failures, key)
	s.mu.Unlock()

	if !ok {
		c.Next()
		return
	}
	if f.contentType != "" {
		c.Header("Content-Type", f.contentType)
	}
	c.String(f.status, f.body)
	c.Abort()
}

func (s *Server) authenticate(c *gin.Context) {
	email, password, ok := c.Request.BasicAuth()
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
		return
	}

	s.mu.Lock()
	want, known := s.users[email]
	s.mu.Unlock()

	if !known || want != password {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}
	c.Set("email", email)
	c.Next()
}

func (s *Server) login(c *gin.Context) {
	s.authenticate(c)
	if c.IsAborted() {
		return
	}
	email := c.GetString("email")
	c.JSON(http.StatusOK, models.Principal{ID: 1, Email: email, Username: strings.Split(email, "@")[0]})
}

func (s *Server) list(c *gin.Context) {
	words := s.Words()
	if words == nil {
		words = []models.Word{}
	}
	c.JSON(http.StatusOK, words)
}

func (s *Server) get(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.find(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.words[i])
}

func (s *Server) create(c *gin.Context) {
	var in models.NewWord
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if strings.TrimSpace(in.OriginalWord) == "" || strings.TrimSpace(in.Translation) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "originalWord and translation are required"})
		return
	}

	created := s.Seed(models.Word{
		OriginalWord:    in.OriginalWord,
		Translation:     in.Translation,
		Language:        in.Language,
		DifficultyLevel: in.DifficultyLevel,
	})
	c.JSON(http.StatusOK, created[0])
}

func (s *Server) update(c *gin.Context) {
	var in models.NewWord
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.find(c)
	if !ok {
		return
	}
	w := &s.words[i]
	w.OriginalWord = in.OriginalWord
	w.Translation = in.Translation
	w.Language = in.Language
	w.DifficultyLevel = in.DifficultyLevel
	c.JSON(http.StatusOK, *w)
}

func (s *Server) remove(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.find(c)
	if !ok {
		return
	}
	s.words = append(s.words[:i], s.words[i+1:]...)
	c.Status(http.StatusOK)
}

func (s *Server) bulkDelete(c *gin.Context) {
	var ids []int64
	if err := c.ShouldBindJSON(&ids); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	drop := make(map[int64]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := s.words[:0]
	deleted := 0
	for _, w := range s.words {
		if drop[w.ID] {
			deleted++
			continue
		}
		kept = append(kept, w)
	}
	s.words = kept
	c.JSON(http.StatusOK, gin.H{
		"message":      "Successfully deleted " + strconv.Itoa(deleted) + " words",
		"deletedCount": deleted,
	})
}

func (s *Server) random(c *gin.Context) {
	lang := models.Language(c.Query("language"))

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range s.words {
		if lang == "" || w.Language == lang {
			c.JSON(http.StatusOK, w)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "The word list is empty. Add words to start learning.",
		"isEmpty": true,
	})
}

func (s *Server) check(c *gin.Context) {
	var in models.TranslationCheck
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.words {
		w := &s.words[i]
		if !strings.EqualFold(w.OriginalWord, in.OriginalWord) {
			continue
		}

		correct := strings.EqualFold(w.Translation, strings.TrimSpace(in.Translation))
		msg := "Correct!"
		if correct {
			w.ProficiencyLevel = min(w.ProficiencyLevel+1, models.MaxProficiency)
		} else {
			w.ProficiencyLevel = max(w.ProficiencyLevel-1, models.MinProficiency)
			msg = "Incorrect. The correct answer is: " + w.Translation
		}
		c.JSON(http.StatusOK, models.CheckResult{Correct: correct, Message: msg, CorrectTranslation: w.Translation})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Word not found: " + in.OriginalWord})
}

func (s *Server) export(c *gin.Context) {
	data, err := transcoder.EncodeCSV(s.Words())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	utf16 := s.utf16
	s.mu.Unlock()

	c.Header("Content-Disposition", `attachment; filename="vocabulary.csv"`)
	if utf16 {
		data, err = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes(data)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "text/csv; charset=UTF-16LE", data)
		return
	}
	c.Data(http.StatusOK, "text/csv; charset=UTF-8", data)
}

func (s *Server) importCSV(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "file is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	s.mu.Lock()
	s.imported = data
	s.mu.Unlock()

	p := transcoder.PreviewCSV(data)
	if err := p.Err(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	s.Seed(p.Words...)
	c.Status(http.StatusOK)
}

// find must be called with s.mu held. It answers 404 itself.
func (s *Server) find(c *gin.Context) (int, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return 0, false
	}
	for i, w := range s.words {
		if w.ID == id {
			return i, true
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Word not found with id: " + c.Param("id")})
	return 0, false
}
