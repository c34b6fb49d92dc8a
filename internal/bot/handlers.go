package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/DanRulev/wordtrainer/internal/client"
	"github.com/DanRulev/wordtrainer/internal/models"
	"github.com/DanRulev/wordtrainer/internal/service"
	"github.com/DanRulev/wordtrainer/internal/storage/cache"
	"github.com/DanRulev/wordtrainer/internal/transcoder"
)

const helpText = `Commands:
/login <email> <password> - sign in (the message is deleted right away)
/logout - sign out and forget this chat's data
/words - show your words
/sort <word|difficulty|proficiency> - sort, repeat to flip the order
/page <n> - go to page n
/size <5|10|25> - words per page
/lang <english|polish|french|german|spanish|all> - filter words and practice
/add <word> | <translation> | <language> | <difficulty 1-3>
/edit <n> <word> | <translation> | <language> | <difficulty>
/show <n> - reload word n of the current page
/del <n> [n...] - delete words by their number on the current page
/export - download your words as CSV
/xlsx - download your words as a spreadsheet
/import - then send a .csv or .xlsx file
/learn - practice a random word, then type the translation
/next - next word after an answer
/stop - end practice
/stats - practice score
/suggest <from> <to> <text> - machine translation`

type Options struct {
	SessionTTL time.Duration
	RPS        float64
	Burst      int
	Timeout    time.Duration
}

type chat struct {
	ws      *service.Workspace
	limiter *rate.Limiter
}

// Handler turns updates into workspace calls. Every chat gets its own
// workspace, created on first contact and dropped after SessionTTL of
// silence.
type Handler struct {
	bot          BotSender
	files        FileFetcher
	chats        *cache.Cache[*chat]
	newWorkspace func() *service.Workspace
	opts         Options
	log          *zap.Logger
}

func NewHandler(bot BotSender, files FileFetcher, newWorkspace func() *service.Workspace, opts Options, log *zap.Logger) *Handler {
	h := &Handler{
		bot:          bot,
		files:        files,
		newWorkspace: newWorkspace,
		opts:         opts,
		log:          log,
	}
	h.chats = cache.NewCache(opts.SessionTTL, func(chatID int64, c *chat) {
		c.ws.Logout()
		log.Info("chat session expired", zap.Int64("chat_id", chatID))
	})
	return h
}

// StartCleanup evicts idle chats every interval until ctx is done.
func (h *Handler) StartCleanup(ctx context.Context, interval time.Duration) {
	h.chats.StartCleanup(ctx, interval, func(removed int) {
		h.log.Info("evicted idle chats", zap.Int("removed", removed), zap.Int("active", h.chats.Len()))
	})
}

func (h *Handler) chat(chatID int64) *chat {
	return h.chats.GetOrCreate(chatID, func() *chat {
		return &chat{
			ws:      h.newWorkspace(),
			limiter: rate.NewLimiter(rate.Limit(h.opts.RPS), h.opts.Burst),
		}
	})
}

func (h *Handler) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	ctx, cancel := context.WithTimeout(ctx, h.opts.Timeout)
	defer cancel()

	switch {
	case update.Message != nil:
		h.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		h.handleCallbackQuery(ctx, update.CallbackQuery)
	}
}

func (h *Handler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.Chat == nil {
		return
	}
	c := h.chat(message.Chat.ID)
	if !c.limiter.Allow() {
		h.log.Debug("rate limited", zap.Int64("chat_id", message.Chat.ID))
		h.reply(message.Chat.ID, "Too many requests. Slow down a little.")
		return
	}

	switch {
	case message.IsCommand():
		h.handleCommand(ctx, c.ws, message)
	case message.Document != nil:
		h.handleDocument(ctx, c.ws, message)
	default:
		h.handleText(ctx, c.ws, message)
	}
}

func (h *Handler) handleCommand(ctx context.Context, ws *service.Workspace, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	args := strings.TrimSpace(message.CommandArguments())

	switch message.Command() {
	case "start", "help":
		h.reply(chatID, helpText)
	case "login":
		h.handleLogin(ctx, ws, message)
	case "logout":
		ws.Logout()
		h.reply(chatID, "Logged out.")
	case "words":
		h.showWords(ctx, ws, chatID)
	case "sort":
		h.handleSort(ws, chatID, args)
	case "page":
		h.handlePage(ws, chatID, args)
	case "size":
		h.handleSize(ws, chatID, args)
	case "lang":
		h.handleLanguage(ws, chatID, args)
	case "add":
		h.handleAdd(ctx, ws, chatID, args)
	case "edit":
		h.handleEdit(ctx, ws, chatID, args)
	case "show":
		h.handleShow(ctx, ws, chatID, args)
	case "del":
		h.handleDelete(ctx, ws, chatID, args)
	case "export":
		h.handleExport(ctx, ws, chatID)
	case "xlsx":
		h.handleExportXLSX(ctx, ws, chatID)
	case "import":
		h.reply(chatID, "Send a .csv or .xlsx file with the columns "+strings.Join(transcoder.Columns, ",")+".")
	case "suggest":
		h.handleSuggest(ctx, ws, chatID, args)
	case "learn":
		h.startLearning(ctx, ws, chatID)
	case "next":
		h.nextWord(ctx, ws, chatID)
	case "stop":
		h.stopLearning(ws, chatID)
	case "stats":
		h.showStats(ws, chatID)
	default:
		h.reply(chatID, "Unknown command. Use /help.")
	}
}

func (h *Handler) handleText(ctx context.Context, ws *service.Workspace, message *tgbotapi.Message) {
	if ws.State().Phase == service.PhasePresented {
		h.submitGuess(ctx, ws, message.Chat.ID, message.Text)
		return
	}
	h.reply(message.Chat.ID, "I did not get that. Use /help.")
}

func (h *Handler) handleCallbackQuery(ctx context.Context, query *tgbotapi.CallbackQuery) {
	if query.Message == nil || query.Message.Chat == nil {
		h.log.Warn("callback without message", zap.String("callback_id", query.ID))
		return
	}
	chatID := query.Message.Chat.ID
	c := h.chat(chatID)

	if !c.limiter.Allow() {
		h.answerCallback(query.ID, "Slow down a little.")
		return
	}
	h.answerCallback(query.ID, "")

	data := query.Data
	switch {
	case strings.HasPrefix(data, "page_"):
		h.pageCallback(c.ws, query)
	case strings.HasPrefix(data, "sort_"):
		h.sortCallback(c.ws, query)
	case data == "learn_next":
		h.nextWord(ctx, c.ws, chatID)
	case data == "learn_stop":
		h.stopLearning(c.ws, chatID)
	default:
		h.log.Warn("unknown callback data", zap.String("data", data), zap.Int64("chat_id", chatID))
	}
}

func (h *Handler) handleLogin(ctx context.Context, ws *service.Workspace, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if _, err := h.bot.Request(tgbotapi.NewDeleteMessage(chatID, message.MessageID)); err != nil {
		h.log.Warn("failed to delete login message", zap.Int64("chat_id", chatID), zap.Error(err))
	}

	fields := strings.Fields(message.CommandArguments())
	if len(fields) != 2 {
		h.reply(chatID, "Usage: /login <email> <password>")
		return
	}

	principal, err := ws.Login(ctx, fields[0], fields[1])
	if err != nil {
		var rf *models.RequestFailedError
		if errors.As(err, &rf) && rf.Unauthorized() {
			h.reply(chatID, "Wrong email or password.")
			return
		}
		h.replyError(ws, chatID, err)
		return
	}

	name := principal.Username
	if name == "" {
		name = principal.Email
	}
	h.reply(chatID, fmt.Sprintf("Welcome, %s! Use /words to see your list or /learn to practice.", name))
}

// replyError explains err to the user. A rejected or missing credential logs
// the chat out and points to /login.
func (h *Handler) replyError(ws *service.Workspace, chatID int64, err error) {
	var (
		rf       *models.RequestFailedError
		verr     models.ValidationError
		verrs    models.ValidationErrors
		importEr *transcoder.ImportError
	)

	switch {
	case client.IsUnauthenticated(err):
		ws.Logout()
		h.reply(chatID, "Please /login first.")
	case errors.Is(err, service.ErrStale):
		// the user already moved on
	case errors.Is(err, service.ErrBusy):
		h.reply(chatID, "Still working on your previous request.")
	case errors.Is(err, service.ErrNotReady):
		h.reply(chatID, "Nothing to check yet. Use /learn to get a word, then type the translation.")
	case errors.Is(err, models.ErrNoWords):
		h.reply(chatID, "Your word list is empty. Add words with /add or /import.")
	case errors.As(err, &importEr):
		h.reply(chatID, importErrorText(importEr))
	case errors.As(err, &verrs), errors.As(err, &verr):
		h.reply(chatID, err.Error())
	case errors.As(err, &rf):
		h.reply(chatID, "Request failed: "+rf.Message)
	default:
		h.log.Error("unexpected error", zap.Int64("chat_id", chatID), zap.Error(err))
		h.reply(chatID, "Something went wrong. Try again later.")
	}
}

const maxListedRowErrors = 10

func importErrorText(e *transcoder.ImportError) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Import rejected, nothing was uploaded. %d problem(s):\n", len(e.Errors))
	for i, pe := range e.Errors {
		if i == maxListedRowErrors {
			fmt.Fprintf(&sb, "...and %d more", len(e.Errors)-maxListedRowErrors)
			break
		}
		sb.WriteString(pe.Error())
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (h *Handler) reply(chatID int64, text string) {
	h.send(tgbotapi.NewMessage(chatID, text))
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.log.Warn("failed to answer callback", zap.String("callback_id", id), zap.Error(err))
	}
}

func (h *Handler) send(msg tgbotapi.Chattable) {
	if _, err := h.bot.Send(msg); err != nil {
		h.log.Warn("failed to send message", zap.Error(err))
	}
}
