package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/DanRulev/wordtrainer/internal/models"
	"github.com/DanRulev/wordtrainer/internal/service"
)

var sortAliases = map[string]service.SortKey{
	"word":             service.SortByOriginalWord,
	"original":         service.SortByOriginalWord,
	"originalword":     service.SortByOriginalWord,
	"difficulty":       service.SortByDifficulty,
	"difficultylevel":  service.SortByDifficulty,
	"proficiency":      service.SortByProficiency,
	"proficiencylevel": service.SortByProficiency,
}

func (h *Handler) showWords(ctx context.Context, ws *service.Workspace, chatID int64) {
	page, err := ws.Refresh(ctx)
	if err != nil {
		h.replyError(ws, chatID, err)
		return
	}
	h.sendPage(chatID, page)
}

func (h *Handler) sendPage(chatID int64, page service.Page) {
	msg := tgbotapi.NewMessage(chatID, formatPage(page))
	msg.ReplyMarkup = pageKeyboard(page)
	h.send(msg)
}

func (h *Handler) editPage(message *tgbotapi.Message, page service.Page) {
	edit := tgbotapi.NewEditMessageText(message.Chat.ID, message.MessageID, formatPage(page))
	kb := pageKeyboard(page)
	edit.ReplyMarkup = &kb
	h.send(edit)
}

func (h *Handler) handleSort(ws *service.Workspace, chatID int64, args string) {
	key, ok := sortAliases[strings.ToLower(args)]
	if !ok {
		h.reply(chatID, "Usage: /sort <word|difficulty|proficiency>")
		return
	}
	page, err := ws.Sort(key)
	if err != nil {
		h.replyError(ws, chatID, err)
		return
	}
	h.sendPage(chatID, page)
}

func (h *Handler) handlePage(ws *service.Workspace, chatID int64, args string) {
	n, err := strconv.Atoi(args)
	if err != nil {
		h.reply(chatID, "Usage: /page <n>")
		return
	}
	h.sendPage(chatID, ws.SetPage(n-1))
}

func (h *Handler) handleSize(ws *service.Workspace, chatID int64, args string) {
	n, err := strconv.Atoi(args)
	if err != nil {
		h.reply(chatID, "Usage: /size <5|10|25>")
		return
	}
	page, err := ws.SetPageSize(n)
	if err != nil {
		h.replyError(ws, chatID, err)
		return
	}
	h.sendPage(chatID, page)
}

func (h *Handler) handleLanguage(ws *service.Workspace, chatID int64, args string) {
	var lang models.Language
	if !strings.EqualFold(args, "all") {
		var ok bool
		if lang, ok = models.ParseLanguage(args); !ok {
			h.reply(chatID, "Usage: /lang <english|polish|french|german|spanish|all>")
			return
		}
	}

	ws.SetLanguage(lang)
	h.sendPage(chatID, ws.Filter(lang))
}

// parseWord reads "word | translation | language | difficulty". Difficulty
// defaults to 1.
func parseWord(args string) (models.NewWord, bool) {
	parts := lo.Map(strings.Split(args, "|"), func(s string, _ int) string { return strings.TrimSpace(s) })
	if len(parts) < 3 || len(parts) > 4 {
		return models.NewWord{}, false
	}

	w := models.NewWord{
		OriginalWord:    parts[0],
		Translation:     parts[1],
		Language:        models.Language(parts[2]),
		DifficultyLevel: models.MinDifficulty,
	}
	if len(parts) == 4 && parts[3] != "" {
		d, err := strconv.Atoi(parts[3])
		if err != nil {
			return models.NewWord{}, false
		}
		w.DifficultyLevel = d
	}
	return w, true
}

func (h *Handler) handleAdd(ctx context.Context, ws *service.Workspace, chatID int64, args string) {
	nw, ok := parseWord(args)
	if !ok {
		h.reply(chatID, "Usage: /add <word> | <translation> | <language> | <difficulty 1-3>")
		return
	}

	w, err := ws.Add(ctx, nw)
	if err != nil {
		h.replyError(ws, chatID, err)
		return
	}
	h.reply(chatID, "Added: "+formatWord(w))
}

func (h *Handler) handleEdit(ctx context.Context, ws *service.Workspace, chatID int64, args string) {
	pos, rest, _ := strings.Cut(args, " ")
	words, ok := pickWords(ws.View(), []string{pos})
	nw, parsed := parseWord(rest)
	if !ok || !parsed {
		h.reply(chatID, "Usage: /edit <n> <word> | <translation> | <language> | <difficulty>")
		return
	}

	w, err := ws.Update(ctx, words[0].ID, nw)
	if err != nil {
		h.replyError(ws, chatID, err)
		return
	}
	h.reply(chatID, "Updated: "+formatWord(w))
}

func (h *Handler) handleShow(ctx context.Context, ws *service.Workspace, chatID int64, args string) {
	words, ok := pickWords(ws.View(), strings.Fields(args))
	if !ok || len(words) != 1 {
		h.reply(chatID, "Usage: /show <n>")
		return
	}

	w, err := ws.Lookup(ctx, words[0].ID)
	if err != nil {
		h.replyError(ws, chatID, err)
		return
	}
	h.reply(chatID, formatWord(w))
}

func (h *Handler) handleDelete(ctx context.Context, ws *service.Workspace, chatID int64, args string) {
	words, ok := pickWords(ws.View(), strings.Fields(args))
	if !ok {
		h.reply(chatID, "Usage: /del <n> [n...] with numbers from the current page of /words")
		return
	}

	if len(words) == 1 {
		if err := ws.Delete(ctx, words[0].ID); err != nil {
			h.replyError(ws, chatID, err)
			return
		}
		h.reply(chatID, "Deleted: "+words[0].OriginalWord)
		return
	}

	ids := lo.Map(words, func(w models.Word, _ int) int64 { return w.ID })
	n, err := ws.DeleteMany(ctx, ids)
	if err != nil {
		h.replyError(ws, chatID, err)
		return
	}
	h.reply(chatID, fmt.Sprintf("Deleted %d word(s).", n))
}

// pickWords maps 1-based positions on the visible page to words.
func pickWords(page service.Page, positions []string) ([]models.Word, bool) {
	if len(positions) == 0 {
		return nil, false
	}

	picked := make([]models.Word, 0, len(positions))
	for _, p := range lo.Uniq(positions) {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 || n > len(page.Words) {
			return nil, false
		}
		picked = append(picked, page.Words[n-1])
	}
	return picked, true
}

func (h *Handler) handleExport(ctx context.Context, ws *service.Workspace, chatID int64) {
	data, err := ws.Export(ctx)
	if err != nil {
		h.replyError(ws, chatID, err)
		return
	}
	h.send(tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: "vocabulary.csv", Bytes: data}))
}

func (h *Handler) handleExportXLSX(ctx context.Context, ws *service.Workspace, chatID int64) {
	data, err := ws.ExportXLSX(ctx)
	if err != nil {
		h.replyError(ws, chatID, err)
		return
	}
	h.send(tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: "vocabulary.xlsx", Bytes: data}))
}

func (h *Handler) handleDocument(ctx context.Context, ws *service.Workspace, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	doc := message.Document

	if _, ok := ws.CurrentUser(); !ok {
		h.reply(chatID, "Please /login first.")
		return
	}
	if doc.FileSize > maxFileSize {
		h.reply(chatID, fmt.Sprintf("The file is too large, the limit is %d MB.", maxFileSize>>20))
		return
	}

	data, err := h.files.Fetch(ctx, doc.FileID)
	if err != nil {
		h.log.Warn("failed to download import file", zap.Int64("chat_id", chatID), zap.String("file", doc.FileName), zap.Error(err))
		h.reply(chatID, "Could not download the file. Try again.")
		return
	}

	n, err := ws.Import(ctx, data, doc.FileName)
	if err != nil {
		h.replyError(ws, chatID, err)
		return
	}
	h.reply(chatID, fmt.Sprintf("Imported %d word(s). Use /words to see them.", n))
}

func (h *Handler) handleSuggest(ctx context.Context, ws *service.Workspace, chatID int64, args string) {
	fields := strings.SplitN(args, " ", 3)
	usage := "Usage: /suggest <from> <to> <text>, e.g. /suggest english spanish cat"
	if len(fields) != 3 {
		h.reply(chatID, usage)
		return
	}
	from, okFrom := models.ParseLanguage(fields[0])
	to, okTo := models.ParseLanguage(fields[1])
	if !okFrom || !okTo {
		h.reply(chatID, usage)
		return
	}

	text := strings.TrimSpace(fields[2])
	s, err := ws.Suggest(ctx, text, from, to)
	if err != nil {
		h.log.Warn("suggestion failed", zap.Int64("chat_id", chatID), zap.Error(err))
		h.reply(chatID, "No suggestion available right now.")
		return
	}

	reply := fmt.Sprintf("%s → %s", text, s.Text)
	if !s.Reliable {
		reply += " (low confidence)"
	}
	if len(s.Alternatives) > 0 {
		reply += "\nAlso: " + strings.Join(s.Alternatives, ", ")
	}
	h.reply(chatID, reply)
}

func (h *Handler) pageCallback(ws *service.Workspace, query *tgbotapi.CallbackQuery) {
	n, err := strconv.Atoi(strings.TrimPrefix(query.Data, "page_"))
	if err != nil {
		h.log.Warn("bad page callback", zap.String("data", query.Data))
		return
	}
	h.editPage(query.Message, ws.SetPage(n))
}

func (h *Handler) sortCallback(ws *service.Workspace, query *tgbotapi.CallbackQuery) {
	page, err := ws.Sort(service.SortKey(strings.TrimPrefix(query.Data, "sort_")))
	if err != nil {
		h.log.Warn("bad sort callback", zap.String("data", query.Data), zap.Error(err))
		return
	}
	h.editPage(query.Message, page)
}

func formatWord(w models.Word) string {
	return fmt.Sprintf("%s - %s (%s, difficulty %d, proficiency %d/%d)",
		w.OriginalWord, w.Translation, w.Language, w.DifficultyLevel, w.ProficiencyLevel, models.MaxProficiency)
}

func formatPage(page service.Page) string {
	var sb strings.Builder

	lang := "all languages"
	if page.View.Language != "" {
		lang = string(page.View.Language)
	}
	arrow := "↑"
	if page.View.SortDir == service.SortDesc {
		arrow = "↓"
	}
	fmt.Fprintf(&sb, "Your words: %d (%s), page %d/%d, sorted by %s %s\n",
		page.Total, lang, page.View.Page+1, page.Pages, page.View.SortKey, arrow)

	if len(page.Words) == 0 {
		sb.WriteString("\nNothing here yet. Add words with /add or /import.")
		return sb.String()
	}

	for i, w := range page.Words {
		fmt.Fprintf(&sb, "\n%d. %s", i+1, formatWord(w))
	}
	return sb.String()
}

func pageKeyboard(page service.Page) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	nav := make([]tgbotapi.InlineKeyboardButton, 0, 2)
	if page.View.Page > 0 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("◀️ Prev", fmt.Sprintf("page_%d", page.View.Page-1)))
	}
	if page.View.Page+1 < page.Pages {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("Next ▶️", fmt.Sprintf("page_%d", page.View.Page+1)))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Word", "sort_"+string(service.SortByOriginalWord)),
		tgbotapi.NewInlineKeyboardButtonData("Difficulty", "sort_"+string(service.SortByDifficulty)),
		tgbotapi.NewInlineKeyboardButtonData("Proficiency", "sort_"+string(service.SortByProficiency)),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
