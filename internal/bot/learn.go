package bot

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/DanRulev/wordtrainer/internal/service"
)

func (h *Handler) startLearning(ctx context.Context, ws *service.Workspace, chatID int64) {
	state, err := ws.Start(ctx)
	if err != nil {
		h.replyError(ws, chatID, err)
		return
	}
	h.sendPrompt(chatID, state)
}

func (h *Handler) nextWord(ctx context.Context, ws *service.Workspace, chatID int64) {
	state, err := ws.Next(ctx)
	if errors.Is(err, service.ErrNotReady) {
		h.reply(chatID, "Answer the current word first, or use /learn to start.")
		return
	}
	if err != nil {
		h.replyError(ws, chatID, err)
		return
	}
	h.sendPrompt(chatID, state)
}

func (h *Handler) submitGuess(ctx context.Context, ws *service.Workspace, chatID int64, text string) {
	state, err := ws.Guess(ctx, text)
	if err != nil {
		h.replyError(ws, chatID, err)
		return
	}
	h.sendResult(chatID, state)
}

func (h *Handler) stopLearning(ws *service.Workspace, chatID int64) {
	ws.Reset()
	h.reply(chatID, "Practice stopped. "+formatStats(ws.Stats()))
}

func (h *Handler) showStats(ws *service.Workspace, chatID int64) {
	h.reply(chatID, formatStats(ws.Stats()))
}

func (h *Handler) sendPrompt(chatID int64, state service.LearnState) {
	w := state.Word
	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("Translate: %s\n(%s, difficulty %d, proficiency %d)\nType your answer.",
		w.OriginalWord, w.Language, w.DifficultyLevel, w.ProficiencyLevel))
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⏹ Stop", "learn_stop"),
	))
	h.send(msg)
}

func (h *Handler) sendResult(chatID int64, state service.LearnState) {
	r := state.Result
	text := "✅ " + r.Message
	if !r.Correct {
		text = "❌ " + r.Message
		if r.Message == "" {
			text = "❌ Incorrect. The correct answer is: " + r.CorrectTranslation
		}
	} else if r.Message == "" {
		text = "✅ Correct!"
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("▶️ Next", "learn_next"),
		tgbotapi.NewInlineKeyboardButtonData("⏹ Stop", "learn_stop"),
	))
	h.send(msg)
}

func formatStats(s service.Stats) string {
	if s.Total == 0 {
		return "No answers yet."
	}
	return fmt.Sprintf("Score: %d/%d correct (%d%%).", s.Correct, s.Total, s.Correct*100/s.Total)
}
