package bot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const maxFileSize = 5 << 20

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// FileFetcher downloads a file a user sent to the bot.
type FileFetcher interface {
	Fetch(ctx context.Context, fileID string) ([]byte, error)
}

type TelegramAPI struct {
	bot     *tgbotapi.BotAPI
	handler *Handler
	log     *zap.Logger
}

func NewBotAPI(botToken, env string) (*tgbotapi.BotAPI, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	bot.Debug = env == "development"
	return bot, nil
}

func NewTelegramAPI(bot *tgbotapi.BotAPI, handler *Handler, log *zap.Logger) *TelegramAPI {
	return &TelegramAPI{
		bot:     bot,
		handler: handler,
		log:     log,
	}
}

// Start handles updates until ctx is cancelled, then waits for the handlers
// still running.
func (t *TelegramAPI) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)
	t.log.Info("bot started", zap.String("username", t.bot.Self.UserName))

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			t.bot.StopReceivingUpdates()
			t.log.Info("bot stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				t.handler.HandleUpdate(ctx, update)
			}()
		}
	}
}

type TelegramFiles struct {
	bot  *tgbotapi.BotAPI
	http *http.Client
}

func NewTelegramFiles(bot *tgbotapi.BotAPI, client *http.Client) *TelegramFiles {
	return &TelegramFiles{bot: bot, http: client}
}

func (f *TelegramFiles) Fetch(ctx context.Context, fileID string) ([]byte, error) {
	url, err := f.bot.GetFileDirectURL(fileID)
	if err != nil {
		return nil, fmt.Errorf("resolve file %s: %w", fileID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file %s: status %d", fileID, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("download file %s: %w", fileID, err)
	}
	if len(data) > maxFileSize {
		return nil, fmt.Errorf("file %s is larger than %d bytes", fileID, maxFileSize)
	}
	return data, nil
}
