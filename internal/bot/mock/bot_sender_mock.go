package mock_bot

import (
	"context"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type MockBot struct {
	mu           sync.Mutex
	SentMessages []tgbotapi.Chattable
	Requests     []tgbotapi.Chattable
}

func (m *MockBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SentMessages = append(m.SentMessages, c)
	return tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 123}}, nil
}

func (m *MockBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Requests = append(m.Requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

// Texts returns the text of every sent message and edit, in order.
func (m *MockBot) Texts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	texts := make([]string, 0, len(m.SentMessages))
	for _, c := range m.SentMessages {
		switch msg := c.(type) {
		case tgbotapi.MessageConfig:
			texts = append(texts, msg.Text)
		case tgbotapi.EditMessageTextConfig:
			texts = append(texts, msg.Text)
		}
	}
	return texts
}

func (m *MockBot) Last() tgbotapi.Chattable {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.SentMessages) == 0 {
		return nil
	}
	return m.SentMessages[len(m.SentMessages)-1]
}

func ClearSentMessages(bot *MockBot) {
	bot.mu.Lock()
	defer bot.mu.Unlock()

	bot.SentMessages = nil
	bot.Requests = nil
}

// MockFiles serves uploaded files from memory.
type MockFiles struct {
	Files map[string][]byte
	Err   error
}

func (m *MockFiles) Fetch(_ context.Context, fileID string) ([]byte, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Files[fileID], nil
}
