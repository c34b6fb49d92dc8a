package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/DanRulev/wordtrainer/internal/apitest"
	"github.com/DanRulev/wordtrainer/internal/storage/session"
)

func TestInitClients(t *testing.T) {
	t.Parallel()

	srv := apitest.NewServer()
	defer srv.Close()
	srv.AddUser(testEmail, testPassword)
	srv.Seed(spanish("cat", "gato"))

	clients := InitClients(srv.URL, "", time.Second, zap.NewNop())
	assert.Equal(t, myMemoryURL, clients.MyMemoryAPI.baseURL)

	_, cred, err := clients.Login(context.Background(), testEmail, testPassword)
	require.NoError(t, err)

	store := session.NewStore()
	store.Set(cred)

	words, err := clients.Words(store).List(context.Background())
	require.NoError(t, err)
	assert.Len(t, words, 1)
}
