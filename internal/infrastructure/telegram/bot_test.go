package telegram

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChatID(t *testing.T) {
	assert.Equal(t, int64(-1001234567890), ParseChatID("-1001234567890"))
	assert.Equal(t, int64(42), ParseChatID("42"))
	assert.Equal(t, "@tweet_alerts", ParseChatID("@tweet_alerts"))
}

func TestNewBot_Validation(t *testing.T) {
	_, err := NewBot("", "42", zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token")

	_, err = NewBot("token", "", zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat id")
}
