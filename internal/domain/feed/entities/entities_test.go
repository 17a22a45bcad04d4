package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTweets_StringAndNumberIDs(t *testing.T) {
	data := []byte(`[
		{"id": 1, "text": "hi", "created_at": "2024-01-01T00:00:00Z", "author": {"name": "A", "username": "a"}},
		{"id": "1790000000000000001", "text": "bye", "created_at": "2024-01-02T00:00:00Z"},
		{"id": 1790000000000000002, "text": "big"}
	]`)

	tweets, err := ParseTweets(data)
	require.NoError(t, err)
	require.Len(t, tweets, 3)

	assert.Equal(t, TweetID("1"), tweets[0].ID)
	assert.Equal(t, TweetID("1790000000000000001"), tweets[1].ID)
	assert.Equal(t, TweetID("1790000000000000002"), tweets[2].ID)
	assert.Nil(t, tweets[1].Author)
}

func TestParseTweets_Empty(t *testing.T) {
	tweets, err := ParseTweets([]byte(" [] "))
	require.NoError(t, err)
	assert.NotNil(t, tweets)
	assert.Empty(t, tweets)
}

func TestParseTweets_Rejects(t *testing.T) {
	inputs := []string{
		``,
		`null`,
		`{"data": []}`,
		`"tweets"`,
		`<html>404</html>`,
		`[{"id": 1,`,
		`[{"id": true}]`,
	}

	for _, in := range inputs {
		_, err := ParseTweets([]byte(in))
		assert.Error(t, err, "input %q", in)
	}
}

func TestTweet_Defaults(t *testing.T) {
	tests := []struct {
		name         string
		author       *Author
		wantName     string
		wantUsername string
	}{
		{"no author", nil, "User", "unknown"},
		{"empty author", &Author{}, "User", "unknown"},
		{"name only", &Author{Name: "Ada"}, "Ada", "unknown"},
		{"username only", &Author{Username: "ada"}, "User", "ada"},
		{"full", &Author{Name: "Ada", Username: "ada"}, "Ada", "ada"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := Tweet{Author: tt.author}
			assert.Equal(t, tt.wantName, tw.DisplayName())
			assert.Equal(t, tt.wantUsername, tw.Username())
		})
	}
}

func TestTweet_StatusURL(t *testing.T) {
	tw := Tweet{ID: "123"}
	assert.Equal(t, "https://twitter.com/i/web/status/123", tw.StatusURL())
}
