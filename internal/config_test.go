package internal

import (
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestLoadClientConfig(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		req := require.New(t)

		// When
		cfg, err := LoadClientConfig()

		// Then
		req.NoError(err)
		req.Equal("localhost:8080", cfg.ServerAddr)
		req.Empty(cfg.AppID)
		req.Empty(cfg.InitialToken)
		req.False(cfg.Embedded)
		req.Equal(24*time.Hour, cfg.TokenTTL)
	})

	t.Run("should read prefixed variables", func(t *testing.T) {
		req := require.New(t)
		t.Setenv("TALK_APP_ID", "my-app")
		t.Setenv("TALK_INITIAL_AUTH_TOKEN", "custom")
		t.Setenv("TALK_EMBEDDED", "true")

		// When
		cfg, err := LoadClientConfig()

		// Then
		req.NoError(err)
		req.Equal("my-app", cfg.AppID)
		req.Equal("custom", cfg.InitialToken)
		req.True(cfg.Embedded)
	})
}

func TestServerConfig(t *testing.T) {
	t.Run("should require the token secret", func(t *testing.T) {
		req := require.New(t)
		t.Setenv("BADGER_FILEPATH", "/tmp/talk")

		// When
		var cfg ServerConfig
		_, err := env.UnmarshalFromEnviron(&cfg)

		// Then
		req.Error(err)
	})

	t.Run("should apply defaults", func(t *testing.T) {
		req := require.New(t)
		t.Setenv("BADGER_FILEPATH", "/tmp/talk")
		t.Setenv("AUTH_TOKEN_SECRET", "secret")
		t.Setenv("CENSORED_WORDS", "foo, bar,,")

		// When
		var cfg ServerConfig
		_, err := env.UnmarshalFromEnviron(&cfg)

		// Then
		req.NoError(err)
		req.Equal(8080, cfg.Port)
		req.Equal(2*time.Second, cfg.SinkTimeout)
		req.True(cfg.EnableAnonymous)
		req.Equal([]string{"foo", "bar"}, cfg.CensoredWordList())
	})
}

func TestCharacterRune(t *testing.T) {
	req := require.New(t)

	r, err := CharacterRune("#")
	req.NoError(err)
	req.Equal('#', r)

	_, err = CharacterRune("##")
	req.Error(err)
}
