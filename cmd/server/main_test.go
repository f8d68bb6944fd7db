package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"talk/internal"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestBuildModerator(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	t.Run("should disable moderation without words", func(t *testing.T) {
		req := require.New(t)

		// When
		moderator, err := buildModerator(internal.ServerConfig{}, '*', log)

		// Then
		req.NoError(err)
		req.Nil(moderator)
	})

	t.Run("should merge the dictionaries with the configured words", func(t *testing.T) {
		req := require.New(t)
		dir := t.TempDir()
		req.NoError(os.WriteFile(filepath.Join(dir, "en.txt"), []byte("darn\n"), 0o600))
		config := internal.ServerConfig{CensoredWords: "heck", CensoredWordsDir: dir}

		// When
		moderator, err := buildModerator(config, '*', log)

		// Then
		req.NoError(err)
		req.NotNil(moderator)
		censored, words := moderator.Censor("darn it, heck")
		req.Equal("**** it, ****", censored)
		req.Len(words, 2)
	})
}

func TestRecordMapper(t *testing.T) {
	req := require.New(t)

	// When
	row := RecordMapper("email:ada@example.com", []byte("uid-1"))

	// Then
	req.Equal("EMAIL", row.Type)
	req.Equal("uid-1", row.EntityID)
	req.Equal("ada@example.com", row.Detail)
}
