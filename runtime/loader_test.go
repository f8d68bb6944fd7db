package runtime

import (
	"talk/errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestCensoredLoader_LoadAll(t *testing.T) {
	req := require.New(t)

	// Given two dictionaries sharing a word, and a file that is not one
	fsys := fstest.MapFS{
		"censored/en.txt":    {Data: []byte("spam\r\nscam\n\n")},
		"censored/fr.txt":    {Data: []byte("arnaque\nspam\n")},
		"censored/README.md": {Data: []byte("ignored")},
	}

	// When loading them with an extra word
	data, err := NewCensoredLoader(fsys).LoadAll("censored", " phishing ", "")

	// Then every word is present once
	req.NoError(err)
	req.Equal([]string{"arnaque", "phishing", "scam", "spam"}, data.Words)
	req.ElementsMatch([]string{"en", "fr"}, data.Languages)
}

func TestCensoredLoader_ExtraWordsOnly(t *testing.T) {
	req := require.New(t)

	data, err := NewCensoredLoader(nil).LoadAll("", "spam", "scam")

	req.NoError(err)
	req.Equal([]string{"scam", "spam"}, data.Words)
	req.Empty(data.Languages)
}

func TestCensoredLoader_Empty(t *testing.T) {
	req := require.New(t)

	_, err := NewCensoredLoader(fstest.MapFS{"censored/en.txt": {Data: []byte("\n")}}).LoadAll("censored")

	req.ErrorIs(err, errors.ErrEmptyWords)
}

func TestCensoredLoader_MissingDirectory(t *testing.T) {
	req := require.New(t)

	_, err := NewCensoredLoader(fstest.MapFS{}).LoadAll("censored")

	req.Error(err)
}
