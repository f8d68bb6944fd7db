package runtime

import (
	"bufio"
	"bytes"
	"io/fs"
	"path"
	"sort"
	"strings"
	"talk/errors"
)

// CensoredData carries the result of the loading process including metadata for logging.
type CensoredData struct {
	Words     []string
	Languages []string
}

// CensoredLoader reads blacklisted words from a directory of dictionaries.
type CensoredLoader struct {
	fs fs.FS
}

func NewCensoredLoader(f fs.FS) *CensoredLoader {
	return &CensoredLoader{fs: f}
}

// LoadAll reads every .txt file of dir as a language dictionary (one word
// per line) and merges them with the extra words. Duplicates are removed.
func (l *CensoredLoader) LoadAll(dir string, extra ...string) (*CensoredData, error) {
	uniqueWords := make(map[string]struct{})
	for _, w := range extra {
		if w = strings.TrimSpace(w); w != "" {
			uniqueWords[w] = struct{}{}
		}
	}

	var languages []string
	if l.fs != nil {
		entries, err := fs.ReadDir(l.fs, dir)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() || path.Ext(entry.Name()) != ".txt" {
				continue
			}
			languages = append(languages, strings.TrimSuffix(entry.Name(), ".txt"))

			data, err := fs.ReadFile(l.fs, path.Join(dir, entry.Name()))
			if err != nil {
				return nil, err
			}

			// Scanner handles \n and \r\n alike
			scanner := bufio.NewScanner(bytes.NewReader(data))
			for scanner.Scan() {
				if line := strings.TrimSpace(scanner.Text()); line != "" {
					uniqueWords[line] = struct{}{}
				}
			}
			if err := scanner.Err(); err != nil {
				return nil, err
			}
		}
	}

	if len(uniqueWords) == 0 {
		return nil, errors.ErrEmptyWords
	}

	words := make([]string, 0, len(uniqueWords))
	for w := range uniqueWords {
		words = append(words, w)
	}
	sort.Strings(words)

	return &CensoredData{Words: words, Languages: languages}, nil
}
