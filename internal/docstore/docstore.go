// Package docstore loads a corpus of documents from a directory of plain
// text files, one document per *.txt file, the filename (including the
// .txt extension) becoming its DocumentId.
package docstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/siftsearch/sift"
)

// LoadFolder reads every *.txt file directly under dir into a
// {DocumentId -> text} map. Returns sift.ErrMissingCorpus if dir does not
// exist or contains no *.txt files.
func LoadFolder(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading corpus directory %q: %w", dir, sift.ErrMissingCorpus)
	}

	documents := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading document %q: %w", path, err)
		}
		docID := entry.Name()
		documents[docID] = string(content)
	}

	if len(documents) == 0 {
		return nil, fmt.Errorf("no *.txt documents in %q: %w", dir, sift.ErrMissingCorpus)
	}
	return documents, nil
}
