package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/statcard/pkg/errors"
	"github.com/matzehuels/statcard/pkg/statscard"
)

// FileSource reads records from <dir>/<username>.toml or
// <dir>/<username>.json, preferring TOML. Usernames are lowercased.
type FileSource struct {
	dir string
}

// NewFileSource returns a source reading from dir.
func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

// Name implements [Source].
func (s *FileSource) Name() string { return "file" }

// Fetch implements [Source].
func (s *FileSource) Fetch(ctx context.Context, username string) (statscard.Stats, error) {
	if err := errors.ValidateUsername(username); err != nil {
		return statscard.Stats{}, err
	}
	base := filepath.Join(s.dir, strings.ToLower(username))
	for _, ext := range []string{".toml", ".json"} {
		stats, err := ReadFile(base + ext)
		if os.IsNotExist(err) {
			continue
		}
		return stats, err
	}
	return statscard.Stats{}, fmt.Errorf("%s: %w", username, ErrNotFound)
}

// ReadFile decodes a single stats record. The format follows the file
// extension: .toml, otherwise JSON.
func ReadFile(path string) (statscard.Stats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return statscard.Stats{}, err
	}
	var stats statscard.Stats
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &stats)
	} else {
		err = json.Unmarshal(data, &stats)
	}
	if err != nil {
		return statscard.Stats{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return stats, nil
}

var _ Source = (*FileSource)(nil)
