package save

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// TestConfigPath is used for testing to override the save path
var TestConfigPath string

// GetConfigPath returns the default save file path
func GetConfigPath() string {
	if TestConfigPath != "" {
		return TestConfigPath
	}
	return filepath.Join(ConfigDir(), "save.json")
}

// ConfigDir returns ~/.config/animora, falling back to the working directory
// when there is no home directory.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("Error getting home directory: %v", err)
		return "."
	}
	return filepath.Join(home, ".config", "animora")
}

// FileStore keeps a single pet as indented JSON. Paths ending in ".zst" are
// zstd-compressed.
type FileStore struct {
	Path string
}

// NewFileStore returns a store at path, or at the default path when empty
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = GetConfigPath()
	}
	return &FileStore{Path: path}
}

func (s *FileStore) compressed() bool {
	return strings.HasSuffix(s.Path, ".zst")
}

// Load reads the saved record. It returns ErrNoSave if the file does not exist.
func (s *FileStore) Load(ctx context.Context) (Record, error) {
	var rec Record
	if err := ctx.Err(); err != nil {
		return rec, err
	}

	f, err := os.Open(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return rec, ErrNoSave
	}
	if err != nil {
		return rec, fmt.Errorf("open save: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if s.compressed() {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return rec, fmt.Errorf("zstd reader: %w", err)
		}
		defer dec.Close()
		r = dec
	}

	if err := json.NewDecoder(bufio.NewReader(r)).Decode(&rec); err != nil {
		return rec, fmt.Errorf("decode save %s: %w", s.Path, err)
	}
	return rec, nil
}

// Save writes rec, replacing any previous save. The file is written to a
// temporary name first so a crash never leaves a half-written save.
func (s *FileStore) Save(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("create save directory: %w", err)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}

	tmp := s.Path + ".tmp"
	if err := s.writeFile(tmp, data); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		return fmt.Errorf("replace save: %w", err)
	}
	log.Printf("Saved %s to %s", rec.PetName, s.Path)
	return nil
}

func (s *FileStore) writeFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create save: %w", err)
	}
	defer f.Close()

	if !s.compressed() {
		if _, err := f.Write(data); err != nil {
			return fmt.Errorf("write save: %w", err)
		}
		return f.Sync()
	}

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("zstd writer: %w", err)
	}
	if _, err := enc.Write(data); err != nil {
		enc.Close()
		return fmt.Errorf("write save: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flush save: %w", err)
	}
	return f.Sync()
}

// Close is a no-op; the file is opened per call
func (s *FileStore) Close() error { return nil }
