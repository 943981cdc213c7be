package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/soufianesaid-dot/Gymtrackerr/internal/storage"
)

const backupPrefix = "aura_strength_backup_"

// ExportFilename names a backup after the current UTC date.
func ExportFilename(now time.Time) string {
	return backupPrefix + now.UTC().Format("2006-01-02") + ".json"
}

// Export writes the whole log as pretty-printed JSON.
func (s *Service) Export(w io.Writer) error {
	logs := s.store.All()
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(logs); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// ExportToDir writes a dated backup file into dir and returns its path.
func (s *Service) ExportToDir(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}
	var buf bytes.Buffer
	if err := s.Export(&buf); err != nil {
		return "", err
	}
	path := filepath.Join(dir, ExportFilename(s.now()))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	s.logger.Info("backup exported", zap.String("path", path), zap.Int("entries", s.store.Len()))
	return path, nil
}

// DecodeBackup parses a backup document. The root must be a JSON array and
// every element an exercise log object.
func DecodeBackup(data []byte) ([]storage.ExerciseLog, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ImportError{Reason: "not valid JSON", Err: err}
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &ImportError{Reason: "top-level value is not an array"}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, &ImportError{Reason: "not valid JSON", Err: err}
	}
	logs := make([]storage.ExerciseLog, 0, len(items))
	for i, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] != '{' {
			return nil, &ImportError{Reason: fmt.Sprintf("entry %d is not an object", i)}
		}
		var l storage.ExerciseLog
		if err := json.Unmarshal(item, &l); err != nil {
			return nil, &ImportError{Reason: fmt.Sprintf("entry %d", i), Err: err}
		}
		logs = append(logs, l)
	}
	return logs, nil
}

// Import replaces the whole log with the backup read from r. On any error the
// current log is left untouched. It returns the number of imported entries.
func (s *Service) Import(ctx context.Context, r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("read backup: %w", err)
	}
	logs, err := DecodeBackup(data)
	if err != nil {
		s.logger.Warn("backup rejected", zap.Error(err))
		return 0, err
	}
	if err := s.store.Replace(ctx, logs); err != nil {
		return 0, fmt.Errorf("import: %w", err)
	}
	s.logger.Info("backup imported", zap.Int("entries", len(logs)))
	return len(logs), nil
}

// ImportFile is Import for a path on disk.
func (s *Service) ImportFile(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open backup: %w", err)
	}
	defer f.Close()
	return s.Import(ctx, f)
}
