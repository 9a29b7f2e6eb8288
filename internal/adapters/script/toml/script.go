package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/tabboard/internal/domain"
	"github.com/bnema/tabboard/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	scriptFileMode  = 0o644
	scriptDirMode   = 0o755
	tempFilePattern = ".script-*.toml.tmp"
)

// Script is a versioned TOML file holding an ordered list of UI events.
type Script struct {
	path string
}

var _ ports.EventSource = (*Script)(nil)

func NewScript(path string) (*Script, error) {
	if path == "" {
		return nil, errors.New("script path is empty")
	}

	normalized, err := normalizeScriptPath(path)
	if err != nil {
		return nil, err
	}

	return &Script{path: normalized}, nil
}

func (s *Script) Path() string {
	return s.path
}

func (s *Script) Load(ctx context.Context) ([]domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read script file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode script file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return nil, err
	}
	file.applyDefaults()

	events := make([]domain.Event, 0, len(file.Events))
	for i, entry := range file.Events {
		event, err := fromSchema(i, entry)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

// Save replaces the script file with events. The file is written to a
// temporary sibling first and renamed into place.
func (s *Script) Save(ctx context.Context, events []domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file := fileSchema{Events: make([]eventSchema, 0, len(events))}
	file.applyDefaults()
	for _, event := range events {
		if !event.Type.Valid() {
			return fmt.Errorf("%w: %q", domain.ErrUnknownEventType, event.Type)
		}
		file.Events = append(file.Events, toSchema(event))
	}

	return s.writeSchema(file)
}

func (s *Script) writeSchema(file fileSchema) error {
	if err := os.MkdirAll(filepath.Dir(s.path), scriptDirMode); err != nil {
		return fmt.Errorf("create script directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode script file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp script file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp script file: %w", err)
	}

	if err := tempFile.Chmod(scriptFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp script file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp script file: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace script file: %w", err)
	}

	cleanup = false
	return nil
}

func normalizeScriptPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve script path: %w", err)
	}

	return filepath.Clean(absPath), nil
}
