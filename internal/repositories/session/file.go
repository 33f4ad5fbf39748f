package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/popdriving/sessionbook/internal/models"
)

// FileConfig holds configuration for the file session repository
type FileConfig struct {
	// Path to the JSON document, e.g. "sessions.json"
	Path string
}

// fileRepository implements the Repository interface using a single
// JSON file on disk, the format earlier deployments used.
type fileRepository struct {
	path string
}

// NewFile creates a new file-backed session repository
func NewFile(cfg *FileConfig) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("path cannot be empty")
	}

	return &fileRepository{
		path: cfg.Path,
	}, nil
}

// LoadSessions retrieves the whole session collection from disk
func (r *fileRepository) LoadSessions(ctx context.Context, input *LoadSessionsInput) (*LoadSessionsOutput, error) {
	doc, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// No document yet means no sessions booked
			return &LoadSessionsOutput{
				Sessions: map[string]*models.Session{},
			}, nil
		}
		return nil, fmt.Errorf("%w: failed to read %s: %v", ErrStorage, r.path, err)
	}

	var sessions map[string]*models.Session
	if err := json.Unmarshal(doc, &sessions); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal %s: %v", ErrStorage, r.path, err)
	}

	if sessions == nil {
		sessions = map[string]*models.Session{}
	}

	return &LoadSessionsOutput{
		Sessions: sessions,
	}, nil
}

// SaveSessions replaces the whole session collection on disk. The
// document is written to a uniquely named temp file and renamed into
// place, so a crash mid-write never leaves a truncated store behind.
func (r *fileRepository) SaveSessions(ctx context.Context, input *SaveSessionsInput) error {
	if input == nil || input.Sessions == nil {
		return errors.New("input and sessions cannot be nil")
	}

	doc, err := json.MarshalIndent(input.Sessions, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal sessions: %v", ErrStorage, err)
	}

	tmp := filepath.Join(filepath.Dir(r.path), fmt.Sprintf(".%s.%s.tmp", filepath.Base(r.path), uuid.NewString()))
	if err := os.WriteFile(tmp, doc, 0644); err != nil {
		return fmt.Errorf("%w: failed to write %s: %v", ErrStorage, tmp, err)
	}

	if err := os.Rename(tmp, r.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: failed to replace %s: %v", ErrStorage, r.path, err)
	}

	return nil
}
