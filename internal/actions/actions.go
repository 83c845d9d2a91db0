package actions

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"flashfind/internal/domain"
	"flashfind/internal/platform"
	"flashfind/internal/results"
)

// Verbs used in selection errors, one per item action
const (
	VerbOpen       = "open"
	VerbCopy       = "copy its path"
	VerbOpenFolder = "open its containing folder"
	VerbPreview    = "preview"
)

// Service runs the per-item and bulk actions on a result store
type Service struct {
	store  *results.Store
	opener platform.Opener
	clip   platform.Clipboard
	stat   func(string) (os.FileInfo, error)
	log    zerolog.Logger
}

// New creates an action service
func New(store *results.Store, opener platform.Opener, clip platform.Clipboard, log zerolog.Logger) *Service {
	return &Service{
		store:  store,
		opener: opener,
		clip:   clip,
		stat:   os.Stat,
		log:    log,
	}
}

// Store returns the store the service acts on
func (s *Service) Store() *results.Store {
	return s.store
}

// OpenSelected opens the selected path with the default application
func (s *Service) OpenSelected() error {
	path, _, err := s.existingSelection(VerbOpen)
	if err != nil {
		return err
	}
	return s.opener.Open(path)
}

// CopySelectedPath places the selected path on the clipboard
func (s *Service) CopySelectedPath() (string, error) {
	path, err := s.selection(VerbCopy)
	if err != nil {
		return "", err
	}
	if err := s.clip.WriteAll(path); err != nil {
		return "", fmt.Errorf("copy to clipboard: %w", err)
	}
	s.log.Debug().Str("path", path).Msg("copied path")
	return path, nil
}

// OpenContainingFolder opens the parent directory of the selected path
func (s *Service) OpenContainingFolder() error {
	path, _, err := s.existingSelection(VerbOpenFolder)
	if err != nil {
		return err
	}
	return s.opener.Open(filepath.Dir(path))
}

// PreviewTarget returns the selected path if it is a regular file that can be paged
func (s *Service) PreviewTarget() (string, error) {
	path, info, err := s.existingSelection(VerbPreview)
	if err != nil {
		return "", err
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%s: %w", path, domain.ErrNotAFile)
	}
	return path, nil
}

// Clear empties the result list
func (s *Service) Clear() {
	s.store.Clear()
}

// CheckSave reports whether there is anything to save.
// It runs before the destination prompt so an empty list never opens it.
func (s *Service) CheckSave() error {
	if s.store.Len() == 0 {
		return domain.ErrNothingToSave
	}
	return nil
}

// Save writes the results to path, one per line
func (s *Service) Save(path string) error {
	if err := s.CheckSave(); err != nil {
		return err
	}
	if err := s.store.SaveToFile(path); err != nil {
		s.log.Error().Str("path", path).Err(err).Msg("save failed")
		return err
	}
	s.log.Info().Str("path", path).Int("results", s.store.Len()).Msg("results saved")
	return nil
}

func (s *Service) selection(verb string) (string, error) {
	path, ok := s.store.Selected()
	if !ok {
		return "", &domain.SelectionError{Verb: verb}
	}
	return path, nil
}

func (s *Service) existingSelection(verb string) (string, os.FileInfo, error) {
	path, err := s.selection(verb)
	if err != nil {
		return "", nil, err
	}
	info, err := s.stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil, fmt.Errorf("%s: %w", path, domain.ErrStalePath)
		}
		return "", nil, fmt.Errorf("stat %s: %w", path, err)
	}
	return path, info, nil
}
