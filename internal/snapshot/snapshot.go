// Package snapshot persists the whole catalog as a single JSON file. The
// file is the entire durable state: saving rewrites it atomically and
// loading rehydrates every entity, including historical reservations whose
// dates would no longer pass creation-time validation.
package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"casarural/internal/domain"
	apperrors "casarural/internal/errors"
)

type Data struct {
	House        domain.House
	Rooms        []*domain.Room
	Clients      []*domain.Client
	Reservations []*domain.Reservation
}

type Store struct {
	path   string
	logger *zap.Logger
}

func NewStore(path string, logger *zap.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger,
	}
}

func (s *Store) Path() string { return s.path }

// Save writes the snapshot. The file is written to a temp path and renamed
// into place so a failed save never truncates the previous snapshot.
func (s *Store) Save(data Data) error {
	file := encodeSnapshot(data)

	raw, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return apperrors.NewInternalError("encoding snapshot", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return apperrors.NewInternalError("creating snapshot directory", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return apperrors.NewInternalError("writing snapshot", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return apperrors.NewInternalError("replacing snapshot", err)
	}

	s.logger.Info("snapshot saved",
		zap.String("path", s.path),
		zap.Int("reservations", len(data.Reservations)))
	return nil
}

// Load reads and rehydrates the snapshot. A missing file is reported as
// NotFound so the caller can choose to start empty.
func (s *Store) Load() (*Data, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewNotFoundError("snapshot file not found: " + s.path)
		}
		return nil, apperrors.NewInternalError("reading snapshot", err)
	}

	var file snapshotFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, apperrors.NewInternalError("parsing snapshot", err)
	}

	data, err := decodeSnapshot(file)
	if err != nil {
		return nil, err
	}

	s.logger.Info("snapshot loaded",
		zap.String("path", s.path),
		zap.Int("reservations", len(data.Reservations)))
	return data, nil
}
