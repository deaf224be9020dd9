// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-table-order/internal/logger"
	"github.com/MKhiriev/go-table-order/models"
)

// stateStore is the single in-process writer of the snapshot. The mutex is
// held across load, mutate and save, so two concurrent orders never
// overwrite each other.
type stateStore struct {
	mu      sync.Mutex
	backend SnapshotBackend
	logger  *logger.Logger
}

// NewStateStore wraps backend. Only one StateStore may write a given backend.
func NewStateStore(backend SnapshotBackend, log *logger.Logger) StateStore {
	return &stateStore{
		backend: backend,
		logger:  log,
	}
}

func (s *stateStore) Read(ctx context.Context) (models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, err := s.load(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}
	return snapshot.Clone(), nil
}

func (s *stateStore) Update(ctx context.Context, fn func(*models.Snapshot) error) (models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, err := s.load(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}

	working := snapshot.Clone()
	if err = fn(&working); err != nil {
		return models.Snapshot{}, err
	}

	if err = s.backend.Save(ctx, working); err != nil {
		s.logger.Err(err).Str("func", "*stateStore.Update").Msg("error saving snapshot")
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return working.Clone(), nil
}

func (s *stateStore) Close() error {
	return s.backend.Close()
}

// load reads the snapshot, bootstrapping an empty one on first use. Must be
// called with s.mu held.
func (s *stateStore) load(ctx context.Context) (models.Snapshot, error) {
	snapshot, err := s.backend.Load(ctx)
	switch {
	case err == nil:
		return snapshot, nil
	case errors.Is(err, ErrSnapshotNotFound):
		snapshot = models.NewSnapshot()
		if err = s.backend.Save(ctx, snapshot); err != nil {
			s.logger.Err(err).Str("func", "*stateStore.load").Msg("error bootstrapping snapshot")
			return models.Snapshot{}, fmt.Errorf("%w: %w", ErrStorage, err)
		}
		s.logger.Info().Msg("created empty snapshot")
		return snapshot, nil
	default:
		s.logger.Err(err).Str("func", "*stateStore.load").Msg("error loading snapshot")
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}
}
