package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Kavitha8494/ca/internal/config"
	"github.com/Kavitha8494/ca/internal/repository/mocks"
	"github.com/Kavitha8494/ca/internal/storage"
	storagemocks "github.com/Kavitha8494/ca/internal/storage/mocks"
)

func TestSweeper_SweepOnce(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	cfg := config.SweepConfig{Interval: time.Minute, Grace: time.Hour}

	newSweeper := func(store *storagemocks.MockStorage, repo *mocks.MockCareerRepository) *Sweeper {
		s := NewSweeper(store, repo, cfg)
		s.now = func() time.Time { return now }
		return s
	}

	t.Run("removes only aged orphans", func(t *testing.T) {
		store := new(storagemocks.MockStorage)
		repo := new(mocks.MockCareerRepository)
		s := newSweeper(store, repo)

		store.On("List", ctx, "resumes/").Return([]storage.ObjectInfo{
			{Key: "resumes/orphan-old.pdf", LastModified: now.Add(-2 * time.Hour)},
			{Key: "resumes/referenced-old.pdf", LastModified: now.Add(-2 * time.Hour)},
			{Key: "resumes/orphan-fresh.pdf", LastModified: now.Add(-5 * time.Minute)},
		}, nil)
		repo.On("ResumePathExists", ctx, "resumes/orphan-old.pdf").Return(false, nil)
		repo.On("ResumePathExists", ctx, "resumes/referenced-old.pdf").Return(true, nil)
		store.On("Delete", ctx, "resumes/orphan-old.pdf").Return(nil)

		removed, err := s.SweepOnce(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, removed)
		store.AssertCalled(t, "Delete", ctx, "resumes/orphan-old.pdf")
		store.AssertNotCalled(t, "Delete", ctx, "resumes/referenced-old.pdf")
		store.AssertNotCalled(t, "Delete", ctx, "resumes/orphan-fresh.pdf")
		repo.AssertNotCalled(t, "ResumePathExists", ctx, "resumes/orphan-fresh.pdf")
	})

	t.Run("list failure aborts the sweep", func(t *testing.T) {
		store := new(storagemocks.MockStorage)
		repo := new(mocks.MockCareerRepository)
		s := newSweeper(store, repo)

		store.On("List", ctx, "resumes/").Return(nil, errors.New("storage down"))

		removed, err := s.SweepOnce(ctx)

		assert.Error(t, err)
		assert.Zero(t, removed)
	})

	t.Run("lookup failure stops before deleting", func(t *testing.T) {
		store := new(storagemocks.MockStorage)
		repo := new(mocks.MockCareerRepository)
		s := newSweeper(store, repo)

		store.On("List", ctx, "resumes/").Return([]storage.ObjectInfo{
			{Key: "resumes/old.pdf", LastModified: now.Add(-2 * time.Hour)},
		}, nil)
		repo.On("ResumePathExists", ctx, "resumes/old.pdf").Return(false, errors.New("db down"))

		_, err := s.SweepOnce(ctx)

		assert.Error(t, err)
		store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestSweeper_RunStopsOnCancel(t *testing.T) {
	store := new(storagemocks.MockStorage)
	repo := new(mocks.MockCareerRepository)
	s := NewSweeper(store, repo, config.SweepConfig{Interval: time.Hour, Grace: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancellation")
	}
}
