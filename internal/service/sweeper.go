package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/Kavitha8494/ca/internal/config"
	"github.com/Kavitha8494/ca/internal/repository"
	"github.com/Kavitha8494/ca/internal/storage"
)

const resumePrefix = "resumes/"

// Sweeper removes stored resumes that no application references. A grace
// window keeps it away from objects whose submission may still be in flight.
type Sweeper struct {
	store storage.Storage
	repo  repository.CareerRepository
	cfg   config.SweepConfig
	now   func() time.Time
}

// NewSweeper constructs a Sweeper.
func NewSweeper(store storage.Storage, repo repository.CareerRepository, cfg config.SweepConfig) *Sweeper {
	return &Sweeper{store: store, repo: repo, cfg: cfg, now: time.Now}
}

// Run sweeps at the configured interval until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := s.SweepOnce(ctx)
			if err != nil {
				s.logSweep("error", removed, err)
				continue
			}
			s.logSweep("success", removed, nil)
		}
	}
}

// SweepOnce deletes every object under the resume prefix that is older than
// the grace window and not referenced by any application. It returns the
// number of objects removed.
func (s *Sweeper) SweepOnce(ctx context.Context) (int, error) {
	objects, err := s.store.List(ctx, resumePrefix)
	if err != nil {
		return 0, err
	}

	cutoff := s.now().Add(-s.cfg.Grace)
	removed := 0
	for _, obj := range objects {
		if obj.LastModified.After(cutoff) {
			continue
		}
		referenced, err := s.repo.ResumePathExists(ctx, obj.Key)
		if err != nil {
			return removed, err
		}
		if referenced {
			continue
		}
		if err := s.store.Delete(ctx, obj.Key); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

func (s *Sweeper) logSweep(status string, removed int, err error) {
	entry := map[string]any{
		"ts":        time.Now().Format(time.RFC3339Nano),
		"component": "sweeper",
		"event":     "resume_sweep",
		"status":    status,
		"removed":   removed,
	}
	if err != nil {
		entry["level"] = "error"
		entry["error_message"] = err.Error()
	} else {
		entry["level"] = "info"
	}
	b, mErr := json.Marshal(entry)
	if mErr != nil {
		log.Printf("failed to marshal sweep log: %v", mErr)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
