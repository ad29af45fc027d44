package engine

import (
	"context"
	"strings"
	"time"

	"pathkeeper/internal/model"
	"pathkeeper/internal/storage"
)

// Service is the single mutation path for the three session aggregates
// (stats, quests, learning path + tools). Every mutating operation saves the
// touched aggregate before returning.
type Service struct {
	store *storage.Store
	now   func() time.Time
}

func NewService(store *storage.Store) *Service {
	return &Service{store: store, now: time.Now}
}

// WithClock overrides the service clock. Test hook.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Store() *storage.Store { return s.store }

// Stats loads the stats aggregate, re-deriving level fields from TotalXP.
func (s *Service) Stats(ctx context.Context) (model.UserStats, error) {
	stats, err := s.store.LoadStats(ctx)
	if err != nil {
		return model.UserStats{}, err
	}
	return NormalizeStats(stats), nil
}

func (s *Service) Session(ctx context.Context) (*model.Session, error) {
	return s.store.LoadSession(ctx)
}

// StartSession records the goal and resets the session snapshot.
func (s *Service) StartSession(ctx context.Context, goal string) (*model.Session, error) {
	goal = strings.TrimSpace(goal)
	if goal == "" {
		return nil, ValidationError{Op: "start session", Reason: "goal is required"}
	}
	sess := &model.Session{Goal: goal, CreatedAt: s.now().UTC()}
	if err := s.store.SaveSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", ValidationError{Op: "add quest", Reason: "title is required"}
	}
	return t, nil
}
