package storage

import (
	"context"
	"encoding/json"

	"pathkeeper/internal/model"
)

// Snapshot keys. One independent aggregate per key; the names follow the
// original browser storage layout.
const (
	KeySession = "mentor-session"
	KeyQuests  = "mentor-quests"
	KeyPath    = "mentor-path"
	KeyTools   = "mentor-tools"
	KeyStats   = "mentor-stats"
	KeyTheme   = "mentor-theme"
)

// A missing or corrupt snapshot is treated as "no prior state": loads fall
// back to a fresh empty aggregate instead of failing.

func (s *Store) LoadStats(ctx context.Context) (model.UserStats, error) {
	fresh := model.UserStats{Level: 1, Achievements: []model.Achievement{}}
	raw, found, err := s.Get(ctx, KeyStats)
	if err != nil {
		return fresh, err
	}
	if !found {
		return fresh, nil
	}
	var stats model.UserStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return fresh, nil
	}
	if stats.Achievements == nil {
		stats.Achievements = []model.Achievement{}
	}
	return stats, nil
}

func (s *Store) SaveStats(ctx context.Context, stats model.UserStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return s.Put(ctx, KeyStats, raw)
}

func (s *Store) LoadQuests(ctx context.Context) ([]model.Quest, error) {
	raw, found, err := s.Get(ctx, KeyQuests)
	if err != nil {
		return nil, err
	}
	if !found {
		return []model.Quest{}, nil
	}
	var quests []model.Quest
	if err := json.Unmarshal(raw, &quests); err != nil {
		return []model.Quest{}, nil
	}
	return quests, nil
}

func (s *Store) SaveQuests(ctx context.Context, quests []model.Quest) error {
	raw, err := json.Marshal(quests)
	if err != nil {
		return err
	}
	return s.Put(ctx, KeyQuests, raw)
}

// LoadPath returns nil when no path has been generated yet.
func (s *Store) LoadPath(ctx context.Context) (*model.LearningPath, error) {
	raw, found, err := s.Get(ctx, KeyPath)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	var path model.LearningPath
	if err := json.Unmarshal(raw, &path); err != nil {
		return nil, nil
	}
	return &path, nil
}

func (s *Store) SavePath(ctx context.Context, path *model.LearningPath) error {
	raw, err := json.Marshal(path)
	if err != nil {
		return err
	}
	return s.Put(ctx, KeyPath, raw)
}

func (s *Store) LoadTools(ctx context.Context) ([]model.Tool, error) {
	raw, found, err := s.Get(ctx, KeyTools)
	if err != nil {
		return nil, err
	}
	if !found {
		return []model.Tool{}, nil
	}
	var tools []model.Tool
	if err := json.Unmarshal(raw, &tools); err != nil {
		return []model.Tool{}, nil
	}
	return tools, nil
}

func (s *Store) SaveTools(ctx context.Context, tools []model.Tool) error {
	raw, err := json.Marshal(tools)
	if err != nil {
		return err
	}
	return s.Put(ctx, KeyTools, raw)
}

// LoadSession returns nil when no journey has been started.
func (s *Store) LoadSession(ctx context.Context) (*model.Session, error) {
	raw, found, err := s.Get(ctx, KeySession)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	var sess model.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, nil
	}
	return &sess, nil
}

func (s *Store) SaveSession(ctx context.Context, sess *model.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.Put(ctx, KeySession, raw)
}

// Theme defaults to dark, matching the original app.
func (s *Store) Theme(ctx context.Context) (string, error) {
	raw, found, err := s.Get(ctx, KeyTheme)
	if err != nil {
		return "", err
	}
	if !found || string(raw) != "light" {
		return "dark", nil
	}
	return "light", nil
}

func (s *Store) SaveTheme(ctx context.Context, theme string) error {
	if theme != "light" {
		theme = "dark"
	}
	return s.Put(ctx, KeyTheme, []byte(theme))
}
