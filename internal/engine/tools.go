package engine

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"pathkeeper/internal/model"
)

type CustomToolInput struct {
	Name        string
	Category    string
	Description string
	URL         string
}

func (s *Service) Tools(ctx context.Context) ([]model.Tool, error) {
	return s.store.LoadTools(ctx)
}

// AdoptTool copies a suggested tool from the learning path into the user's
// tool list. Adopting the same tool twice is rejected.
func (s *Service) AdoptTool(ctx context.Context, toolID string) (*model.Tool, error) {
	path, err := s.store.LoadPath(ctx)
	if err != nil {
		return nil, err
	}
	if path == nil {
		return nil, ValidationError{Op: "adopt tool", Reason: "no learning path yet"}
	}

	var found *model.Tool
	for i := range path.SuggestedTools {
		if path.SuggestedTools[i].ID == toolID {
			found = &path.SuggestedTools[i]
			break
		}
	}
	if found == nil {
		return nil, NotFoundError{Kind: "tool", ID: toolID}
	}

	tools, err := s.store.LoadTools(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range tools {
		if t.ID == toolID {
			return nil, ValidationError{Op: "adopt tool", Reason: "tool already in your list"}
		}
	}

	adopted := *found
	adopted.IsCustom = false
	tools = append(tools, adopted)
	if err := s.store.SaveTools(ctx, tools); err != nil {
		return nil, err
	}
	return &adopted, nil
}

// AddCustomTool creates a user-authored tool marked IsCustom.
func (s *Service) AddCustomTool(ctx context.Context, in CustomToolInput) (*model.Tool, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ValidationError{Op: "add tool", Reason: "name is required"}
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = "General"
	}

	tool := model.Tool{
		ID:          uuid.NewString(),
		Name:        name,
		Category:    category,
		Description: strings.TrimSpace(in.Description),
		URL:         strings.TrimSpace(in.URL),
		IsCustom:    true,
	}

	tools, err := s.store.LoadTools(ctx)
	if err != nil {
		return nil, err
	}
	tools = append(tools, tool)
	if err := s.store.SaveTools(ctx, tools); err != nil {
		return nil, err
	}
	return &tool, nil
}

func (s *Service) RemoveTool(ctx context.Context, toolID string) error {
	tools, err := s.store.LoadTools(ctx)
	if err != nil {
		return err
	}
	kept := tools[:0]
	removed := false
	for _, t := range tools {
		if t.ID == toolID {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	if !removed {
		return NotFoundError{Kind: "tool", ID: toolID}
	}
	return s.store.SaveTools(ctx, kept)
}
