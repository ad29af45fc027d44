package server

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"pathkeeper/internal/mentor"
	"pathkeeper/internal/model"
)

const pathPrompt = `You are a mentor. A student will give you a goal.
Break this goal into 3-5 milestones.
For each milestone, generate 3-6 concrete step-by-step tasks with clear instructions.
Tasks should include things like reading specific books or articles, taking online classes, doing exercises, writing reflections, or practicing skills.
Always include enough detail for the student to know exactly what to do next.
Also suggest 3-5 relevant tools, apps, or resources they can use.
Return everything in JSON with fields: milestones, tools.

Each milestone should have: id, title, description, order, tasks
Each task should have: id, title, description, completed (always false)
Each tool should have: id, name, category, description, url (optional)

Student's goal: %s`

// PathGenerator produces a learning path for a goal. The HTTP handler only
// depends on this interface; tests substitute a stub.
type PathGenerator interface {
	GeneratePath(ctx context.Context, goal string) (*model.LearningPath, error)
}

type openAIGenerator struct {
	client    *openai.Client
	model     string
	maxTokens int
}

func NewOpenAIGenerator(cfg *Config) PathGenerator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &openAIGenerator{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
	}
}

// rawPath matches the shape the prompt asks the model for ("tools", not
// "suggestedTools").
type rawPath struct {
	Milestones []model.Milestone `json:"milestones"`
	Tools      []model.Tool      `json:"tools"`
}

func (g *openAIGenerator) GeneratePath(ctx context.Context, goal string) (*model.LearningPath, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     g.model,
		MaxTokens: g.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(pathPrompt, goal)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion: no choices")
	}

	return ReshapeResponse(goal, resp.Choices[0].Message.Content)
}

// ReshapeResponse turns a raw model reply into a normalized LearningPath.
func ReshapeResponse(goal, content string) (*model.LearningPath, error) {
	jsonStr, err := ExtractJSON(content)
	if err != nil {
		return nil, err
	}

	var raw rawPath
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return nil, fmt.Errorf("parse model response: %w", err)
	}

	path := &model.LearningPath{
		Goal:           goal,
		Milestones:     raw.Milestones,
		SuggestedTools: raw.Tools,
	}
	mentor.NormalizePath(goal, path)
	if err := mentor.ValidatePath(path); err != nil {
		return nil, err
	}
	return path, nil
}
