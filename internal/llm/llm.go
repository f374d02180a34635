package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kevinmichaelchen/gh-profile/internal/models"
	openai "github.com/sashabaranov/go-openai"
)

type Client struct {
	client *openai.Client
	model  string
}

func NewClient(baseURL, apiKey, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = strings.TrimSuffix(baseURL, "/")
	return &Client{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

const systemPrompt = `You are a technical recruiter's assistant. Given a GitHub user's profile and their public repositories, write a 3-4 sentence plain-text summary of who they are, what they mostly build, and which languages they use.

Return ONLY the summary. No markdown headings, no code fences.`

// maxReposInPrompt bounds the prompt for users with many repositories.
const maxReposInPrompt = 30

// Summarize asks the model for a short plain-text summary of the profile.
func (c *Client) Summarize(ctx context.Context, data *models.UserData) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(data)},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("LLM call for %s: %w", data.User.Login, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned for %s", data.User.Login)
	}

	summary := stripCodeFences(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", errors.New("empty summary returned")
	}
	return summary, nil
}

func buildPrompt(data *models.UserData) string {
	u := data.User
	var parts []string
	parts = append(parts, fmt.Sprintf("User: %s (%s)", u.DisplayName(), u.Login))
	if u.Bio != nil {
		parts = append(parts, fmt.Sprintf("Bio: %s", *u.Bio))
	}
	if u.Company != nil {
		parts = append(parts, fmt.Sprintf("Company: %s", *u.Company))
	}
	if u.Location != nil {
		parts = append(parts, fmt.Sprintf("Location: %s", *u.Location))
	}
	parts = append(parts, fmt.Sprintf("Public repositories: %d, followers: %d", u.PublicRepos, u.Followers))

	var repoLines []string
	for i, r := range data.Repositories {
		if i == maxReposInPrompt {
			break
		}
		line := fmt.Sprintf("- %s (★ %d", r.Name, r.StargazersCount)
		if r.Language != nil {
			line += ", " + *r.Language
		}
		line += ")"
		if r.Description != nil {
			line += ": " + *r.Description
		}
		repoLines = append(repoLines, line)
	}
	if len(repoLines) > 0 {
		parts = append(parts, "Repositories:\n"+strings.Join(repoLines, "\n"))
	}

	return strings.Join(parts, "\n\n")
}

// stripCodeFences unwraps a summary the model fenced despite the prompt, so
// only the prose reaches the terminal.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	// drop the opening fence line, which may carry a language tag
	if i := strings.Index(s, "\n"); i != -1 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
