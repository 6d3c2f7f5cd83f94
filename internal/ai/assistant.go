// Package ai implements the commit-message and code-review assistant on the
// Gemini API with structured output.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// Assistant wraps the Gemini client for the AI developer tools. A nil
// client means no API key was configured; callers check IsAvailable and
// surface a disabled state instead of an error.
type Assistant struct {
	client *genai.Client
	model  string
}

// NewAssistant creates an assistant. Returns one with a nil client when
// apiKey is empty.
func NewAssistant(ctx context.Context, apiKey, model string) (*Assistant, error) {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	if apiKey == "" {
		return &Assistant{model: model}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Assistant{client: client, model: model}, nil
}

// IsAvailable reports whether the assistant can serve requests.
func (a *Assistant) IsAvailable() bool {
	return a.client != nil
}

// ReviewIssue is a single finding from a code review.
type ReviewIssue struct {
	Severity   string `json:"severity"`
	Line       int    `json:"line,omitempty"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// ReviewReport is the structured code review result.
type ReviewReport struct {
	Issues   []ReviewIssue `json:"issues"`
	Summary  string        `json:"summary"`
	Markdown string        `json:"markdown"`
}

const maxDiffLength = 20000

// GenerateCommitMessage produces a conventional commit message for a diff.
func (a *Assistant) GenerateCommitMessage(ctx context.Context, filename, diff string) (string, error) {
	if a.client == nil {
		return "", fmt.Errorf("gemini client not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	prompt := fmt.Sprintf(`Write a single conventional commit message for this change.
Use the form "type(scope): summary" with an imperative, lower-case summary under 72 characters.

File: %s

Diff:
%s`, filename, truncateDiff(diff))

	content := genai.NewContentFromText(prompt, genai.RoleUser)
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"commit_message": {
					Type:        genai.TypeString,
					Description: "The generated commit message",
				},
			},
			Required: []string{"commit_message"},
		},
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, []*genai.Content{content}, config)
	if err != nil {
		return "", fmt.Errorf("generate commit message: %w", err)
	}

	var result struct {
		CommitMessage string `json:"commit_message"`
	}
	if err := decodeStructured(resp, &result); err != nil {
		return "", err
	}

	return strings.TrimSpace(result.CommitMessage), nil
}

// ReviewCode reviews a diff and returns structured findings plus a markdown
// rendering for the UI.
func (a *Assistant) ReviewCode(ctx context.Context, filename, diff, lang string) (*ReviewReport, error) {
	if a.client == nil {
		return nil, fmt.Errorf("gemini client not configured")
	}

	if lang == "" {
		lang = "javascript"
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	prompt := fmt.Sprintf(`Review this %s change. Report concrete problems only: bugs, security issues, performance traps. Skip style nits.

File: %s

Diff:
%s`, lang, filename, truncateDiff(diff))

	content := genai.NewContentFromText(prompt, genai.RoleUser)
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   reviewSchema(),
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, []*genai.Content{content}, config)
	if err != nil {
		return nil, fmt.Errorf("review code: %w", err)
	}

	var report ReviewReport
	if err := decodeStructured(resp, &report); err != nil {
		return nil, err
	}

	if report.Markdown == "" {
		report.Markdown = renderMarkdown(&report)
	}

	return &report, nil
}

func reviewSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"issues": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"severity": {
							Type:        genai.TypeString,
							Description: "One of: critical, warning, info",
						},
						"line":       {Type: genai.TypeInteger},
						"message":    {Type: genai.TypeString},
						"suggestion": {Type: genai.TypeString},
					},
					Required: []string{"severity", "message"},
				},
			},
			"summary": {
				Type:        genai.TypeString,
				Description: "One-paragraph overall assessment",
			},
		},
		Required: []string{"issues", "summary"},
	}
}

// decodeStructured extracts the JSON payload from a structured-output
// response.
func decodeStructured(resp *genai.GenerateContentResponse, out interface{}) error {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("empty model response")
	}

	part := resp.Candidates[0].Content.Parts[0]
	if err := json.Unmarshal([]byte(part.Text), out); err != nil {
		return fmt.Errorf("decode structured response: %w", err)
	}
	return nil
}

func renderMarkdown(report *ReviewReport) string {
	var b strings.Builder
	b.WriteString("## Code Review\n\n")
	b.WriteString(report.Summary)
	b.WriteString("\n")
	for _, issue := range report.Issues {
		if issue.Line > 0 {
			fmt.Fprintf(&b, "\n- **%s** (line %d): %s", issue.Severity, issue.Line, issue.Message)
		} else {
			fmt.Fprintf(&b, "\n- **%s**: %s", issue.Severity, issue.Message)
		}
		if issue.Suggestion != "" {
			fmt.Fprintf(&b, " (suggestion: %s)", issue.Suggestion)
		}
	}
	return b.String()
}

func truncateDiff(diff string) string {
	if len(diff) > maxDiffLength {
		return diff[:maxDiffLength] + "\n... (truncated)"
	}
	return diff
}
