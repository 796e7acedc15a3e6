// Package assistant answers natural-language questions about the
// workforce through an OpenAI-compatible chat endpoint.
package assistant

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/talentosplus/talentos-backend-go/internal/config"
	"github.com/talentosplus/talentos-backend-go/internal/domain/dashboard"
	"github.com/talentosplus/talentos-backend-go/internal/domain/employee"
)

const promptTemplate = `
Context Data (JSON format):
%CONTEXT%

User Question:
%QUESTION%

Instructions:
1. Answer the user's question based strictly on the provided Context Data.
2. If the user asks in Spanish, answer in Spanish. If they ask in English, answer in English.
3. Be professional, concise, and helpful.
4. If the answer is not found in the data, state clearly that you don't have that information.
5. Do not hallucinate or make up data.
`

// AssistantService answers a question against current HR data. It never
// returns an error: every failure mode becomes a descriptive answer
// string, so the dashboard panel always has something to display.
type AssistantService interface {
	Ask(ctx context.Context, question string) string
}

// Completer abstracts the chat-completion round trip.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type assistantServiceImpl struct {
	cfg              config.AIConfig
	dashboardService dashboard.Service
	employeeService  employee.Service
	completer        Completer
}

func NewAssistantService(
	cfg config.AIConfig,
	dashboardService dashboard.Service,
	employeeService employee.Service,
) AssistantService {
	return &assistantServiceImpl{
		cfg:              cfg,
		dashboardService: dashboardService,
		employeeService:  employeeService,
		completer:        &openAICompleter{cfg: cfg},
	}
}

// NewAssistantServiceWithCompleter injects a custom completion backend.
func NewAssistantServiceWithCompleter(
	cfg config.AIConfig,
	dashboardService dashboard.Service,
	employeeService employee.Service,
	completer Completer,
) AssistantService {
	return &assistantServiceImpl{
		cfg:              cfg,
		dashboardService: dashboardService,
		employeeService:  employeeService,
		completer:        completer,
	}
}

// contextPayload is the JSON blob handed to the model: aggregate stats
// plus a simplified employee list small enough for a prompt.
type contextPayload struct {
	Stats     dashboard.Stats   `json:"stats"`
	Employees []employeeSummary `json:"employees"`
}

type employeeSummary struct {
	Name       string `json:"name"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Status     string `json:"status"`
}

func (s *assistantServiceImpl) Ask(ctx context.Context, question string) string {
	if s.cfg.APIKey == "" {
		return "AI Service is not configured."
	}

	contextJSON, err := s.buildContext(ctx)
	if err != nil {
		slog.Error("assistant context build failed", "error", err)
		return "An error occurred while gathering HR data for the AI service."
	}

	prompt := strings.NewReplacer(
		"%CONTEXT%", contextJSON,
		"%QUESTION%", question,
	).Replace(promptTemplate)

	answer, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		slog.Error("assistant completion failed", "error", err)
		return "An error occurred while communicating with the AI service."
	}
	if strings.TrimSpace(answer) == "" {
		return "No valid response from AI."
	}
	return strings.TrimSpace(answer)
}

func (s *assistantServiceImpl) buildContext(ctx context.Context) (string, error) {
	stats, err := s.dashboardService.GetStats(ctx)
	if err != nil {
		return "", err
	}

	employees, err := s.employeeService.GetAll(ctx)
	if err != nil {
		return "", err
	}

	payload := contextPayload{
		Stats:     stats,
		Employees: make([]employeeSummary, 0, len(employees)),
	}
	for _, e := range employees {
		payload.Employees = append(payload.Employees, employeeSummary{
			Name:       e.FirstName + " " + e.LastName,
			Position:   e.Position,
			Department: e.DepartmentName,
			Status:     e.Status,
		})
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

type openAICompleter struct {
	cfg config.AIConfig
}

func (c *openAICompleter) Complete(ctx context.Context, prompt string) (string, error) {
	var client openai.Client
	if c.cfg.BaseURL != "" {
		client = openai.NewClient(
			option.WithAPIKey(c.cfg.APIKey),
			option.WithBaseURL(c.cfg.BaseURL),
		)
	} else {
		client = openai.NewClient(
			option.WithAPIKey(c.cfg.APIKey),
		)
	}

	response, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.cfg.Model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", err
	}
	if len(response.Choices) == 0 {
		return "", nil
	}
	return response.Choices[0].Message.Content, nil
}
