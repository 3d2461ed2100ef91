// Package advisor produces a short natural-language summary of an
// analysis. It asks the LLM first and degrades to a deterministic
// template when the model is unavailable, so analyze responses never
// fail on LLM errors.
package advisor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/safeoutdoor/backend/internal/infra/llm/chatgpt"
)

const systemPrompt = "You are an outdoor safety expert AI assistant. " +
	"Provide concise, actionable insights about outdoor conditions " +
	"for activities. Focus on safety, health, and optimization tips."

// Service exposes insight generation.
type Service interface {
	Insights(ctx context.Context, in Input) string
}

type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error)
}

type service struct {
	cfg    Config
	client ChatClient
	logger *slog.Logger
}

// NewService is a wire provider for the advisor domain. A nil client
// disables the LLM entirely and always uses the template fallback.
func NewService(cfg Config, client ChatClient, logger *slog.Logger) Service {
	return &service{cfg: cfg, client: client, logger: logger.With("component", "advisor.service")}
}

func (s *service) Insights(ctx context.Context, in Input) string {
	if s.client == nil {
		return Fallback(in.Score)
	}

	resp, err := s.client.CreateChatCompletion(ctx, chatgpt.ChatCompletionRequest{
		Model: s.cfg.Model,
		Messages: []chatgpt.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(in)},
		},
		Temperature: s.cfg.Temperature,
		MaxTokens:   s.cfg.MaxTokens,
	})
	if err != nil {
		s.logger.Warn("insight generation failed, using fallback", "error", err)
		return Fallback(in.Score)
	}
	if len(resp.Choices) == 0 {
		s.logger.Warn("chatgpt returned no choices, using fallback")
		return Fallback(in.Score)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return Fallback(in.Score)
	}
	return content
}

func buildPrompt(in Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze outdoor conditions for %s at %s:\n\n", in.Activity, in.Location)
	fmt.Fprintf(&b, "Safety Score: %.1f/10 (%s)\n", in.Score, in.Category)
	fmt.Fprintf(&b, "Air Quality: AQI %d", in.AQI)
	if in.PM25 != nil {
		fmt.Fprintf(&b, " (PM2.5: %.1f)", *in.PM25)
	}
	b.WriteString("\n")
	if in.TemperatureC != nil {
		fmt.Fprintf(&b, "Temperature: %.1f°C\n", *in.TemperatureC)
	}
	if len(in.Warnings) > 0 {
		fmt.Fprintf(&b, "Active warnings: %s\n", strings.Join(in.Warnings, "; "))
	}
	b.WriteString("\nProvide:\n" +
		"1. Brief condition summary (2 sentences)\n" +
		"2. Top 2-3 specific safety recommendations\n" +
		"3. Best time suggestion if conditions aren't optimal\n\n" +
		"Keep response under 200 words, practical and actionable.")
	return b.String()
}

// Fallback returns a deterministic summary keyed on the score category
// boundaries, used whenever the LLM is unavailable.
func Fallback(score float64) string {
	switch {
	case score >= 8.5:
		return "Conditions are excellent for outdoor activities. Stay hydrated and wear sunscreen."
	case score >= 7.0:
		return "Conditions are good overall. Monitor air quality and weather changes. Take breaks as needed."
	case score >= 5.5:
		return "Conditions are marginal. Consider shorter duration. Use respiratory protection if sensitive."
	default:
		return "Conditions are challenging. Consider rescheduling or choose indoor alternatives for safety."
	}
}
