package question

import (
	"context"
	"strings"

	"vehicle-diagnosis-be/internal/pkg/logger"
	"vehicle-diagnosis-be/pkg/diagnosis/prompt"
	"vehicle-diagnosis-be/pkg/llm"
	"vehicle-diagnosis-be/pkg/store"
)

const (
	temperature = 0.7
	maxTokens   = 200
)

// Fallbacks is the fixed rotation used whenever the oracle gives nothing usable
var Fallbacks = [...]string{
	"When does the problem occur most frequently?",
	"Have you noticed any unusual sounds or smells?",
	"Does the issue affect vehicle performance or handling?",
}

// Generator produces the next clarification question for a session
type Generator struct {
	llmProvider llm.LLMProvider
	logger      logger.ILogger
}

func NewGenerator(llmProvider llm.LLMProvider, logger logger.ILogger) *Generator {
	return &Generator{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Next never fails: oracle errors, timeouts and empty output fall back to the rotation
func (g *Generator) Next(ctx context.Context, candidates []store.Candidate, asked []string, number int) string {
	response, err := g.llmProvider.Generate(ctx, prompt.Question(candidates, asked),
		llm.WithTemperature(temperature),
		llm.WithMaxTokens(maxTokens),
	)
	if err != nil {
		g.logger.Warn("QUESTION", "Oracle failed, using fallback question", map[string]interface{}{
			"error":           err.Error(),
			"question_number": number,
		})
		return Fallback(number)
	}

	question := Clean(response)
	if question == "" {
		g.logger.Warn("QUESTION", "Oracle returned empty question, using fallback", map[string]interface{}{
			"question_number": number,
		})
		return Fallback(number)
	}

	return question
}

// Fallback returns the rotation entry for a 1-based question number
func Fallback(number int) string {
	i := number - 1
	if i < 0 {
		i = 0
	}
	if i > len(Fallbacks)-1 {
		i = len(Fallbacks) - 1
	}
	return Fallbacks[i]
}

// Clean trims whitespace and one layer of surrounding quotes
func Clean(s string) string {
	s = strings.TrimSpace(s)
	for _, q := range []string{`"`, `'`} {
		if len(s) >= 2 && strings.HasPrefix(s, q) && strings.HasSuffix(s, q) {
			s = strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	return s
}
