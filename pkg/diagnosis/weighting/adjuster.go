package weighting

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"vehicle-diagnosis-be/internal/pkg/logger"
	"vehicle-diagnosis-be/pkg/diagnosis/prompt"
	"vehicle-diagnosis-be/pkg/llm"
	"vehicle-diagnosis-be/pkg/store"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const temperature = 0.3

const deltaSchemaURL = "schema://weight-deltas.json"

// MaxDeltaMagnitude bounds a single oracle adjustment; anything larger marks the
// whole response as malformed
const MaxDeltaMagnitude = 1.0

// An object of problem id to number in [-MaxDeltaMagnitude, MaxDeltaMagnitude]
const deltaSchema = `{
	"type": "object",
	"additionalProperties": {"type": "number", "minimum": -1, "maximum": 1}
}`

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func deltaValidator() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(deltaSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(deltaSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(deltaSchemaURL)
	})
	return compiledSchema, compileErr
}

// Outcome is the tagged result of one adjustment call. Deltas are the oracle values
// as parsed; Apply enforces membership and the zero floor.
type Outcome struct {
	Deltas map[string]float64
	OK     bool
	Reason string
}

func failed(reason string) Outcome {
	return Outcome{Deltas: map[string]float64{}, Reason: reason}
}

// Adjuster asks the oracle how an answer shifts each candidate's likelihood
type Adjuster struct {
	llmProvider llm.LLMProvider
	logger      logger.ILogger
}

func NewAdjuster(llmProvider llm.LLMProvider, logger logger.ILogger) *Adjuster {
	return &Adjuster{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Adjust never returns an error; failures come back as Outcome.OK == false
func (a *Adjuster) Adjust(ctx context.Context, candidates []store.Candidate, question, answer string) Outcome {
	response, err := a.llmProvider.Generate(ctx, prompt.Weights(candidates, question, answer),
		llm.WithTemperature(temperature),
	)
	if err != nil {
		a.logger.Warn("WEIGHTING", "Oracle failed, weights unchanged", map[string]interface{}{
			"error": err.Error(),
		})
		return failed("oracle unavailable: " + err.Error())
	}

	deltas, err := Parse(response)
	if err != nil {
		a.logger.Warn("WEIGHTING", "Malformed oracle output, weights unchanged", map[string]interface{}{
			"error":    err.Error(),
			"response": response,
		})
		return failed("malformed oracle output: " + err.Error())
	}

	a.logger.Debug("WEIGHTING", "Parsed weight deltas", map[string]interface{}{
		"deltas": deltas,
	})
	return Outcome{Deltas: deltas, OK: true}
}

// Parse extracts the text between the first '{' and the last '}' and decodes it
// as an id to number object
func Parse(response string) (map[string]float64, error) {
	raw, err := extractJSON(response)
	if err != nil {
		return nil, err
	}

	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	validator, err := deltaValidator()
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	if err := validator.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var deltas map[string]float64
	if err := json.Unmarshal([]byte(raw), &deltas); err != nil {
		return nil, fmt.Errorf("decode deltas: %w", err)
	}
	return deltas, nil
}

func extractJSON(response string) (string, error) {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("no JSON object in response")
	}
	return response[start : end+1], nil
}
