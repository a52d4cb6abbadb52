// Package gemini is the narrow adapter between the pipeline and the Google
// generative-language service. It owns all direct communication with the
// external model and exposes exactly three capabilities: tool-catalog intent
// classification, schema-constrained structured generation, and free-form
// text generation. Everything above this package treats the service as a
// black box that may fail or return malformed output.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Mode selects the reasoning depth of a free-form generation call.
type Mode string

const (
	// ModeStandard uses the fast model with default reasoning.
	ModeStandard Mode = "standard"
	// ModeDeep uses the higher-capability model with an extended thinking
	// budget, for open-ended strategic queries.
	ModeDeep Mode = "deep"
)

// ToolCall is a matched entry from the classification tool catalog.
type ToolCall struct {
	Name string
	Args map[string]any
}

// Client is the generation capability surface consumed by the classifier and
// the action handlers. Implementations must be safe for sequential reuse; the
// caller enforces single-flight submission.
type Client interface {
	// Classify submits text against the fixed tool catalog. A nil ToolCall
	// with a nil error means no tool matched.
	Classify(ctx context.Context, text string) (*ToolCall, error)

	// GenerateStructured requests JSON conforming to schema and unmarshals
	// it into out. Malformed or non-conforming output is an error.
	GenerateStructured(ctx context.Context, prompt string, schema *genai.Schema, out any) error

	// GenerateText requests plain text; mode selects reasoning depth.
	GenerateText(ctx context.Context, prompt string, mode Mode) (string, error)
}

// Config holds Gemini client configuration.
type Config struct {
	APIKey string

	// FlashModel serves classification, structured generation, and standard
	// free-form generation.
	FlashModel string
	// ProModel serves deep-mode generation.
	ProModel string

	// ThinkingBudget is the token budget granted to deep-mode reasoning.
	ThinkingBudget int32

	// Timeout bounds a single generation call. Zero means no client-side
	// bound; the caller's context still applies.
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:         apiKey,
		FlashModel:     "gemini-3-flash-preview",
		ProModel:       "gemini-3-pro-preview",
		ThinkingBudget: 32768,
		Timeout:        2 * time.Minute,
	}
}

// GeminiClient implements Client against the Gemini API.
type GeminiClient struct {
	cfg    Config
	client *genai.Client
	log    *zap.Logger
}

// NewClient creates a Gemini-backed generation client.
func NewClient(ctx context.Context, cfg Config, log *zap.Logger) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	if cfg.FlashModel == "" {
		cfg.FlashModel = "gemini-3-flash-preview"
	}
	if cfg.ProModel == "" {
		cfg.ProModel = "gemini-3-pro-preview"
	}
	if log == nil {
		log = zap.NewNop()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create client: %w", err)
	}

	return &GeminiClient{cfg: cfg, client: client, log: log}, nil
}

// Classify submits the command text against the fixed tool catalog and
// returns the first matched function call, or nil when no tool applies.
func (c *GeminiClient) Classify(ctx context.Context, text string) (*ToolCall, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	prompt := fmt.Sprintf("Parse the user's command and select the appropriate tool: %q", text)
	resp, err := c.client.Models.GenerateContent(ctx, c.cfg.FlashModel, genai.Text(prompt), &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{FunctionDeclarations: ToolCatalog()}},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: classification call failed: %w", err)
	}

	calls := resp.FunctionCalls()
	if len(calls) == 0 {
		c.log.Debug("no tool matched", zap.String("text", text))
		return nil, nil
	}

	call := calls[0]
	c.log.Debug("tool matched",
		zap.String("tool", call.Name),
		zap.Int("args", len(call.Args)))
	return &ToolCall{Name: call.Name, Args: call.Args}, nil
}

// GenerateStructured requests schema-constrained JSON on the flash model and
// decodes it into out. Any shape mismatch surfaces as an error rather than a
// partially populated value.
func (c *GeminiClient) GenerateStructured(ctx context.Context, prompt string, schema *genai.Schema, out any) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.Models.GenerateContent(ctx, c.cfg.FlashModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return fmt.Errorf("gemini: structured generation failed: %w", err)
	}

	raw := strings.TrimSpace(resp.Text())
	if raw == "" {
		return fmt.Errorf("gemini: structured generation returned no content")
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("gemini: structured output is not valid JSON: %w", err)
	}
	return nil
}

// GenerateText requests free-form text. Deep mode routes to the pro model
// with the configured thinking budget.
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string, mode Mode) (string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	model := c.cfg.FlashModel
	cfg := &genai.GenerateContentConfig{}
	if mode == ModeDeep {
		model = c.cfg.ProModel
		cfg.ThinkingConfig = &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr(c.cfg.ThinkingBudget),
		}
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini: text generation failed: %w", err)
	}
	return resp.Text(), nil
}

func (c *GeminiClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.Timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.cfg.Timeout)
}
