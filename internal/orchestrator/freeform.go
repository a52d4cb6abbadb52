package orchestrator

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/adammsanz-sketch/trendflow/internal/gemini"
)

// Fallback copy for generation calls that succeed but yield no usable text.
const (
	MsgNoStrategyResponse = "I've analyzed your query, but I couldn't formulate a response. Please try rephrasing."
	MsgNoGenericResponse  = "Sorry, I couldn't generate a response."
)

// handleComplexQuery answers open-ended strategic queries with deep-mode
// generation. An empty answer is not a failure; it is replaced with fixed
// fallback copy.
func (o *Orchestrator) handleComplexQuery(ctx context.Context, query string) (Result, error) {
	text, err := o.client.GenerateText(ctx, complexQueryPrompt(query), gemini.ModeDeep)
	if err != nil {
		return Result{}, err
	}
	if strings.TrimSpace(text) == "" {
		return Result{Text: MsgNoStrategyResponse}, nil
	}
	return Result{Text: text}, nil
}

// handleGeneric answers anything not matching a specific tool with a
// concise-assistant framing.
func (o *Orchestrator) handleGeneric(ctx context.Context, command string) (Result, error) {
	text, err := o.client.GenerateText(ctx, genericPrompt(command), gemini.ModeStandard)
	if err != nil {
		return Result{}, err
	}
	if strings.TrimSpace(text) == "" {
		return Result{Text: MsgNoGenericResponse}, nil
	}
	return Result{Text: text}, nil
}

// OptimizeCaption asks for an improved version of a short text. It is invoked
// from a widget's in-place optimize action, outside the main dispatch, and
// never surfaces an error: on any failure or blank output the prior value is
// preserved unchanged.
func (o *Orchestrator) OptimizeCaption(ctx context.Context, caption string) string {
	text, err := o.client.GenerateText(ctx, optimizeCaptionPrompt(caption), gemini.ModeStandard)
	if err != nil {
		o.log.Debug("caption optimization failed, keeping original", zap.Error(err))
		return caption
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return caption
	}
	return text
}
