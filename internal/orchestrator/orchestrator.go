// Package orchestrator dispatches classified intents to the matching content
// generation handler and is the single failure-containment boundary of the
// pipeline: classification errors, missing parameters, and handler failures
// are all converted to user-facing text here, so the caller never needs an
// error-handling branch.
package orchestrator

import (
	"context"

	"go.uber.org/zap"

	"github.com/adammsanz-sketch/trendflow/internal/gemini"
	"github.com/adammsanz-sketch/trendflow/internal/types"
)

// Fixed user-facing copy for the non-success outcomes.
const (
	// MsgMissingNiche is returned when generate_campaign arrives without a
	// niche; no generation call is made.
	MsgMissingNiche = "Please specify a niche for the campaign, for example: 'generate a campaign for fitness'."

	// MsgClassificationFailed is returned when the classification call
	// itself errored (the `error` action).
	MsgClassificationFailed = "Sorry, I had trouble understanding that. Could you please rephrase?"

	// MsgHandlerFailed is the generic apology for any contained handler
	// failure (schema violation, malformed JSON, service error).
	MsgHandlerFailed = "Sorry, I encountered an error while processing your request. Please try again."
)

// Result is the single shape every command resolves to.
type Result struct {
	Text     string
	Widget   *types.Widget
	Thinking bool
}

// Classifier is the intent-classification dependency. Satisfied by
// *intent.Classifier; substituted with a mock in tests.
type Classifier interface {
	Classify(ctx context.Context, commandText string) types.Intent
}

// Orchestrator routes commands to action handlers. It is stateless: every
// call operates purely on its inputs and the injected generation client, so
// interleaved invocations share no mutable state.
type Orchestrator struct {
	classifier Classifier
	client     gemini.Client
	log        *zap.Logger
}

// Config holds the orchestrator's injected dependencies.
type Config struct {
	Classifier Classifier
	Client     gemini.Client
	Logger     *zap.Logger
}

// New creates an orchestrator from injected dependencies.
func New(cfg Config) *Orchestrator {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{
		classifier: cfg.Classifier,
		client:     cfg.Client,
		log:        log,
	}
}

// Execute classifies commandText, dispatches to the matching handler, and
// always resolves to a Result. It never returns an error and never panics:
// every failure past this point becomes user-facing text.
func (o *Orchestrator) Execute(ctx context.Context, commandText string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			o.log.Error("handler panicked", zap.Any("panic", r))
			res = Result{Text: MsgHandlerFailed}
		}
	}()

	it := o.classifier.Classify(ctx, commandText)
	o.log.Debug("dispatching intent",
		zap.String("action", string(it.Action)),
		zap.Int("params", len(it.Params)))

	switch it.Action {
	case types.ActionFindTrends:
		return o.contain(o.handleFindTrends(ctx))

	case types.ActionGenerateCampaign:
		niche := it.Param("niche")
		if niche == "" {
			// Missing parameter is handled locally; no external call.
			return Result{Text: MsgMissingNiche}
		}
		return o.contain(o.handleGenerateCampaign(ctx, niche))

	case types.ActionComplexQuery:
		query := it.Param("query")
		if query == "" {
			query = commandText
		}
		res, err := o.handleComplexQuery(ctx, query)
		if err != nil {
			return o.contain(res, err)
		}
		res.Thinking = true
		return res

	case types.ActionError:
		// Interpretation failed; nothing to generate.
		return Result{Text: MsgClassificationFailed}

	case types.ActionUnknown:
		return o.contain(o.handleGeneric(ctx, commandText))

	default:
		// Defensive default: an action outside the closed enumeration is
		// treated exactly like unknown.
		o.log.Warn("unrecognized action, falling back to generic handler",
			zap.String("action", string(it.Action)))
		return o.contain(o.handleGeneric(ctx, commandText))
	}
}

// contain converts a handler failure into the generic apology. This is the
// only place handler errors are observed.
func (o *Orchestrator) contain(res Result, err error) Result {
	if err != nil {
		o.log.Warn("handler failed", zap.Error(err))
		return Result{Text: MsgHandlerFailed}
	}
	return res
}
