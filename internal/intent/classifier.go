// Package intent maps raw user text to a discrete action plus extracted
// parameters, using the generation client's classification capability against
// the fixed tool catalog.
package intent

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/adammsanz-sketch/trendflow/internal/gemini"
	"github.com/adammsanz-sketch/trendflow/internal/types"
)

// Classifier turns command text into an Intent. It performs no retries: a
// failed classification call is surfaced immediately as ActionError, which
// downstream handling keeps distinct from ActionUnknown.
type Classifier struct {
	client gemini.Client
	log    *zap.Logger
}

// NewClassifier creates a classifier over the given generation client.
func NewClassifier(client gemini.Client, log *zap.Logger) *Classifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Classifier{client: client, log: log}
}

// Classify submits commandText against the tool catalog. The caller is
// responsible for rejecting empty or whitespace-only input before invoking
// the pipeline.
func (c *Classifier) Classify(ctx context.Context, commandText string) types.Intent {
	call, err := c.client.Classify(ctx, commandText)
	if err != nil {
		c.log.Warn("intent classification failed", zap.Error(err))
		return types.Intent{Action: types.ActionError, Params: map[string]string{}}
	}
	if call == nil {
		return types.Intent{Action: types.ActionUnknown, Params: map[string]string{}}
	}

	// The matched action name passes through verbatim; the orchestrator's
	// defensive default handles names outside the known enumeration.
	return types.Intent{
		Action: types.Action(call.Name),
		Params: stringifyArgs(call.Args),
	}
}

// stringifyArgs flattens tool-call arguments into string parameters. The
// catalog only declares string parameters, but the service is untrusted, so
// non-string values are formatted rather than dropped.
func stringifyArgs(args map[string]any) map[string]string {
	params := make(map[string]string, len(args))
	for name, value := range args {
		switch v := value.(type) {
		case string:
			params[name] = v
		case nil:
			params[name] = ""
		default:
			params[name] = fmt.Sprintf("%v", v)
		}
	}
	return params
}
