package orchestrator

import (
	"context"
	"fmt"

	"github.com/adammsanz-sketch/trendflow/internal/gemini"
	"github.com/adammsanz-sketch/trendflow/internal/types"
)

// TrendLeadIn precedes every trend-card widget.
const TrendLeadIn = "I found 3 high-potential trends matching your query. Here are the details:"

// trendBatchSize is the number of trends produced per discovery request.
const trendBatchSize = 3

// handleFindTrends requests a batch of structured trends and wraps them in a
// TREND_CARD widget. A short batch or a malformed entry is a handler failure
// and propagates to the containment boundary.
func (o *Orchestrator) handleFindTrends(ctx context.Context) (Result, error) {
	var env gemini.TrendSetEnvelope
	if err := o.client.GenerateStructured(ctx, trendPrompt, gemini.TrendSetSchema, &env); err != nil {
		return Result{}, err
	}

	if len(env.Trends) != trendBatchSize {
		return Result{}, fmt.Errorf("trend handler: expected %d trends, got %d", trendBatchSize, len(env.Trends))
	}
	for _, trend := range env.Trends {
		if err := trend.Validate(); err != nil {
			return Result{}, fmt.Errorf("trend handler: %w", err)
		}
	}

	return Result{
		Text:   TrendLeadIn,
		Widget: types.NewTrendCard(env.Trends),
	}, nil
}
