package orchestrator

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/adammsanz-sketch/trendflow/internal/gemini"
	"github.com/adammsanz-sketch/trendflow/internal/types"
)

// CampaignLeadIn is the niche-specific text preceding a campaign widget.
func CampaignLeadIn(niche string) string {
	return fmt.Sprintf("Here is a campaign idea for the %s niche.", niche)
}

// NewCampaignID mints a fresh campaign identity. The generator never assigns
// identity; handlers and the draft store do.
func NewCampaignID() string {
	return "campaign-" + uuid.NewString()
}

// handleGenerateCampaign requests one structured campaign idea for the niche,
// assigns it a fresh identity, and wraps it in a CAMPAIGN_BUILDER widget.
func (o *Orchestrator) handleGenerateCampaign(ctx context.Context, niche string) (Result, error) {
	var env gemini.CampaignEnvelope
	if err := o.client.GenerateStructured(ctx, campaignPrompt(niche), gemini.CampaignSchema, &env); err != nil {
		return Result{}, err
	}

	idea := env.Campaign
	if err := idea.Validate(); err != nil {
		return Result{}, fmt.Errorf("campaign handler: %w", err)
	}
	idea.ID = NewCampaignID()

	return Result{
		Text:   CampaignLeadIn(niche),
		Widget: types.NewCampaignBuilder(idea),
	}, nil
}
