package session

import (
	"github.com/google/uuid"

	"github.com/adammsanz-sketch/trendflow/internal/types"
)

// SaveStatus reports whether a draft save created a new entry or replaced an
// existing one.
type SaveStatus string

const (
	StatusCreated SaveStatus = "created"
	StatusUpdated SaveStatus = "updated"
)

// SaveCampaign upserts idea into the draft collection and returns the new
// collection. An id matching an existing entry replaces that entry in place,
// preserving its position. An empty or unmatched id gets a fresh unique id
// and the idea is appended. Repeated saves of the same assigned id always
// replace the same slot — the store never grows a duplicate. The input slice
// is never mutated.
func SaveCampaign(drafts []types.CampaignIdea, idea types.CampaignIdea) ([]types.CampaignIdea, SaveStatus) {
	if idea.ID != "" {
		for i, existing := range drafts {
			if existing.ID == idea.ID {
				updated := make([]types.CampaignIdea, len(drafts))
				copy(updated, drafts)
				updated[i] = idea
				return updated, StatusUpdated
			}
		}
	}

	idea.ID = "campaign-" + uuid.NewString()
	updated := make([]types.CampaignIdea, len(drafts), len(drafts)+1)
	copy(updated, drafts)
	return append(updated, idea), StatusCreated
}
