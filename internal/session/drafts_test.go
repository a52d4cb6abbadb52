package session

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adammsanz-sketch/trendflow/internal/types"
)

func idea(id, title string) types.CampaignIdea {
	return types.CampaignIdea{
		ID:            id,
		Title:         title,
		Hook:          "hook",
		ScriptOutline: []string{"beat 1", "beat 2", "beat 3"},
		CTA:           "cta",
	}
}

func TestSaveCampaign_CreateAssignsFreshID(t *testing.T) {
	drafts, status := SaveCampaign(nil, idea("", "A"))

	assert.Equal(t, StatusCreated, status)
	require.Len(t, drafts, 1)
	assert.NotEmpty(t, drafts[0].ID)
	assert.Contains(t, drafts[0].ID, "campaign-")
}

func TestSaveCampaign_FreshIDsAreDistinctFromAllExisting(t *testing.T) {
	var drafts []types.CampaignIdea
	for _, title := range []string{"A", "B", "C"} {
		drafts, _ = SaveCampaign(drafts, idea("", title))
	}

	seen := map[string]bool{}
	for _, d := range drafts {
		assert.False(t, seen[d.ID], "duplicate draft id %s", d.ID)
		seen[d.ID] = true
	}
}

func TestSaveCampaign_UpdateReplacesInPlace(t *testing.T) {
	drafts := []types.CampaignIdea{idea("c1", "A"), idea("c2", "B"), idea("c3", "C")}

	updated, status := SaveCampaign(drafts, idea("c2", "B-revised"))

	assert.Equal(t, StatusUpdated, status)
	require.Len(t, updated, 3)
	assert.Equal(t, "c2", updated[1].ID, "position preserved")
	assert.Equal(t, "B-revised", updated[1].Title)
	assert.Equal(t, "A", updated[0].Title)
	assert.Equal(t, "C", updated[2].Title)
}

func TestSaveCampaign_IdempotentUnderRepeatedSaves(t *testing.T) {
	drafts, _ := SaveCampaign(nil, idea("c1", "A"))
	once, _ := SaveCampaign(drafts, idea("c1", "B"))
	twice, _ := SaveCampaign(once, idea("c1", "B"))

	assert.Len(t, once, len(drafts))
	assert.Len(t, twice, len(once))
	assert.Equal(t, "B", twice[0].Title, "latest field values retained")
}

func TestSaveCampaign_UnmatchedIDGetsFreshIdentity(t *testing.T) {
	drafts := []types.CampaignIdea{idea("c1", "A")}

	updated, status := SaveCampaign(drafts, idea("stale-id", "B"))

	assert.Equal(t, StatusCreated, status)
	require.Len(t, updated, 2)
	assert.NotEqual(t, "stale-id", updated[1].ID)
	assert.NotEqual(t, "c1", updated[1].ID)
}

func TestSaveCampaign_NeverMutatesInput(t *testing.T) {
	original := []types.CampaignIdea{idea("c1", "A")}
	snapshot := []types.CampaignIdea{idea("c1", "A")}

	_, _ = SaveCampaign(original, idea("c1", "changed"))
	_, _ = SaveCampaign(original, idea("", "new"))

	if diff := cmp.Diff(snapshot, original); diff != "" {
		t.Errorf("input collection mutated (-want +got):\n%s", diff)
	}
}
