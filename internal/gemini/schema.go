package gemini

import (
	"google.golang.org/genai"

	"github.com/adammsanz-sketch/trendflow/internal/types"
)

// Schema registry: the declared shape of every structured payload the
// pipeline can produce. Schemas are enforced API-side via responseSchema and
// re-validated after decoding (types.Trend.Validate, types.CampaignIdea.Validate)
// since the service's output is untrusted.

// TrendSetSchema constrains trend discovery output to a list of exactly the
// Trend fields, all required.
var TrendSetSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"trends": {
			Type:        genai.TypeArray,
			Description: "A list of top 3 trending items.",
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"id":       {Type: genai.TypeString},
					"sourceId": {Type: genai.TypeString},
					"type": {
						Type: genai.TypeString,
						Enum: []string{string(types.TrendHashtag), string(types.TrendSound)},
					},
					"title":  {Type: genai.TypeString},
					"source": {Type: genai.TypeString},
					"engagementVelocity": {
						Type:  genai.TypeArray,
						Items: &genai.Schema{Type: genai.TypeNumber},
					},
					"posts": {Type: genai.TypeNumber},
					"growth": {
						Type:        genai.TypeNumber,
						Description: "A fictional but realistic growth percentage, e.g., 124.",
					},
					"difficulty": {
						Type:        genai.TypeString,
						Description: "Competition difficulty: Easy, Med, or Hard.",
						Enum: []string{
							string(types.DifficultyEasy),
							string(types.DifficultyMed),
							string(types.DifficultyHard),
						},
					},
				},
				Required: []string{
					"id", "sourceId", "type", "title", "source",
					"engagementVelocity", "posts", "growth", "difficulty",
				},
			},
		},
	},
	Required: []string{"trends"},
}

// CampaignSchema constrains campaign generation output to a single campaign
// object with all fields required.
var CampaignSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"campaign": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title": {Type: genai.TypeString},
				"hook":  {Type: genai.TypeString},
				"scriptOutline": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"cta": {Type: genai.TypeString},
			},
			Required: []string{"title", "hook", "scriptOutline", "cta"},
		},
	},
	Required: []string{"campaign"},
}

// TrendSetEnvelope is the wire envelope for TrendSetSchema output.
type TrendSetEnvelope struct {
	Trends []types.Trend `json:"trends"`
}

// CampaignEnvelope is the wire envelope for CampaignSchema output.
type CampaignEnvelope struct {
	Campaign types.CampaignIdea `json:"campaign"`
}
