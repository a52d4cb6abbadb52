package gemini

import (
	"google.golang.org/genai"

	"github.com/adammsanz-sketch/trendflow/internal/types"
)

// ToolCatalog returns the fixed catalog of declared actions used for intent
// classification. The catalog is closed: adding an action here forces a
// decision at the orchestrator's dispatch site.
func ToolCatalog() []*genai.FunctionDeclaration {
	return []*genai.FunctionDeclaration{
		{
			Name:        string(types.ActionFindTrends),
			Description: "Finds top trending hashtags and sounds on TikTok for affiliate marketing.",
		},
		{
			Name:        string(types.ActionGenerateCampaign),
			Description: "Generates a viral TikTok video campaign idea for a specific niche.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"niche": {
						Type:        genai.TypeString,
						Description: `The product category or niche for the campaign, e.g., "tech gadgets" or "fitness".`,
					},
				},
				Required: []string{"niche"},
			},
		},
		{
			Name:        string(types.ActionComplexQuery),
			Description: "Handles complex, open-ended questions that require deep analysis, strategic thinking, or creative brainstorming about marketing, trends, and business strategy.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"query": {
						Type:        genai.TypeString,
						Description: "The user's complex question or prompt.",
					},
				},
				Required: []string{"query"},
			},
		},
	}
}
