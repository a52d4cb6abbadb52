package orchestrator

import (
	"context"
	"encoding/json"

	"google.golang.org/genai"

	"github.com/adammsanz-sketch/trendflow/internal/gemini"
	"github.com/adammsanz-sketch/trendflow/internal/types"
)

// --- MockClient ---

// MockClient implements gemini.Client with injectable behavior per capability
// and call counters for asserting that no generation call was made.
type MockClient struct {
	ClassifyFunc           func(ctx context.Context, text string) (*gemini.ToolCall, error)
	GenerateStructuredFunc func(ctx context.Context, prompt string, schema *genai.Schema, out any) error
	GenerateTextFunc       func(ctx context.Context, prompt string, mode gemini.Mode) (string, error)

	StructuredCalls int
	TextCalls       int
}

func (m *MockClient) Classify(ctx context.Context, text string) (*gemini.ToolCall, error) {
	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(ctx, text)
	}
	return nil, nil
}

func (m *MockClient) GenerateStructured(ctx context.Context, prompt string, schema *genai.Schema, out any) error {
	m.StructuredCalls++
	if m.GenerateStructuredFunc != nil {
		return m.GenerateStructuredFunc(ctx, prompt, schema, out)
	}
	return nil
}

func (m *MockClient) GenerateText(ctx context.Context, prompt string, mode gemini.Mode) (string, error) {
	m.TextCalls++
	if m.GenerateTextFunc != nil {
		return m.GenerateTextFunc(ctx, prompt, mode)
	}
	return "", nil
}

// --- MockClassifier ---

type MockClassifier struct {
	Intent types.Intent
}

func (m *MockClassifier) Classify(ctx context.Context, commandText string) types.Intent {
	return m.Intent
}

// --- canned payloads ---

const validTrendSetJSON = `{"trends": [
	{"id": "trend-1", "sourceId": "s1", "type": "Hashtag", "title": "#UnboxTok",
	 "source": "TikTok", "engagementVelocity": [3, 8, 21], "posts": 15400,
	 "growth": 124, "difficulty": "Easy"},
	{"id": "trend-2", "sourceId": "s2", "type": "Sound", "title": "Lo-fi Drop",
	 "source": "TikTok Sounds", "engagementVelocity": [5, 6, 12], "posts": 8200,
	 "growth": 88, "difficulty": "Med"},
	{"id": "trend-3", "sourceId": "s3", "type": "Hashtag", "title": "#DeskSetup",
	 "source": "TikTok", "engagementVelocity": [2, 9, 30], "posts": 20100,
	 "growth": 156, "difficulty": "Hard"}
]}`

const validCampaignJSON = `{"campaign": {
	"title": "5 Gadgets Under $20 That Feel Illegal",
	"hook": "Number 3 should honestly cost ten times more.",
	"scriptOutline": ["Cold open on gadget 3", "Rapid-fire demos", "Price reveal and reaction"],
	"cta": "Full list in bio - prices drop Friday."
}}`

// structuredFromJSON returns a GenerateStructuredFunc that decodes raw into out.
func structuredFromJSON(raw string) func(ctx context.Context, prompt string, schema *genai.Schema, out any) error {
	return func(ctx context.Context, prompt string, schema *genai.Schema, out any) error {
		return json.Unmarshal([]byte(raw), out)
	}
}
