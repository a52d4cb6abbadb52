// Package types provides shared type definitions used across trendflow packages.
// Types in this package are foundational data structures with no complex
// dependencies; JSON tags follow the wire shape produced by the generation
// service.
package types

import (
	"fmt"
	"strings"
)

// =============================================================================
// TREND TYPES
// =============================================================================

// TrendType classifies a trend as a hashtag or a sound.
type TrendType string

const (
	TrendHashtag TrendType = "Hashtag"
	TrendSound   TrendType = "Sound"
)

// Difficulty is the competition difficulty of a trend.
type Difficulty string

const (
	DifficultyEasy Difficulty = "Easy"
	DifficultyMed  Difficulty = "Med"
	DifficultyHard Difficulty = "Hard"
)

// Trend is a single trending item produced by a discovery request.
// Trends are immutable once produced.
type Trend struct {
	ID                 string     `json:"id"`
	SourceID           string     `json:"sourceId"`
	Type               TrendType  `json:"type"`
	Title              string     `json:"title"`
	Source             string     `json:"source"`
	EngagementVelocity []float64  `json:"engagementVelocity"`
	Posts              int        `json:"posts"`
	Growth             float64    `json:"growth"`
	Difficulty         Difficulty `json:"difficulty"`
}

// Validate checks that a trend carries every schema-required field with a
// legal value. Structured generation output is untrusted until this passes.
func (t Trend) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("trend: missing id")
	}
	if t.Title == "" {
		return fmt.Errorf("trend %s: missing title", t.ID)
	}
	switch t.Type {
	case TrendHashtag, TrendSound:
	default:
		return fmt.Errorf("trend %s: invalid type %q", t.ID, t.Type)
	}
	switch t.Difficulty {
	case DifficultyEasy, DifficultyMed, DifficultyHard:
	default:
		return fmt.Errorf("trend %s: invalid difficulty %q", t.ID, t.Difficulty)
	}
	if t.Posts < 0 {
		return fmt.Errorf("trend %s: negative post count %d", t.ID, t.Posts)
	}
	return nil
}

// =============================================================================
// CAMPAIGN TYPES
// =============================================================================

// CampaignIdea is a generated video campaign concept. ID is empty until the
// campaign handler (or the draft store) assigns one; identity is stable after
// first assignment. The hook may be replaced by an optimization pass.
type CampaignIdea struct {
	ID            string   `json:"id,omitempty"`
	Title         string   `json:"title"`
	Hook          string   `json:"hook"`
	ScriptOutline []string `json:"scriptOutline"`
	CTA           string   `json:"cta"`
}

// Validate checks that a generated campaign carries every required field.
func (c CampaignIdea) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("campaign: missing title")
	}
	if c.Hook == "" {
		return fmt.Errorf("campaign %q: missing hook", c.Title)
	}
	if len(c.ScriptOutline) == 0 {
		return fmt.Errorf("campaign %q: empty script outline", c.Title)
	}
	if c.CTA == "" {
		return fmt.Errorf("campaign %q: missing call to action", c.Title)
	}
	return nil
}

// =============================================================================
// WIDGET TYPES
// =============================================================================

// WidgetKind discriminates the widget tagged union.
type WidgetKind string

const (
	WidgetTrendCard       WidgetKind = "TREND_CARD"
	WidgetCampaignBuilder WidgetKind = "CAMPAIGN_BUILDER"
)

// Widget is a typed, renderable payload attached to a message. Exactly one
// payload field is populated, selected by Kind.
type Widget struct {
	Kind     WidgetKind    `json:"kind"`
	Trends   []Trend       `json:"trends,omitempty"`
	Campaign *CampaignIdea `json:"campaign,omitempty"`
}

// NewTrendCard wraps a batch of trends in a TREND_CARD widget.
func NewTrendCard(trends []Trend) *Widget {
	return &Widget{Kind: WidgetTrendCard, Trends: trends}
}

// NewCampaignBuilder wraps a campaign idea in a CAMPAIGN_BUILDER widget.
func NewCampaignBuilder(idea CampaignIdea) *Widget {
	return &Widget{Kind: WidgetCampaignBuilder, Campaign: &idea}
}

// =============================================================================
// MESSAGE TYPES
// =============================================================================

// Sender identifies who authored a conversation message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message is a single entry in the conversation log. Messages are never
// mutated after they are appended; Text may be empty when the widget carries
// the content. Thinking marks deep-analysis results.
type Message struct {
	ID       string  `json:"id"`
	Sender   Sender  `json:"sender"`
	Text     string  `json:"text"`
	Widget   *Widget `json:"widget,omitempty"`
	Thinking bool    `json:"thinking,omitempty"`
}

// =============================================================================
// INTENT TYPES
// =============================================================================

// Action is the discrete action derived from free-text input. The catalog of
// classifiable actions is closed; ActionUnknown and ActionError are the two
// synthetic outcomes the classifier may add.
type Action string

const (
	ActionFindTrends       Action = "find_trends"
	ActionGenerateCampaign Action = "generate_campaign"
	ActionComplexQuery     Action = "complex_query"

	// ActionUnknown means classification succeeded but no tool applied.
	ActionUnknown Action = "unknown"
	// ActionError means the classification call itself failed. Downstream
	// handling is distinct from ActionUnknown: it signals interpretation
	// failure, not "no specific tool applies".
	ActionError Action = "error"
)

// Intent is the transient result of classifying one command. Params is shaped
// by the action (e.g. "niche" for generate_campaign, "query" for
// complex_query). Intents are not persisted.
type Intent struct {
	Action Action
	Params map[string]string
}

// Param returns the named parameter with surrounding whitespace removed.
func (i Intent) Param(name string) string {
	return strings.TrimSpace(i.Params[name])
}
