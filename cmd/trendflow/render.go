package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/adammsanz-sketch/trendflow/internal/types"
)

var sparkChars = []rune("▁▂▃▄▅▆▇█")

// sparkline renders an engagement velocity series as a unicode mini-chart.
func sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	span := max - min
	var b strings.Builder
	for _, v := range values {
		idx := 0
		if span > 0 {
			idx = int((v - min) / span * float64(len(sparkChars)-1))
		}
		b.WriteRune(sparkChars[idx])
	}
	return b.String()
}

func difficultyBadge(d types.Difficulty) string {
	var color lipgloss.Color
	switch d {
	case types.DifficultyEasy:
		color = colorSuccess
	case types.DifficultyMed:
		color = colorWarning
	default:
		color = colorDanger
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(string(d))
}

func formatPosts(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// renderWidget renders a structured widget for terminal display. Returns an
// empty string for nil widgets so callers can print unconditionally.
func renderWidget(w *types.Widget, width int) string {
	if w == nil {
		return ""
	}
	switch w.Kind {
	case types.WidgetTrendCard:
		return renderTrendCards(w.Trends, width)
	case types.WidgetCampaignBuilder:
		if w.Campaign == nil {
			return ""
		}
		return renderCampaignBuilder(*w.Campaign, width)
	}
	return ""
}

func renderTrendCards(trends []types.Trend, width int) string {
	cards := make([]string, 0, len(trends))
	for _, t := range trends {
		cards = append(cards, renderTrendCard(t, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func renderTrendCard(t types.Trend, width int) string {
	icon := "#"
	if t.Type == types.TrendSound {
		icon = "♪"
	}
	title := cardTitleStyle.Render(fmt.Sprintf("%s %s", icon, t.Title))
	source := mutedStyle.Render(t.Source)

	growth := successStyle.Render(fmt.Sprintf("+%.0f%%", t.Growth))
	if t.Growth < 0 {
		growth = lipgloss.NewStyle().Foreground(colorDanger).Render(fmt.Sprintf("%.0f%%", t.Growth))
	}

	stats := fmt.Sprintf("%s %s  %s %s  %s %s",
		statLabelStyle.Render("posts"), statValueStyle.Render(formatPosts(t.Posts)),
		statLabelStyle.Render("growth"), growth,
		statLabelStyle.Render("difficulty"), difficultyBadge(t.Difficulty),
	)

	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", source),
		spinnerStyle.Render(sparkline(t.EngagementVelocity)),
		stats,
	)
	return cardStyle.Width(max(width-2, 20)).Render(body)
}

func renderCampaignBuilder(c types.CampaignIdea, width int) string {
	var b strings.Builder
	b.WriteString(cardTitleStyle.Render(c.Title))
	b.WriteString("\n\n")
	b.WriteString(statLabelStyle.Render("Hook") + "\n")
	b.WriteString(c.Hook + "\n\n")
	b.WriteString(statLabelStyle.Render("Script Outline") + "\n")
	for i, beat := range c.ScriptOutline {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, beat))
	}
	b.WriteString("\n" + statLabelStyle.Render("Call to Action") + "\n")
	b.WriteString(statusStyle.Render(c.CTA))
	return cardStyle.Width(max(width-2, 20)).Render(b.String())
}

// renderDrafts lists saved campaign drafts for the /drafts command.
func renderDrafts(drafts []types.CampaignIdea) string {
	if len(drafts) == 0 {
		return "No saved drafts yet. Generate a campaign and /save it."
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Saved drafts (%d):\n", len(drafts)))
	for i, d := range drafts {
		b.WriteString(fmt.Sprintf("%d. %s — %s\n", i+1, d.Title, d.Hook))
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderQuickStats renders the dashboard strip shown under the header. The
// figures are illustrative account stats, matching the product mock.
func renderQuickStats(width int) string {
	stats := []struct {
		label string
		value string
	}{
		{"Followers", "12.5K"},
		{"Engagement", "4.8%"},
		{"Weekly Views", "452K"},
	}
	parts := make([]string, 0, len(stats))
	for _, s := range stats {
		parts = append(parts, statLabelStyle.Render(s.label)+" "+statValueStyle.Render(s.value))
	}
	line := strings.Join(parts, mutedStyle.Render("  │  "))
	if width > 0 {
		return lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line
}
