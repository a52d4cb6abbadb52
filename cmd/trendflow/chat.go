// This file implements the interactive chat interface using bubbletea.
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/adammsanz-sketch/trendflow/internal/orchestrator"
	"github.com/adammsanz-sketch/trendflow/internal/session"
	"github.com/adammsanz-sketch/trendflow/internal/types"
)

// Messages for tea updates
type (
	resultMsg    orchestrator.Result
	optimizedMsg string
)

// chatModel is the main model for the interactive chat interface.
type chatModel struct {
	// UI components
	textinput textinput.Model
	viewport  viewport.Model
	spinner   spinner.Model
	renderer  *glamour.TermRenderer

	// Session state. The log and draft store are pure values; every update
	// replaces them rather than mutating in place.
	state  session.State
	drafts []types.CampaignIdea

	// Workbench: a copy of the most recent campaign widget, the target of
	// /save and /optimize. The copy keeps the appended log immutable.
	idea    types.CampaignIdea
	hasIdea bool

	status string // transient status line (save/optimize feedback)
	width  int
	height int
	ready  bool

	orch *orchestrator.Orchestrator
}

func initChat(orch *orchestrator.Orchestrator) chatModel {
	ti := textinput.New()
	ti.Placeholder = "Ask me anything... (Enter to send, Ctrl+C to exit)"
	ti.Focus()
	ti.Prompt = "│ "
	ti.CharLimit = 2048
	ti.Width = 80

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	vp := viewport.New(80, 20)

	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)

	return chatModel{
		textinput: ti,
		viewport:  vp,
		spinner:   sp,
		renderer:  renderer,
		state:     session.NewState(),
		orch:      orch,
	}
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		spCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if !m.state.Busy {
				return m.handleSubmit()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4
		footerHeight := 2
		inputHeight := 3
		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, msg.Height-headerHeight-footerHeight-inputHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = msg.Height - headerHeight - footerHeight - inputHeight
		}
		m.textinput.Width = msg.Width - 4
		m.renderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(msg.Width-8),
		)
		m.viewport.SetContent(m.renderLog())
		m.viewport.GotoBottom()

	case spinner.TickMsg:
		if m.state.Busy {
			m.spinner, spCmd = m.spinner.Update(msg)
			return m, spCmd
		}

	case resultMsg:
		// Results are applied in arrival order; the single-flight gate
		// guarantees one outstanding command.
		m.state = m.state.Finish()
		res := orchestrator.Result(msg)
		m.state = m.state.Append(session.NewAssistantMessage(res.Text, res.Widget, res.Thinking))
		if res.Widget != nil && res.Widget.Kind == types.WidgetCampaignBuilder && res.Widget.Campaign != nil {
			m.idea = *res.Widget.Campaign
			m.hasIdea = true
		}
		m.viewport.SetContent(m.renderLog())
		m.viewport.GotoBottom()

	case optimizedMsg:
		m.state = m.state.Finish()
		if m.hasIdea {
			m.idea.Hook = string(msg)
			m.status = "Hook optimized!"
			note := fmt.Sprintf("Optimized hook: %s", m.idea.Hook)
			m.state = m.state.Append(session.NewAssistantMessage(note, nil, false))
			m.viewport.SetContent(m.renderLog())
			m.viewport.GotoBottom()
		}
	}

	if !m.state.Busy {
		m.textinput, tiCmd = m.textinput.Update(msg)
	}
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(tiCmd, vpCmd, spCmd)
}

// handleSubmit routes a line of input: slash commands act on local session
// state; anything else goes through the pipeline. Empty and whitespace-only
// input never reaches the pipeline.
func (m chatModel) handleSubmit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.textinput.Value())
	if input == "" {
		return m, nil
	}
	m.textinput.Reset()
	m.status = ""

	if strings.HasPrefix(input, "/") {
		return m.handleSlashCommand(input)
	}

	state, ok := m.state.Begin()
	if !ok {
		return m, nil
	}
	m.state = state.Append(session.NewUserMessage(input))
	m.viewport.SetContent(m.renderLog())
	m.viewport.GotoBottom()

	orch := m.orch
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		return resultMsg(orch.Execute(context.Background(), input))
	})
}

func (m chatModel) handleSlashCommand(input string) (tea.Model, tea.Cmd) {
	switch strings.Fields(input)[0] {
	case "/save":
		if !m.hasIdea {
			m.status = "No campaign to save yet. Try 'generate a campaign for fitness'."
			return m, nil
		}
		drafts, st := session.SaveCampaign(m.drafts, m.idea)
		m.drafts = drafts
		if st == session.StatusUpdated {
			m.status = "Campaign draft updated!"
		} else {
			// SaveCampaign assigned the identity; keep it so the next /save
			// updates the same slot.
			m.idea = drafts[len(drafts)-1]
			m.status = "Campaign draft saved!"
		}
		return m, nil

	case "/drafts":
		m.state = m.state.Append(session.NewAssistantMessage(renderDrafts(m.drafts), nil, false))
		m.viewport.SetContent(m.renderLog())
		m.viewport.GotoBottom()
		return m, nil

	case "/optimize":
		if !m.hasIdea {
			m.status = "No campaign hook to optimize yet."
			return m, nil
		}
		state, ok := m.state.Begin()
		if !ok {
			return m, nil
		}
		m.state = state
		orch, hook := m.orch, m.idea.Hook
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			// OptimizeCaption never fails; it hands back the prior hook at worst.
			return optimizedMsg(orch.OptimizeCaption(context.Background(), hook))
		})

	case "/help":
		m.state = m.state.Append(session.NewAssistantMessage(helpText, nil, false))
		m.viewport.SetContent(m.renderLog())
		m.viewport.GotoBottom()
		return m, nil

	case "/quit":
		return m, tea.Quit

	default:
		m.status = fmt.Sprintf("Unknown command %s. Try /help.", strings.Fields(input)[0])
		return m, nil
	}
}

const helpText = `Commands:
  /save      save the latest campaign idea as a draft
  /optimize  rewrite the latest campaign hook for engagement
  /drafts    list saved campaign drafts
  /help      show this help
  /quit      exit

Anything else is interpreted as a marketing command, e.g.
  find trends
  generate a campaign for tech gadgets
  how should I price my affiliate bundle?`

func (m chatModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.renderHeader()
	chatView := contentStyle.Render(m.viewport.View())
	if m.state.Busy {
		chatView += "\n" + m.spinner.View() + " Working..."
	}

	inputArea := inputStyle.Render(m.textinput.View())

	footer := mutedStyle.Render("/save · /optimize · /drafts · /help · Ctrl+C to exit")
	if m.status != "" {
		footer = statusStyle.Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, chatView, inputArea, footer)
}

func (m chatModel) renderHeader() string {
	title := headerStyle.Render(" TrendFlow AI ")
	var ready string
	if m.state.Busy {
		ready = warningStyle.Render("● Processing")
	} else {
		ready = successStyle.Render("● Ready")
	}
	line := lipgloss.JoinHorizontal(lipgloss.Center, title, " ", ready)
	return lipgloss.JoinVertical(lipgloss.Left, line, renderQuickStats(m.width), "")
}

// renderLog renders the conversation for the viewport.
func (m chatModel) renderLog() string {
	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}
	var b strings.Builder
	for i, msg := range m.state.Messages {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderMessage(msg, width))
		b.WriteString("\n")
	}
	return b.String()
}

func (m chatModel) renderMessage(msg types.Message, width int) string {
	var b strings.Builder
	switch msg.Sender {
	case types.SenderUser:
		b.WriteString(userLabelStyle.Render("you"))
		b.WriteString(" " + msg.Text)
	default:
		label := "trendflow"
		if msg.Thinking {
			label = "trendflow (deep analysis)"
		}
		b.WriteString(assistantLabelStyle.Render(label))
		text := msg.Text
		if msg.Thinking && m.renderer != nil {
			// Strategy answers tend to be long-form markdown.
			if rendered, err := m.renderer.Render(text); err == nil {
				text = strings.TrimRight(rendered, "\n")
			}
		}
		b.WriteString("\n" + text)
	}
	if msg.Widget != nil {
		b.WriteString("\n" + renderWidget(msg.Widget, width-2))
	}
	return b.String()
}

func runInteractiveChat() error {
	ctx := context.Background()
	orch, err := buildOrchestrator(ctx)
	if err != nil {
		return err
	}

	p := tea.NewProgram(initChat(orch), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat interface failed: %w", err)
	}
	return nil
}
