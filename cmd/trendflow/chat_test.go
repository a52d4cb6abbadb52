package main

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/adammsanz-sketch/trendflow/internal/gemini"
	"github.com/adammsanz-sketch/trendflow/internal/orchestrator"
	"github.com/adammsanz-sketch/trendflow/internal/session"
	"github.com/adammsanz-sketch/trendflow/internal/types"
)

// stubClassifier resolves everything to the generic action so tests never
// reach a generation backend.
type stubClassifier struct{}

func (stubClassifier) Classify(ctx context.Context, commandText string) types.Intent {
	return types.Intent{Action: types.ActionUnknown}
}

// failingClient satisfies gemini.Client; the model tests never let a command
// reach the generation backend, so every method refuses.
type failingClient struct{}

func (failingClient) Classify(ctx context.Context, text string) (*gemini.ToolCall, error) {
	return nil, errors.New("no backend in tests")
}

func (failingClient) GenerateStructured(ctx context.Context, prompt string, schema *genai.Schema, out any) error {
	return errors.New("no backend in tests")
}

func (failingClient) GenerateText(ctx context.Context, prompt string, mode gemini.Mode) (string, error) {
	return "", errors.New("no backend in tests")
}

func newTestModel(t *testing.T) chatModel {
	t.Helper()
	orch := orchestrator.New(orchestrator.Config{
		Classifier: stubClassifier{},
		Client:     failingClient{},
	})
	return initChat(orch)
}

func submit(t *testing.T, m chatModel, text string) (chatModel, tea.Cmd) {
	t.Helper()
	m.textinput.SetValue(text)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(chatModel), cmd
}

func TestChatModel_OpensWithWelcome(t *testing.T) {
	m := newTestModel(t)

	require.Len(t, m.state.Messages, 1)
	assert.Equal(t, types.SenderAssistant, m.state.Messages[0].Sender)
	assert.Equal(t, session.Welcome, m.state.Messages[0].Text)
}

func TestChatModel_SubmitAppendsAndGates(t *testing.T) {
	m := newTestModel(t)

	m, cmd := submit(t, m, "find trends")
	require.NotNil(t, cmd, "submission should dispatch a pipeline command")
	assert.True(t, m.state.Busy)
	require.Len(t, m.state.Messages, 2)
	assert.Equal(t, types.SenderUser, m.state.Messages[1].Sender)
	assert.Equal(t, "find trends", m.state.Messages[1].Text)

	// While busy, Enter is inert: no new message, no second command.
	m, cmd = submit(t, m, "another command")
	assert.Nil(t, cmd)
	assert.Len(t, m.state.Messages, 2)
}

func TestChatModel_EmptyInputIgnored(t *testing.T) {
	m := newTestModel(t)

	for _, input := range []string{"", "   ", "\t"} {
		next, cmd := submit(t, m, input)
		assert.Nil(t, cmd)
		assert.Len(t, next.state.Messages, 1)
		assert.False(t, next.state.Busy)
	}
}

func TestChatModel_ResultClearsGateAndAppends(t *testing.T) {
	m := newTestModel(t)
	m, _ = submit(t, m, "find trends")
	require.True(t, m.state.Busy)

	res := orchestrator.Result{Text: "here you go", Thinking: true}
	next, _ := m.Update(resultMsg(res))
	m = next.(chatModel)

	assert.False(t, m.state.Busy)
	require.Len(t, m.state.Messages, 3)
	last := m.state.Messages[2]
	assert.Equal(t, types.SenderAssistant, last.Sender)
	assert.Equal(t, "here you go", last.Text)
	assert.True(t, last.Thinking)
}

func TestChatModel_CampaignResultArmsWorkbench(t *testing.T) {
	m := newTestModel(t)
	m, _ = submit(t, m, "generate a campaign for fitness")

	idea := types.CampaignIdea{
		ID:            "campaign-1",
		Title:         "30-Day Shred",
		Hook:          "What if one month changed everything?",
		ScriptOutline: []string{"cold open", "transformation montage"},
		CTA:           "Follow for day one",
	}
	res := orchestrator.Result{Text: "Here's a campaign concept", Widget: types.NewCampaignBuilder(idea)}
	next, _ := m.Update(resultMsg(res))
	m = next.(chatModel)

	require.True(t, m.hasIdea)
	assert.Equal(t, idea, m.idea)

	// /save stores the armed idea as a draft.
	m, cmd := submit(t, m, "/save")
	assert.Nil(t, cmd)
	require.Len(t, m.drafts, 1)
	assert.Equal(t, "30-Day Shred", m.drafts[0].Title)
	assert.Equal(t, "Campaign draft saved!", m.status)

	// Saving again with the same identity updates in place.
	m, _ = submit(t, m, "/save")
	assert.Len(t, m.drafts, 1)
	assert.Equal(t, "Campaign draft updated!", m.status)
}

func TestChatModel_SaveWithoutCampaign(t *testing.T) {
	m := newTestModel(t)

	m, cmd := submit(t, m, "/save")
	assert.Nil(t, cmd)
	assert.Empty(t, m.drafts)
	assert.Contains(t, m.status, "No campaign to save")
}

func TestChatModel_OptimizeRewritesHook(t *testing.T) {
	m := newTestModel(t)
	idea := types.CampaignIdea{
		ID:            "campaign-1",
		Title:         "30-Day Shred",
		Hook:          "old hook",
		ScriptOutline: []string{"beat"},
		CTA:           "cta",
	}
	next, _ := m.Update(resultMsg(orchestrator.Result{Text: "ok", Widget: types.NewCampaignBuilder(idea)}))
	m = next.(chatModel)
	m.state = m.state.Finish()

	m, cmd := submit(t, m, "/optimize")
	require.NotNil(t, cmd)
	require.True(t, m.state.Busy)

	next, _ = m.Update(optimizedMsg("new hook"))
	m = next.(chatModel)

	assert.False(t, m.state.Busy)
	assert.Equal(t, "new hook", m.idea.Hook)
	last := m.state.Messages[len(m.state.Messages)-1]
	assert.Contains(t, last.Text, "new hook")
}

func TestChatModel_UnknownSlashCommand(t *testing.T) {
	m := newTestModel(t)

	m, cmd := submit(t, m, "/frobnicate now")
	assert.Nil(t, cmd)
	assert.Contains(t, m.status, "/frobnicate")
	assert.Len(t, m.state.Messages, 1)
}
