package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fosagri/assist/ai"
	"github.com/fosagri/assist/ai/mock"
)

func newTestOrchestrator(t *testing.T, reasoner ai.Reasoner) *Orchestrator {
	t.Helper()
	builder, err := NewContextBuilder(groundingCatalog(t))
	require.NoError(t, err)
	orch, err := NewOrchestrator(reasoner, builder)
	require.NoError(t, err)
	return orch
}

func TestNewOrchestrator(t *testing.T) {
	builder, err := NewContextBuilder(groundingCatalog(t))
	require.NoError(t, err)

	t.Run("nil reasoner rejected", func(t *testing.T) {
		orch, err := NewOrchestrator(nil, builder)
		assert.Nil(t, orch)
		assert.ErrorIs(t, err, ErrReasonerRequired)
	})

	t.Run("nil builder rejected", func(t *testing.T) {
		orch, err := NewOrchestrator(mock.NewMockReasoner(), nil)
		assert.Nil(t, orch)
		assert.ErrorIs(t, err, ErrContextBuilderRequired)
	})

	t.Run("valid configuration", func(t *testing.T) {
		orch, err := NewOrchestrator(mock.NewMockReasoner(), builder)
		require.NoError(t, err)
		assert.NotNil(t, orch)
	})
}

func TestOrchestrator_AskOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("blank query is a no-op", func(t *testing.T) {
		reasoner := mock.NewMockReasoner()
		orch := newTestOrchestrator(t, reasoner)

		assert.Nil(t, orch.AskOnce(ctx, ""))
		assert.Nil(t, orch.AskOnce(ctx, "   "))
		assert.Zero(t, reasoner.CallCount())
	})

	t.Run("request shape", func(t *testing.T) {
		reasoner := mock.NewMockReasoner()
		orch := newTestOrchestrator(t, reasoner)

		result := orch.AskOnce(ctx, "bourses d'excellence")
		require.NotNil(t, result)
		assert.False(t, result.Failed)

		req := reasoner.LastRequest()
		require.NotNil(t, req)
		assert.True(t, req.WebSearch)
		assert.Equal(t, searchMaxTokens, req.MaxTokens)
		assert.True(t, strings.HasSuffix(req.System, webSearchInstruction))
		require.Len(t, req.Turns, 1)
		assert.Equal(t, ai.RoleUser, req.Turns[0].Role)
		assert.Contains(t, req.Turns[0].Content, `Recherche FOS-Agri: "bourses d'excellence".`)
	})

	t.Run("web evidence surfaces", func(t *testing.T) {
		reasoner := mock.NewMockReasoner()
		orch := newTestOrchestrator(t, reasoner)

		result := orch.AskOnce(ctx, "forfait INWI")
		require.NotNil(t, result)
		assert.Equal(t, "mock-web-search", result.WebEvidence)
	})

	t.Run("backend error yields fallback text", func(t *testing.T) {
		reasoner := mock.NewMockReasoner()
		reasoner.GenerateFunc = func(ctx context.Context, req *ai.Request) (*ai.Result, error) {
			return nil, errors.New("connection refused")
		}
		orch := newTestOrchestrator(t, reasoner)

		result := orch.AskOnce(ctx, "assurance voyage")
		require.NotNil(t, result)
		assert.True(t, result.Failed)
		assert.Equal(t, SearchFailureText, result.Response)
	})

	t.Run("empty completion yields placeholder", func(t *testing.T) {
		reasoner := mock.NewMockReasoner()
		reasoner.GenerateFunc = func(ctx context.Context, req *ai.Request) (*ai.Result, error) {
			return &ai.Result{}, nil
		}
		orch := newTestOrchestrator(t, reasoner)

		result := orch.AskOnce(ctx, "assurance voyage")
		require.NotNil(t, result)
		assert.False(t, result.Failed)
		assert.Equal(t, EmptyWebCompletionText, result.Response)
	})
}

func TestOrchestrator_Converse(t *testing.T) {
	ctx := context.Background()
	turns := []ai.Turn{
		{Role: ai.RoleUser, Content: "Bonjour"},
		{Role: ai.RoleAssistant, Content: "Bonjour! Comment puis-je vous aider?"},
		{Role: ai.RoleUser, Content: "Comment adhérer au club?"},
	}

	t.Run("request shape", func(t *testing.T) {
		reasoner := mock.NewMockReasoner()
		orch := newTestOrchestrator(t, reasoner)

		result := orch.Converse(ctx, turns)
		require.NotNil(t, result)
		assert.False(t, result.Failed)
		assert.Contains(t, result.Response, "Comment adhérer au club?")

		req := reasoner.LastRequest()
		require.NotNil(t, req)
		assert.False(t, req.WebSearch)
		assert.Equal(t, chatMaxTokens, req.MaxTokens)
		assert.NotContains(t, req.System, webSearchInstruction)
		assert.Len(t, req.Turns, 3)
	})

	t.Run("web evidence never copied in chat", func(t *testing.T) {
		reasoner := mock.NewMockReasoner()
		reasoner.GenerateFunc = func(ctx context.Context, req *ai.Request) (*ai.Result, error) {
			return &ai.Result{Text: "réponse", WebEvidence: "should-not-leak"}, nil
		}
		orch := newTestOrchestrator(t, reasoner)

		result := orch.Converse(ctx, turns)
		require.NotNil(t, result)
		assert.Empty(t, result.WebEvidence)
	})

	t.Run("backend error yields fallback text", func(t *testing.T) {
		reasoner := mock.NewMockReasoner()
		reasoner.GenerateFunc = func(ctx context.Context, req *ai.Request) (*ai.Result, error) {
			return nil, errors.New("timeout")
		}
		orch := newTestOrchestrator(t, reasoner)

		result := orch.Converse(ctx, turns)
		require.NotNil(t, result)
		assert.True(t, result.Failed)
		assert.Equal(t, ChatFailureText, result.Response)
	})

	t.Run("empty completion yields placeholder", func(t *testing.T) {
		reasoner := mock.NewMockReasoner()
		reasoner.GenerateFunc = func(ctx context.Context, req *ai.Request) (*ai.Result, error) {
			return &ai.Result{}, nil
		}
		orch := newTestOrchestrator(t, reasoner)

		result := orch.Converse(ctx, turns)
		require.NotNil(t, result)
		assert.Equal(t, EmptyCompletionText, result.Response)
	})
}
