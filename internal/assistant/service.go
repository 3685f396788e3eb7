// Package assistant runs the question pipeline: relevance gate, context
// recall, model completion, and product-link enrichment.
package assistant

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/Musasteel/ai-pc-assistant/internal/conversation"
	"github.com/Musasteel/ai-pc-assistant/internal/llm"
	"github.com/Musasteel/ai-pc-assistant/internal/metrics"
	"github.com/Musasteel/ai-pc-assistant/internal/relevance"
)

// ErrEmptyQuestion means the request carried no question text.
var ErrEmptyQuestion = errors.New("no question provided")

// CompletionClient is the slice of llm.Client the pipeline needs.
type CompletionClient interface {
	Complete(ctx context.Context, system string, history []llm.Message, question string) (string, error)
}

// Answer is the outcome of a processed question.
type Answer struct {
	Reply string
	Links []string
	// OffTopic is set when the relevance gate refused the question; the
	// reply then carries the fixed redirect message and no links.
	OffTopic bool
}

// Service wires the pipeline stages together. One call per question; no
// internal fan-out — completion latency dominates and stays per-session.
type Service struct {
	classifier   *relevance.Classifier
	store        conversation.Store
	completions  CompletionClient
	assembler    *Assembler
	historyTurns int
}

func NewService(
	classifier *relevance.Classifier,
	store conversation.Store,
	completions CompletionClient,
	assembler *Assembler,
	historyTurns int,
) *Service {
	return &Service{
		classifier:   classifier,
		store:        store,
		completions:  completions,
		assembler:    assembler,
		historyTurns: historyTurns,
	}
}

// Ask processes one question for a session.
//
// Off-topic questions short-circuit before any model call. Completion
// failures surface to the caller with the conversation left untouched — a
// failed exchange must not pollute context for the next question.
func (s *Service) Ask(ctx context.Context, sessionID, question string) (Answer, error) {
	if strings.TrimSpace(question) == "" {
		metrics.QuestionsTotal.WithLabelValues("rejected").Inc()
		return Answer{}, ErrEmptyQuestion
	}

	if !relevance.HasFollowUpCue(question) && !s.classifier.IsRelated(question) {
		slog.Info("question refused as off-topic", "session", sessionID)
		metrics.QuestionsTotal.WithLabelValues("off_topic").Inc()
		return Answer{Reply: refusalMessage, OffTopic: true}, nil
	}

	history := s.recentHistory(ctx, sessionID)

	raw, err := s.completions.Complete(ctx, systemPrompt, history, question)
	if err != nil {
		metrics.QuestionsTotal.WithLabelValues("failed").Inc()
		return Answer{}, err
	}

	reply, links := s.assembler.Assemble(ctx, raw)

	s.storeExchange(ctx, sessionID, question, reply)
	metrics.QuestionsTotal.WithLabelValues("answered").Inc()

	return Answer{Reply: reply, Links: links}, nil
}

// recentHistory loads the last turns for prompting. History is an
// enhancement: a read failure logs and degrades to an empty transcript
// rather than failing the question.
func (s *Service) recentHistory(ctx context.Context, sessionID string) []llm.Message {
	turns, err := s.store.Recent(ctx, sessionID, s.historyTurns)
	if err != nil {
		slog.Warn("loading conversation history failed", "error", err, "session", sessionID)
		return nil
	}

	messages := make([]llm.Message, 0, len(turns))
	for _, t := range turns {
		messages = append(messages, llm.Message{Role: string(t.Role), Content: t.Content})
	}
	return messages
}

// storeExchange appends the user and assistant turns. The reply has
// already been produced, so append failures only log.
func (s *Service) storeExchange(ctx context.Context, sessionID, question, reply string) {
	now := time.Now()
	turns := []conversation.Turn{
		{Role: conversation.RoleUser, Content: question, Timestamp: now},
		{Role: conversation.RoleAssistant, Content: reply, Timestamp: now},
	}
	for _, turn := range turns {
		if err := s.store.Append(ctx, sessionID, turn); err != nil {
			slog.Warn("appending conversation turn failed", "error", err, "session", sessionID)
			return
		}
	}
}
