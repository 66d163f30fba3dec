package messages

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"guestdesk-backend/internal/departments"
	"guestdesk-backend/internal/faqs"
	"guestdesk-backend/internal/languages"
	"guestdesk-backend/internal/llm"
	"guestdesk-backend/internal/shared/metrics"
	"guestdesk-backend/internal/shared/telemetry"
)

// Service contains business logic for message analysis.
type Service struct {
	LLM            llm.Client
	Repo           Repo
	FAQs           faqs.Repo
	SubcallTimeout time.Duration
}

// Analyze routes one request to its task and assembles the response
// envelope. Unrecognized tasks return an empty result set rather than an
// error; the caller treats an empty results object as nothing to render.
func (s *Service) Analyze(ctx context.Context, req AnalysisRequest) (Response, error) {
	if s.LLM == nil {
		return Response{}, ErrNotConfigured
	}

	start := time.Now()
	resp := Response{
		Task:     req.Task,
		Results:  map[string]any{},
		DBUpdate: outcomeSkipped(),
	}

	var err error
	switch req.Task {
	case TaskFullPipeline:
		var res AnalysisResult
		if res, err = s.runFullPipeline(ctx, req); err == nil {
			resp.Results = res
			resp.DBUpdate = s.commit(ctx, req.MessageID, res.patch())
		}
	case TaskTranslate:
		var res TranslationResult
		if res, err = s.translateOnly(ctx, req); err == nil {
			resp.Results = res
			resp.Result = res.TranslatedText
			resp.DBUpdate = s.commit(ctx, req.MessageID, res.patch())
		}
	case TaskAnswerQuestion:
		var res AnswerResult
		if res, err = s.answerQuestion(ctx, req); err == nil {
			resp.Results = res
			answer := res.Answer
			resp.Result = &answer
		}
	default:
		telemetry.Warn("analysis.unknown_task", map[string]any{
			"task":       req.Task,
			"message_id": req.MessageID,
		})
	}

	if err != nil {
		metrics.IncMessageAnalysisFailed()
		return Response{}, err
	}
	metrics.IncMessageAnalyzed()
	metrics.ObserveAnalysisDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	return resp, nil
}

// runFullPipeline fans out the classification sub-calls, waits for all of
// them, and assembles one flat result. The unconditional three fail as a
// unit; only the topic parse degrades gracefully.
func (s *Service) runFullPipeline(ctx context.Context, req AnalysisRequest) (AnalysisResult, error) {
	wantTranslation := translationRequested(req.OriginalLanguage, req.TargetLanguage)

	var sentiment, urgency, topicRaw, translated string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sentiment, err = s.complete(gctx, llm.CompleteInput{
			System:      sentimentSystem,
			User:        req.Text,
			MaxTokens:   labelMaxTokens,
			Temperature: labelTemperature,
		})
		return err
	})
	g.Go(func() error {
		var err error
		urgency, err = s.complete(gctx, llm.CompleteInput{
			System:      urgencySystem,
			User:        req.Text,
			MaxTokens:   labelMaxTokens,
			Temperature: labelTemperature,
		})
		return err
	})
	g.Go(func() error {
		var err error
		topicRaw, err = s.complete(gctx, llm.CompleteInput{
			System:      topicSystem,
			User:        req.Text,
			MaxTokens:   topicMaxTokens,
			Temperature: topicTemperature,
		})
		return err
	})
	if wantTranslation {
		g.Go(func() error {
			var err error
			translated, err = s.translate(gctx, req.Text, req.TargetLanguage)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return AnalysisResult{}, err
	}

	topic := parseTopicJSON(topicRaw)
	if topic.Fallback {
		telemetry.Warn("analysis.topic_parse_fallback", map[string]any{
			"message_id": req.MessageID,
			"raw":        topic.Raw,
		})
	}

	res := AnalysisResult{
		Sentiment:   sentiment,
		Urgency:     urgency,
		Department:  departments.Normalize(topic.Topic),
		Subcategory: topic.Subtopic,
		Analyzed:    true,
	}
	if wantTranslation && translated != "" {
		target := req.TargetLanguage
		res.TranslatedText = &translated
		res.IsTranslated = true
		res.TargetLanguage = &target
	}
	return res, nil
}

// translateOnly runs the translation sub-call on its own. When no real
// translation is requested (missing codes or same language either casing),
// no completion call is issued.
func (s *Service) translateOnly(ctx context.Context, req AnalysisRequest) (TranslationResult, error) {
	if !translationRequested(req.OriginalLanguage, req.TargetLanguage) {
		return TranslationResult{IsTranslated: false}, nil
	}

	translated, err := s.translate(ctx, req.Text, req.TargetLanguage)
	if err != nil {
		return TranslationResult{}, err
	}
	if translated == "" {
		return TranslationResult{IsTranslated: false}, nil
	}
	target := req.TargetLanguage
	return TranslationResult{
		TranslatedText: &translated,
		IsTranslated:   true,
		TargetLanguage: &target,
	}, nil
}

// answerQuestion builds a grounding context from the inline text or the
// property FAQ store and issues one grounded completion. An empty context is
// a validation failure; the model is never called without grounding.
func (s *Service) answerQuestion(ctx context.Context, req AnalysisRequest) (AnswerResult, error) {
	contextBlock := strings.TrimSpace(req.Context)
	if contextBlock == "" && req.PropertyID != "" {
		if s.FAQs == nil {
			return AnswerResult{}, fmt.Errorf("%w: faq store not configured", ErrStore)
		}
		rows, err := s.FAQs.ListActiveByProperty(ctx, req.PropertyID)
		if err != nil {
			return AnswerResult{}, fmt.Errorf("%w: %v", ErrStore, err)
		}
		contextBlock = joinFAQs(rows)
	}
	if contextBlock == "" {
		return AnswerResult{}, fmt.Errorf("%w: no context available to answer the question", ErrValidation)
	}

	answer, err := s.complete(ctx, llm.CompleteInput{
		System:      answerSystem(contextBlock),
		User:        req.Text,
		MaxTokens:   answerMaxTokens,
		Temperature: answerTemperature,
	})
	if err != nil {
		return AnswerResult{}, err
	}
	return AnswerResult{Answer: answer}, nil
}

// commit patches the stored message with the analysis fields. A missing
// message ID is expected (nothing to persist); a store failure is captured
// in the outcome and never fails the request.
func (s *Service) commit(ctx context.Context, messageID string, patch AnalysisPatch) PersistenceOutcome {
	if strings.TrimSpace(messageID) == "" {
		return outcomeSkipped()
	}
	if s.Repo == nil {
		return PersistenceOutcome{Attempted: true, OK: false, Detail: "message store not configured"}
	}

	rows, err := s.Repo.UpdateAnalysis(ctx, messageID, patch, time.Now().UTC())
	if err != nil {
		metrics.IncDBUpdateFailed()
		telemetry.Error("analysis.db_update_failed", map[string]any{
			"message_id": messageID,
			"error":      err.Error(),
		})
		return PersistenceOutcome{Attempted: true, OK: false, Detail: err.Error()}
	}
	return PersistenceOutcome{Attempted: true, OK: true, Detail: fmt.Sprintf("%d row(s) updated", rows)}
}

func (s *Service) translate(ctx context.Context, text, targetLanguage string) (string, error) {
	return s.complete(ctx, llm.CompleteInput{
		System:      translationSystem(languages.Resolve(targetLanguage)),
		User:        text,
		MaxTokens:   translateMaxTokens,
		Temperature: translateTemperature,
	})
}

func (s *Service) complete(ctx context.Context, input llm.CompleteInput) (string, error) {
	timeout := s.SubcallTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	metrics.IncCompletionCall()
	return s.LLM.Complete(cctx, input)
}

func translationRequested(originalLanguage, targetLanguage string) bool {
	original := strings.TrimSpace(originalLanguage)
	target := strings.TrimSpace(targetLanguage)
	if original == "" || target == "" {
		return false
	}
	return !strings.EqualFold(original, target)
}

func joinFAQs(rows []faqs.FAQ) string {
	var b strings.Builder
	for i, f := range rows {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(f.Question)
		b.WriteString("\n")
		b.WriteString(f.Answer)
	}
	return b.String()
}

func outcomeSkipped() PersistenceOutcome {
	return PersistenceOutcome{Attempted: false, OK: false, Detail: "no message id provided"}
}
