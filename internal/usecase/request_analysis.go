package usecase

import (
	"context"
	"strings"

	"github.com/prospectfinder/backend/internal/entity"
	"github.com/prospectfinder/backend/internal/infra/queue"
)

// RequestAnalysisUseCase records a market-analysis job and hands it to the
// broker. The HTTP layer returns immediately with the pending job; a worker
// picks it up from the queue.
type RequestAnalysisUseCase struct {
	Repo  entity.AnalysisRepositoryInterface
	Queue QueueProducerInterface
}

func NewRequestAnalysisUseCase(repo entity.AnalysisRepositoryInterface, producer QueueProducerInterface) *RequestAnalysisUseCase {
	return &RequestAnalysisUseCase{Repo: repo, Queue: producer}
}

func (uc *RequestAnalysisUseCase) Execute(ctx context.Context, userID int64, query string) (*entity.MarketAnalysis, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "query is required"}
	}
	if len(query) > 2000 {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "query must not exceed 2000 characters"}
	}

	analysis := &entity.MarketAnalysis{UserID: userID, Query: query}
	if err := uc.Repo.Create(ctx, analysis); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to record analysis: " + err.Error()}
	}

	payload := queue.AnalysisPayload{
		AnalysisID: analysis.ID,
		UserID:     userID,
		Query:      query,
	}
	if err := uc.Queue.PublishAnalysis(ctx, payload); err != nil {
		// The job exists but no worker will see it; mark the record so the
		// frontend does not poll a pending job forever.
		_ = uc.Repo.Fail(ctx, analysis.ID, "failed to enqueue analysis")
		return nil, &TechnicalError{Code: "QUEUE_ERROR", Message: "failed to enqueue analysis: " + err.Error()}
	}

	return analysis, nil
}
