package entity

import (
	"context"
	"encoding/json"
	"time"
)

// Market analysis job states. A job is created pending, claimed by the worker
// as processing, and ends completed or failed. There is no retry transition.
const (
	AnalysisStatusPending    = "pending"
	AnalysisStatusProcessing = "processing"
	AnalysisStatusCompleted  = "completed"
	AnalysisStatusFailed     = "failed"
)

type MarketAnalysis struct {
	ID        string          `json:"id"`
	UserID    int64           `json:"user_id"`
	Query     string          `json:"query"`
	Status    string          `json:"status"`
	Result    json.RawMessage `json:"analysis_result,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CanTransition enforces the job state machine.
func (a *MarketAnalysis) CanTransition(next string) bool {
	switch a.Status {
	case AnalysisStatusPending:
		return next == AnalysisStatusProcessing || next == AnalysisStatusFailed
	case AnalysisStatusProcessing:
		return next == AnalysisStatusCompleted || next == AnalysisStatusFailed
	default:
		return false
	}
}

type AnalysisRepositoryInterface interface {
	Create(ctx context.Context, a *MarketAnalysis) error
	FindByID(ctx context.Context, id string, userID int64) (*MarketAnalysis, error)
	ListByUser(ctx context.Context, userID int64) ([]MarketAnalysis, error)
	MarkProcessing(ctx context.Context, id string) error
	Complete(ctx context.Context, id string, result json.RawMessage) error
	Fail(ctx context.Context, id string, reason string) error
}
