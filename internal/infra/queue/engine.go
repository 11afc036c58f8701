package queue

import (
	"context"
	"encoding/json"
	"time"
)

// StubAnalysisEngine returns a canned market analysis. It stands in until a
// real model integration replaces it, and keeps the whole job pipeline
// (record, queue, worker, status transitions) exercisable end to end.
type StubAnalysisEngine struct{}

func NewStubAnalysisEngine() *StubAnalysisEngine {
	return &StubAnalysisEngine{}
}

type stubAnalysisResult struct {
	Query           string   `json:"query"`
	Summary         string   `json:"summary"`
	MarketSize      string   `json:"market_size"`
	GrowthRate      string   `json:"growth_rate"`
	KeySegments     []string `json:"key_segments"`
	TopCompetitors  []string `json:"top_competitors"`
	Recommendations []string `json:"recommendations"`
	GeneratedAt     string   `json:"generated_at"`
}

func (e *StubAnalysisEngine) Analyze(ctx context.Context, query string) (json.RawMessage, error) {
	result := stubAnalysisResult{
		Query:      query,
		Summary:    "The analyzed market shows steady demand with moderate competitive pressure. Mid-market buyers are the fastest growing segment.",
		MarketSize: "$4.2B",
		GrowthRate: "11% CAGR",
		KeySegments: []string{
			"Enterprise (1000+ employees)",
			"Mid-market (51-200 employees)",
			"SMB (1-50 employees)",
		},
		TopCompetitors: []string{
			"Incumbent platform vendors",
			"Regional specialist providers",
			"In-house tooling",
		},
		Recommendations: []string{
			"Prioritize decision makers at mid-market companies",
			"Lead outreach with direct contact data coverage",
			"Target industries with the highest enrichment success rates",
		},
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}

	return json.Marshal(result)
}
