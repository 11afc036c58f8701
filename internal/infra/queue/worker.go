package queue

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/prospectfinder/backend/internal/entity"
)

// AnalysisStore is the slice of the analysis repository the worker needs.
type AnalysisStore interface {
	MarkProcessing(ctx context.Context, id string) error
	Complete(ctx context.Context, id string, result json.RawMessage) error
	Fail(ctx context.Context, id string, reason string) error
}

// AnalysisEngine produces the analysis result for a query. The stub engine
// below is the only implementation for now; a model-backed one plugs in
// behind the same interface.
type AnalysisEngine interface {
	Analyze(ctx context.Context, query string) (json.RawMessage, error)
}

type Worker struct {
	Channel *amqp.Channel
	Store   AnalysisStore
	Engine  AnalysisEngine
}

func NewWorker(ch *amqp.Channel, store AnalysisStore, engine AnalysisEngine) *Worker {
	return &Worker{Channel: ch, Store: store, Engine: engine}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer tag
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		log.Fatalf("❌ failed to register analysis consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload AnalysisPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] malformed analysis message: %s", err)
				// Poison message. Reject without requeue so it dead-letters.
				d.Nack(false, false)
				continue
			}

			log.Printf("⚙️ [WORKER] processing analysis %s (user %d)", payload.AnalysisID, payload.UserID)

			if err := w.process(context.Background(), payload); err != nil {
				log.Printf("❌ [WORKER] analysis %s failed: %s", payload.AnalysisID, err)
				d.Nack(false, false)
			} else {
				log.Printf("✅ [WORKER] analysis %s completed", payload.AnalysisID)
				d.Ack(false)
			}
		}
	}()

	log.Printf("👷 analysis worker listening on %s", queueName)
	<-forever
}

func (w *Worker) process(ctx context.Context, payload AnalysisPayload) error {
	if err := w.Store.MarkProcessing(ctx, payload.AnalysisID); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			// Already claimed or gone; redelivery, not a failure.
			log.Printf("analysis %s not claimable, skipping", payload.AnalysisID)
			return nil
		}
		return err
	}

	result, err := w.Engine.Analyze(ctx, payload.Query)
	if err != nil {
		if failErr := w.Store.Fail(ctx, payload.AnalysisID, err.Error()); failErr != nil {
			log.Printf("could not mark analysis %s failed: %s", payload.AnalysisID, failErr)
		}
		return err
	}

	return w.Store.Complete(ctx, payload.AnalysisID, result)
}
