package domain

import "context"

// TopicLedgerCredit carries persisted orders from the intake pipeline to the
// settlement notifier.
const TopicLedgerCredit = "ledger-credit"

type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload []byte)
}
