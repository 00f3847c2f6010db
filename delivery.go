package mailbridge

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Delivery is the result of one dispatched send. It resolves exactly once,
// to either a provider message id or an error; later resolution attempts are
// no-ops. The zero value is not usable; deliveries are created by the
// dispatcher.
type Delivery struct {
	id   string
	done chan struct{}
	once sync.Once

	// Written once under once, readable after done is closed.
	messageID string
	err       error
}

func newDelivery() *Delivery {
	return &Delivery{
		id:   uuid.NewString(),
		done: make(chan struct{}),
	}
}

// ID returns the dispatch correlation id. It identifies this send in logs
// and is assigned locally, unlike the provider message id.
func (d *Delivery) ID() string {
	return d.id
}

// Done returns a channel that is closed when the delivery resolves.
func (d *Delivery) Done() <-chan struct{} {
	return d.done
}

// Err returns the send outcome: nil for success, or the failure joined onto
// one of the package sentinels. It returns nil while the delivery is still
// in flight, so check Done first or use Wait.
func (d *Delivery) Err() error {
	select {
	case <-d.done:
		return d.err
	default:
		return nil
	}
}

// MessageID returns the provider-assigned message id. It is empty until the
// delivery resolves, and stays empty on failure.
func (d *Delivery) MessageID() string {
	select {
	case <-d.done:
		return d.messageID
	default:
		return ""
	}
}

// Wait blocks until the delivery resolves or ctx is done. Cancelling ctx
// stops the wait but not the send; the delivery still resolves on its own.
func (d *Delivery) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-d.done:
		return d.err
	}
}

// resolve records the outcome. Only the first call has any effect.
func (d *Delivery) resolve(messageID string, err error) {
	d.once.Do(func() {
		d.messageID = messageID
		d.err = err
		close(d.done)
	})
}
