package mailbridge

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDelivery_ResolveSuccess(t *testing.T) {
	t.Parallel()

	dl := newDelivery()
	require.NotEmpty(t, dl.ID())
	require.NoError(t, dl.Err())
	require.Empty(t, dl.MessageID())

	dl.resolve("42", nil)

	<-dl.Done()
	require.NoError(t, dl.Err())
	require.Equal(t, "42", dl.MessageID())
}

func TestDelivery_ResolveFailure(t *testing.T) {
	t.Parallel()

	dl := newDelivery()
	sendErr := errors.New("boom")
	dl.resolve("", sendErr)

	require.ErrorIs(t, dl.Err(), sendErr)
	require.Empty(t, dl.MessageID())
	require.ErrorIs(t, dl.Wait(context.Background()), sendErr)
}

func TestDelivery_FirstResolutionWins(t *testing.T) {
	t.Parallel()

	dl := newDelivery()
	dl.resolve("", errors.New("first"))
	dl.resolve("42", nil)

	require.Error(t, dl.Err())
	require.ErrorContains(t, dl.Err(), "first")
	require.Empty(t, dl.MessageID())
}

func TestDelivery_ConcurrentResolution(t *testing.T) {
	t.Parallel()

	dl := newDelivery()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				dl.resolve("even", nil)
			} else {
				dl.resolve("", errors.New("odd"))
			}
		}()
	}
	wg.Wait()

	// Exactly one outcome, stable across reads.
	first, firstID := dl.Err(), dl.MessageID()
	if first == nil {
		require.Equal(t, "even", firstID)
	} else {
		require.ErrorContains(t, first, "odd")
		require.Empty(t, firstID)
	}
	require.Equal(t, first, dl.Err())
	require.Equal(t, firstID, dl.MessageID())
}

func TestDelivery_WaitContextCancelled(t *testing.T) {
	t.Parallel()

	dl := newDelivery()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, dl.Wait(ctx), context.Canceled)

	// The delivery itself is untouched by the abandoned wait.
	require.NoError(t, dl.Err())
	dl.resolve("42", nil)
	require.Equal(t, "42", dl.MessageID())
}

func TestDelivery_DoneUnblocksWaiters(t *testing.T) {
	t.Parallel()

	dl := newDelivery()
	done := make(chan error, 1)

	go func() {
		done <- dl.Wait(context.Background())
	}()

	dl.resolve("42", nil)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("waiter not released")
	}
}

func TestDelivery_UniqueIDs(t *testing.T) {
	t.Parallel()

	require.NotEqual(t, newDelivery().ID(), newDelivery().ID())
}
