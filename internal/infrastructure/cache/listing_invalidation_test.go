package cache

import (
	"context"
	"sync"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordingInvalidator(t *testing.T) {
	inv := NewRecordingInvalidator()
	ctx := context.Background()

	inv.Invalidate(ctx, "/dashboard/invoices")
	inv.Invalidate(ctx, "/dashboard/customers")
	inv.Invalidate(ctx, "/dashboard/invoices")

	assert.Equal(t, []string{"/dashboard/invoices", "/dashboard/customers", "/dashboard/invoices"}, inv.Paths())

	inv.Reset()
	assert.Empty(t, inv.Paths())
}

func TestConsumeInvalidations_DeliversPaths(t *testing.T) {
	ch := make(chan *redis.Message, 2)
	ch <- &redis.Message{Channel: invalidationChannel, Payload: "/dashboard/invoices"}
	ch <- &redis.Message{Channel: invalidationChannel, Payload: "/dashboard/customers"}
	close(ch)

	var got []string
	err := consumeInvalidations(context.Background(), ch, func(path string) {
		got = append(got, path)
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"/dashboard/invoices", "/dashboard/customers"}, got)
}

func TestConsumeInvalidations_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := consumeInvalidations(ctx, make(chan *redis.Message), func(string) {
		t.Fatal("no invalidation was published")
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRecordingInvalidator_Concurrent(t *testing.T) {
	inv := NewRecordingInvalidator()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inv.Invalidate(ctx, "/dashboard/invoices")
		}()
	}
	wg.Wait()

	assert.Len(t, inv.Paths(), 50)
}
