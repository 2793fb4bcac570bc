package revalidate

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHub_Revalidate(t *testing.T) {
	hub := NewHub()

	var got []uint64
	hub.Subscribe(func(path string, version uint64) {
		assert.Equal(t, "/dashboard/invoices", path)
		got = append(got, version)
	})

	assert.Zero(t, hub.Version("/dashboard/invoices"))

	hub.Revalidate(context.Background(), "/dashboard/invoices")
	hub.Revalidate(context.Background(), "/dashboard/invoices")

	assert.Equal(t, uint64(2), hub.Version("/dashboard/invoices"))
	assert.Equal(t, []uint64{1, 2}, got)
	assert.Zero(t, hub.Version("/dashboard/customers"))
}

func TestHub_ConcurrentRevalidate(t *testing.T) {
	hub := NewHub()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hub.Revalidate(context.Background(), "/dashboard")
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(50), hub.Version("/dashboard"))
}
