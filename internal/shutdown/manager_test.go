package shutdown

import (
	"sync"
	"testing"
	"time"

	"desk-calc/internal/logger"

	"github.com/stretchr/testify/assert"
)

func TestManagerShutdownReverseOrder(t *testing.T) {
	m := NewManager(logger.NewNop())

	var (
		mu    sync.Mutex
		order []string
	)
	record := func(name string) ShutdownFunc {
		return func() {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
		}
	}

	m.Register("watcher", record("watcher"))
	m.Register("controller", record("controller"))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"controller", "watcher"}, order)
}

func TestManagerListenAfterShutdown(t *testing.T) {
	m := NewManager(logger.NewNop())

	var calls int
	m.Register("controller", ShutdownFunc(func() { calls++ }))
	m.Shutdown()

	// The signal goroutine exits on the closed done channel without
	// running the components a second time.
	m.Listen(func() { t.Error("onSignal called without a signal") })
	m.Shutdown()
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, 1, calls)
}

func TestManagerComponentTimeout(t *testing.T) {
	m := NewManager(logger.NewNop())
	m.SetComponentTimeout(20 * time.Millisecond)

	release := make(chan struct{})
	defer close(release)

	m.Register("stuck", ShutdownFunc(func() { <-release }))

	start := time.Now()
	m.Shutdown()
	assert.Less(t, time.Since(start), time.Second)
}
