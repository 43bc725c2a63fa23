package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"quickmath/internal/logger"
)

// Shutdownable is implemented by components that need teardown on exit.
type Shutdownable interface {
	Shutdown()
}

const componentTimeout = 10 * time.Second

// Manager coordinates graceful shutdown: it listens for OS signals and tears
// registered components down in reverse registration order.
type Manager struct {
	mu         sync.Mutex
	names      []string
	components []Shutdownable
	log        logger.Logger
	done       chan struct{}
	ctx        context.Context
	cancel     context.CancelFunc
}

// NewManager creates a shutdown manager.
func NewManager(log logger.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		log:    log,
		done:   make(chan struct{}),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Register adds a component; later registrations shut down first.
func (m *Manager) Register(name string, component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.names = append(m.names, name)
	m.components = append(m.components, component)
}

// RegisterFunc registers a bare teardown function.
func (m *Manager) RegisterFunc(name string, fn func()) {
	m.Register(name, shutdownFunc(fn))
}

// Listen starts watching for termination signals.
func (m *Manager) Listen() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		sig := <-sigChan
		m.log.Info("shutdown signal received", map[string]interface{}{
			"signal": sig.String(),
		})
		m.Shutdown()
	}()
}

// Shutdown runs the teardown sequence once; subsequent calls are no-ops.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	m.log.Info("shutdown sequence initiated", map[string]interface{}{
		"components": len(m.components),
	})

	m.cancel()

	for i := len(m.components) - 1; i >= 0; i-- {
		m.shutdownComponent(m.names[i], m.components[i])
	}

	m.log.Info("shutdown sequence completed", nil)
}

func (m *Manager) shutdownComponent(name string, component Shutdownable) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		component.Shutdown()
	}()

	select {
	case <-done:
		m.log.Debug("component shut down", map[string]interface{}{
			"component": name,
		})
	case <-time.After(componentTimeout):
		m.log.Warning("component shutdown timeout", map[string]interface{}{
			"component": name,
		})
	}
}

// Context returns a context cancelled when shutdown begins.
func (m *Manager) Context() context.Context {
	return m.ctx
}

// Done returns a channel closed when shutdown begins.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}

type shutdownFunc func()

func (f shutdownFunc) Shutdown() { f() }
