package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultShutdownTimeout - сколько ждать, пока синхронизация индекса допишет документы
const DefaultShutdownTimeout = 30 * time.Second

// WorkerManager запускает воркеры и собирает их ошибки
type WorkerManager struct {
	workers         []Worker
	logger          *zap.Logger
	shutdownTimeout time.Duration

	wg   sync.WaitGroup
	mu   sync.Mutex
	errs []error
	done chan struct{}
}

// NewWorkerManager создает WorkerManager
func NewWorkerManager(logger *zap.Logger) *WorkerManager {
	return &WorkerManager{
		logger:          logger,
		shutdownTimeout: DefaultShutdownTimeout,
		done:            make(chan struct{}),
	}
}

// WithShutdownTimeout меняет время ожидания в Stop
func (m *WorkerManager) WithShutdownTimeout(d time.Duration) *WorkerManager {
	m.shutdownTimeout = d
	return m
}

func (m *WorkerManager) Register(w Worker) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.workers = append(m.workers, w)
	m.logger.Info("Worker registered", zap.String("name", w.Name()))
}

func (m *WorkerManager) snapshot() []Worker {
	m.mu.Lock()
	defer m.mu.Unlock()
	workers := make([]Worker, len(m.workers))
	copy(workers, m.workers)
	return workers
}

// Start запускает каждый воркер в своей горутине. Done закрывается, когда
// все воркеры вышли.
func (m *WorkerManager) Start(ctx context.Context) error {
	workers := m.snapshot()
	if len(workers) == 0 {
		return fmt.Errorf("no workers registered")
	}

	m.logger.Info("Starting workers", zap.Int("count", len(workers)))

	for _, w := range workers {
		m.wg.Add(1)
		go func(w Worker) {
			defer m.wg.Done()

			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				m.logger.Error("Worker failed", zap.String("name", w.Name()), zap.Error(err))
				m.mu.Lock()
				m.errs = append(m.errs, fmt.Errorf("%s: %w", w.Name(), err))
				m.mu.Unlock()
			}
		}(w)
	}

	go func() {
		m.wg.Wait()
		close(m.done)
	}()

	return nil
}

// Done закрывается после выхода всех воркеров
func (m *WorkerManager) Done() <-chan struct{} {
	return m.done
}

// Err - ошибки воркеров, завершившихся аварийно
func (m *WorkerManager) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return errors.Join(m.errs...)
}

// Stop сигнализирует воркерам и ждёт их не дольше shutdownTimeout
func (m *WorkerManager) Stop() error {
	workers := m.snapshot()
	m.logger.Info("Stopping workers", zap.Int("count", len(workers)))

	for _, w := range workers {
		if err := w.Stop(); err != nil {
			m.logger.Error("Failed to stop worker", zap.String("name", w.Name()), zap.Error(err))
		}
	}

	select {
	case <-m.done:
		m.logger.Info("All workers stopped")
		return m.Err()
	case <-time.After(m.shutdownTimeout):
		m.logger.Warn("Workers shutdown timed out, an index sync may be incomplete",
			zap.Duration("timeout", m.shutdownTimeout))
		return fmt.Errorf("workers shutdown timed out after %v", m.shutdownTimeout)
	}
}
