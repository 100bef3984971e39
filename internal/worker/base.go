package worker

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Worker - фоновый потребитель стрима. Start блокируется до Stop или отмены
// контекста; nil означает штатную остановку.
type Worker interface {
	Start(ctx context.Context) error
	Stop() error
	Name() string
}

// BaseWorker - остановка, имя и идентичность потребителя в consumer group
type BaseWorker struct {
	name          string
	consumerGroup string
	consumerName  string
	logger        *zap.Logger
	stopChan      chan struct{}
	stopOnce      sync.Once
}

// NewBaseWorker создает BaseWorker; имя потребителя - host-pid, чтобы
// несколько реплик читали одну группу без конфликтов
func NewBaseWorker(name, consumerGroup string, logger *zap.Logger) *BaseWorker {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "worker"
	}

	return &BaseWorker{
		name:          name,
		consumerGroup: consumerGroup,
		consumerName:  fmt.Sprintf("%s-%d", hostname, os.Getpid()),
		logger:        logger.With(zap.String("worker", name)),
		stopChan:      make(chan struct{}),
	}
}

func (w *BaseWorker) Name() string {
	return w.name
}

// Stop идемпотентен
func (w *BaseWorker) Stop() error {
	w.stopOnce.Do(func() {
		w.logger.Info("Stopping worker")
		close(w.stopChan)
	})
	return nil
}

func (w *BaseWorker) IsStopped() bool {
	select {
	case <-w.stopChan:
		return true
	default:
		return false
	}
}

func (w *BaseWorker) StopChan() <-chan struct{} {
	return w.stopChan
}

func (w *BaseWorker) ConsumerGroup() string {
	return w.consumerGroup
}

func (w *BaseWorker) ConsumerName() string {
	return w.consumerName
}

func (w *BaseWorker) Logger() *zap.Logger {
	return w.logger
}

// Sleep ждёт d; false, если за это время воркер остановлен или контекст отменён
func (w *BaseWorker) Sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-w.stopChan:
		return false
	case <-timer.C:
		return true
	}
}
