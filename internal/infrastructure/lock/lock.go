package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// PlayerLockManager serializes reward mutations per player inside a single
// process. Row-level locks guard the entities themselves; this keeps two
// completions for the same player from interleaving their level math.
type PlayerLockManager struct {
	locks  sync.Map // map[int64]*sync.Mutex
	logger *zap.Logger
}

func NewPlayerLockManager() *PlayerLockManager {
	logger, _ := zap.NewProduction()
	return &PlayerLockManager{
		logger: logger,
	}
}

// Lock acquires a lock for the given playerID with timeout
func (m *PlayerLockManager) Lock(ctx context.Context, playerID int64) error {
	mu := m.getOrCreateMutex(playerID)

	// acquire lock with context timeout
	lockChan := make(chan struct{})
	go func() {
		mu.Lock()
		close(lockChan)
	}()

	// When we give up, the spawned goroutine may still acquire the mutex
	// later; release it again so the player is not wedged forever.
	abandon := func() {
		go func() {
			<-lockChan
			mu.Unlock()
		}()
	}

	select {
	case <-lockChan:
		m.logger.Debug("Acquired player lock", zap.Int64("playerID", playerID))
		return nil
	case <-ctx.Done():
		abandon()
		m.logger.Error("Failed to acquire player lock: context cancelled", zap.Int64("playerID", playerID), zap.Error(ctx.Err()))
		return fmt.Errorf("failed to acquire lock for player %d: %w", playerID, ctx.Err())
	case <-time.After(5 * time.Second):
		abandon()
		m.logger.Error("Failed to acquire player lock: timeout", zap.Int64("playerID", playerID))
		return fmt.Errorf("failed to acquire lock for player %d: timeout", playerID)
	}
}

// Unlock releases the lock for the given playerID
func (m *PlayerLockManager) Unlock(playerID int64) {
	muInterface, ok := m.locks.Load(playerID)
	if !ok {
		m.logger.Warn("No lock found during unlock", zap.Int64("playerID", playerID))
		return
	}
	mu := muInterface.(*sync.Mutex)
	mu.Unlock()
}

// TryLock attempts to acquire a lock without blocking
func (m *PlayerLockManager) TryLock(playerID int64) bool {
	mu := m.getOrCreateMutex(playerID)
	return mu.TryLock()
}

func (m *PlayerLockManager) getOrCreateMutex(playerID int64) *sync.Mutex {
	mu, ok := m.locks.Load(playerID)
	if ok {
		return mu.(*sync.Mutex)
	}

	newMu := &sync.Mutex{}
	actual, _ := m.locks.LoadOrStore(playerID, newMu)
	return actual.(*sync.Mutex)
}
