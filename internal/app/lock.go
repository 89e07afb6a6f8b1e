package app

import "github.com/ksoltys/teagarden/internal/infrastructure/lock"

func (a *application) InitPlayerLockManager() *lock.PlayerLockManager {
	return lock.NewPlayerLockManager()
}
