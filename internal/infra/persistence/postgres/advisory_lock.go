package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Advisory lock classes. Each class gets its own keyspace so a raid id and a
// user id can never collide on the same lock key.
const (
	lockClassRaidSignup       int64 = 1
	lockClassCharacterDefault int64 = 2
)

// advisoryLockKey packs the class byte above the row id. Row ids are
// bigserial but stay far below 2^56 in practice, so the truncation is safe.
func advisoryLockKey(class, id int64) int64 {
	return class<<56 | (id & 0x00FFFFFFFFFFFFFF)
}

// acquireAdvisoryXactLock blocks until the transaction-scoped advisory lock is
// held. PostgreSQL releases it automatically on commit or rollback, which is
// why the repositories only expose it through the transaction factory.
func acquireAdvisoryXactLock(ctx context.Context, db *gorm.DB, class, id int64) error {
	if err := db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(?)", advisoryLockKey(class, id)).Error; err != nil {
		return errors.Wrap(err, "failed to acquire advisory lock")
	}

	return nil
}
