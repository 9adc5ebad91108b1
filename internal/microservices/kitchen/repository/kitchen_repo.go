package repository

import (
	"context"
	"database/sql"
	"errors"

	"patio-system/internal/domain"
)

type KitchenRepositoryInterface interface {
	// AssignBuzzer moves PENDING -> IN_PROGRESS and records the buzzer.
	// NotFound for an unknown id, InvalidStateError (with the actual
	// current status) for anything not PENDING.
	AssignBuzzer(ctx context.Context, orderID, buzzer, changedBy string) error
	// Complete moves IN_PROGRESS -> COMPLETED and clears the buzzer.
	Complete(ctx context.Context, orderID, changedBy string) error
}

type KitchenRepository struct {
	db *sql.DB
}

func NewKitchenRepository(db *sql.DB) KitchenRepositoryInterface {
	return &KitchenRepository{db: db}
}

// transition locks the order row, re-checks the expected status under the
// lock and applies the update, so two operators racing on the same order
// cannot overwrite each other; the loser sees InvalidStateError.
func (r *KitchenRepository) transition(ctx context.Context, orderID string,
	from, to domain.OrderStatus, verb, changedBy string,
	apply func(tx *sql.Tx) error) error {

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return &domain.StorageError{Op: "begin " + verb, Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	var current string
	err = tx.QueryRowContext(ctx, `SELECT status FROM orders WHERE id=$1 FOR UPDATE`, orderID).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return &domain.StorageError{Op: "lock order", Err: err}
	}
	if domain.OrderStatus(current) != from {
		return &domain.InvalidStateError{Current: domain.OrderStatus(current), Transition: verb}
	}

	if err := apply(tx); err != nil {
		return &domain.StorageError{Op: verb, Err: err}
	}
	if _, err := tx.ExecContext(ctx, `
INSERT INTO order_status_log (order_id, status, changed_by, changed_at)
VALUES ($1,$2,$3,now())
`, orderID, string(to), changedBy); err != nil {
		return &domain.StorageError{Op: "log " + verb, Err: err}
	}

	if err := tx.Commit(); err != nil {
		return &domain.StorageError{Op: "commit " + verb, Err: err}
	}
	return nil
}

func (r *KitchenRepository) AssignBuzzer(ctx context.Context, orderID, buzzer, changedBy string) error {
	return r.transition(ctx, orderID, domain.StatusPending, domain.StatusInProgress, "assign buzzer", changedBy,
		func(tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, `
UPDATE orders SET status=$2, buzzer_number=$3, updated_at=now() WHERE id=$1
`, orderID, string(domain.StatusInProgress), buzzer)
			return err
		})
}

func (r *KitchenRepository) Complete(ctx context.Context, orderID, changedBy string) error {
	return r.transition(ctx, orderID, domain.StatusInProgress, domain.StatusCompleted, "complete", changedBy,
		func(tx *sql.Tx) error {
			// Buzzer is cleared in the same statement; COMPLETED orders
			// never carry one.
			_, err := tx.ExecContext(ctx, `
UPDATE orders SET status=$2, buzzer_number=NULL, updated_at=now() WHERE id=$1
`, orderID, string(domain.StatusCompleted))
			return err
		})
}
