package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"patio-system/internal/domain"
	"patio-system/internal/timewindow"
)

type OrderRepositoryInterface interface {
	// CreateOrder inserts the order, its item snapshots and the initial
	// status-log row in one transaction; a failure leaves nothing behind.
	CreateOrder(ctx context.Context, order domain.Order) error
	GetOrder(ctx context.Context, id string) (domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	ListByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error)
	// ListByLocalDateRange buckets orders by their civil date in the
	// restaurant zone, bounds inclusive (YYYY-MM-DD).
	ListByLocalDateRange(ctx context.Context, start, end string) ([]domain.Order, error)
}

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) OrderRepositoryInterface {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) CreateOrder(ctx context.Context, order domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return &domain.StorageError{Op: "begin submit", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
INSERT INTO orders (id, employee_email, subtotal, discount_applied, final_total, status, buzzer_number, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,NULL,$7,now())
`, order.ID, order.EmployeeEmail, order.Subtotal, order.DiscountApplied, order.FinalTotal,
		string(order.Status), order.CreatedAt); err != nil {
		return &domain.StorageError{Op: "insert order", Err: err}
	}

	for i, item := range order.Items {
		snapshot, err := json.Marshal(item.MenuItem)
		if err != nil {
			return fmt.Errorf("encode menu item snapshot: %w", err)
		}
		selections, err := json.Marshal(item.SelectedOptions)
		if err != nil {
			return fmt.Errorf("encode selections: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `
INSERT INTO order_items (order_id, cart_id, position, menu_item, quantity, selections, item_total)
VALUES ($1,$2,$3,$4,$5,$6,$7)
`, order.ID, item.CartID, i, snapshot, item.Quantity, selections, item.ItemTotal); err != nil {
			return &domain.StorageError{Op: "insert order item", Err: err}
		}
	}

	if _, err := tx.ExecContext(ctx, `
INSERT INTO order_status_log (order_id, status, changed_by, changed_at)
VALUES ($1,$2,$3,now())
`, order.ID, string(order.Status), order.EmployeeEmail); err != nil {
		return &domain.StorageError{Op: "insert status log", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return &domain.StorageError{Op: "commit submit", Err: err}
	}
	return nil
}

const orderColumns = `id, employee_email, subtotal, discount_applied, final_total, status, buzzer_number, created_at`

func (r *OrderRepository) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1`, id)
	order, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Order{}, &domain.StorageError{Op: "get order", Err: err}
	}
	if err := r.loadItems(ctx, &order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]domain.Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at`)
}

func (r *OrderRepository) ListByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders WHERE status=$1 ORDER BY created_at`, string(status))
}

func (r *OrderRepository) ListByLocalDateRange(ctx context.Context, start, end string) ([]domain.Order, error) {
	// Compare local civil dates so an order at 23:30 local lands on its
	// local day even though its UTC date already rolled over.
	return r.list(ctx, `
SELECT `+orderColumns+` FROM orders
WHERE (created_at AT TIME ZONE '`+timewindow.Zone+`')::date BETWEEN $1::date AND $2::date
ORDER BY created_at
`, start, end)
}

func (r *OrderRepository) list(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &domain.StorageError{Op: "list orders", Err: err}
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, &domain.StorageError{Op: "scan order", Err: err}
		}
		out = append(out, order)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "list orders", Err: err}
	}
	for i := range out {
		if err := r.loadItems(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

type rowScanner interface{ Scan(dest ...any) error }

func scanOrder(row rowScanner) (domain.Order, error) {
	var (
		order  domain.Order
		status string
		buzzer sql.NullString
	)
	if err := row.Scan(&order.ID, &order.EmployeeEmail, &order.Subtotal, &order.DiscountApplied,
		&order.FinalTotal, &status, &buzzer, &order.CreatedAt); err != nil {
		return domain.Order{}, err
	}
	order.Status = domain.OrderStatus(status)
	if buzzer.Valid {
		order.BuzzerNumber = buzzer.String
	}
	return order, nil
}

func (r *OrderRepository) loadItems(ctx context.Context, order *domain.Order) error {
	rows, err := r.db.QueryContext(ctx, `
SELECT cart_id, menu_item, quantity, selections, item_total
FROM order_items WHERE order_id=$1 ORDER BY position
`, order.ID)
	if err != nil {
		return &domain.StorageError{Op: "load order items", Err: err}
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item          domain.CartItem
			snapshotRaw   []byte
			selectionsRaw []byte
		)
		if err := rows.Scan(&item.CartID, &snapshotRaw, &item.Quantity, &selectionsRaw, &item.ItemTotal); err != nil {
			return &domain.StorageError{Op: "scan order item", Err: err}
		}
		if err := json.Unmarshal(snapshotRaw, &item.MenuItem); err != nil {
			return fmt.Errorf("decode menu item snapshot for order %s: %w", order.ID, err)
		}
		if err := json.Unmarshal(selectionsRaw, &item.SelectedOptions); err != nil {
			return fmt.Errorf("decode selections for order %s: %w", order.ID, err)
		}
		order.Items = append(order.Items, item)
	}
	return rows.Err()
}
