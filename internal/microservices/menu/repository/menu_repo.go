package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"patio-system/internal/domain"
)

type MenuRepositoryInterface interface {
	ListMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (domain.MenuItem, error)
	SaveMenuItem(ctx context.Context, item domain.MenuItem) error
	DeleteMenuItem(ctx context.Context, id string) error
	SetSoldOut(ctx context.Context, id string, soldOut bool) error
	CountMenuItems(ctx context.Context) (int, error)

	ListAddons(ctx context.Context) ([]domain.GlobalAddon, error)
	SaveAddon(ctx context.Context, addon domain.GlobalAddon) error
	DeleteAddon(ctx context.Context, id string) error

	ReplaceCatalog(ctx context.Context, items []domain.MenuItem, addons []domain.GlobalAddon) error
}

type MenuRepository struct {
	db *sql.DB
}

func NewMenuRepository(db *sql.DB) MenuRepositoryInterface {
	return &MenuRepository{db: db}
}

func (r *MenuRepository) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, description, base_price, category, available_day, options, sold_out
FROM menu_items
ORDER BY category, name
`)
	if err != nil {
		return nil, &domain.StorageError{Op: "list menu items", Err: err}
	}
	defer rows.Close()

	var out []domain.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, &domain.StorageError{Op: "scan menu item", Err: err}
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *MenuRepository) GetMenuItem(ctx context.Context, id string) (domain.MenuItem, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, name, description, base_price, category, available_day, options, sold_out
FROM menu_items WHERE id=$1
`, id)
	item, err := scanMenuItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.MenuItem{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.MenuItem{}, &domain.StorageError{Op: "get menu item", Err: err}
	}
	return item, nil
}

type rowScanner interface{ Scan(dest ...any) error }

func scanMenuItem(row rowScanner) (domain.MenuItem, error) {
	var (
		item       domain.MenuItem
		day        sql.NullInt32
		optionsRaw []byte
	)
	if err := row.Scan(&item.ID, &item.Name, &item.Description, &item.BasePrice,
		&item.Category, &day, &optionsRaw, &item.SoldOut); err != nil {
		return domain.MenuItem{}, err
	}
	if day.Valid {
		d := int(day.Int32)
		item.AvailableDay = &d
	}
	if len(optionsRaw) > 0 {
		if err := json.Unmarshal(optionsRaw, &item.Options); err != nil {
			return domain.MenuItem{}, fmt.Errorf("decode options for %s: %w", item.ID, err)
		}
	}
	return item, nil
}

func (r *MenuRepository) SaveMenuItem(ctx context.Context, item domain.MenuItem) error {
	optionsRaw, err := json.Marshal(item.Options)
	if err != nil {
		return fmt.Errorf("encode options for %s: %w", item.ID, err)
	}
	var day any
	if item.AvailableDay != nil {
		day = *item.AvailableDay
	}
	_, err = r.db.ExecContext(ctx, `
INSERT INTO menu_items (id, name, description, base_price, category, available_day, options, sold_out, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,now(),now())
ON CONFLICT (id) DO UPDATE SET
  name = EXCLUDED.name,
  description = EXCLUDED.description,
  base_price = EXCLUDED.base_price,
  category = EXCLUDED.category,
  available_day = EXCLUDED.available_day,
  options = EXCLUDED.options,
  sold_out = EXCLUDED.sold_out,
  updated_at = now()
`, item.ID, item.Name, item.Description, item.BasePrice, item.Category, day, optionsRaw, item.SoldOut)
	if err != nil {
		return &domain.StorageError{Op: "save menu item", Err: err}
	}
	return nil
}

func (r *MenuRepository) DeleteMenuItem(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id=$1`, id)
	if err != nil {
		return &domain.StorageError{Op: "delete menu item", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MenuRepository) SetSoldOut(ctx context.Context, id string, soldOut bool) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE menu_items SET sold_out=$2, updated_at=now() WHERE id=$1
`, id, soldOut)
	if err != nil {
		return &domain.StorageError{Op: "set sold out", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MenuRepository) CountMenuItems(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&n); err != nil {
		return 0, &domain.StorageError{Op: "count menu items", Err: err}
	}
	return n, nil
}

func (r *MenuRepository) ListAddons(ctx context.Context) ([]domain.GlobalAddon, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, price FROM global_addons ORDER BY name`)
	if err != nil {
		return nil, &domain.StorageError{Op: "list addons", Err: err}
	}
	defer rows.Close()

	var out []domain.GlobalAddon
	for rows.Next() {
		var a domain.GlobalAddon
		var price decimal.Decimal
		if err := rows.Scan(&a.ID, &a.Name, &price); err != nil {
			return nil, &domain.StorageError{Op: "scan addon", Err: err}
		}
		a.Price = price
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *MenuRepository) SaveAddon(ctx context.Context, addon domain.GlobalAddon) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO global_addons (id, name, price, created_at)
VALUES ($1,$2,$3,now())
ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name, price=EXCLUDED.price
`, addon.ID, addon.Name, addon.Price)
	if err != nil {
		return &domain.StorageError{Op: "save addon", Err: err}
	}
	return nil
}

func (r *MenuRepository) DeleteAddon(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM global_addons WHERE id=$1`, id)
	if err != nil {
		return &domain.StorageError{Op: "delete addon", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ReplaceCatalog wipes the catalog and installs the given items and add-ons
// in one transaction. Used by seeding and the admin reset.
func (r *MenuRepository) ReplaceCatalog(ctx context.Context, items []domain.MenuItem, addons []domain.GlobalAddon) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return &domain.StorageError{Op: "begin replace catalog", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM menu_items`); err != nil {
		return &domain.StorageError{Op: "clear menu items", Err: err}
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM global_addons`); err != nil {
		return &domain.StorageError{Op: "clear addons", Err: err}
	}

	for _, item := range items {
		optionsRaw, err := json.Marshal(item.Options)
		if err != nil {
			return fmt.Errorf("encode options for %s: %w", item.ID, err)
		}
		var day any
		if item.AvailableDay != nil {
			day = *item.AvailableDay
		}
		if _, err := tx.ExecContext(ctx, `
INSERT INTO menu_items (id, name, description, base_price, category, available_day, options, sold_out, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,now(),now())
`, item.ID, item.Name, item.Description, item.BasePrice, item.Category, day, optionsRaw, item.SoldOut); err != nil {
			return &domain.StorageError{Op: "insert menu item " + item.ID, Err: err}
		}
	}
	for _, a := range addons {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO global_addons (id, name, price, created_at) VALUES ($1,$2,$3,now())
`, a.ID, a.Name, a.Price); err != nil {
			return &domain.StorageError{Op: "insert addon " + a.ID, Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &domain.StorageError{Op: "commit replace catalog", Err: err}
	}
	return nil
}
