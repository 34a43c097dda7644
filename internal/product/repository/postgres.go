package repository

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hooknest/craftstock-service/internal/model"
	"github.com/hooknest/craftstock-service/internal/product/dto"
	"github.com/hooknest/craftstock-service/internal/store"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (id, name, hours_to_make, cost_to_make, sale_price, stock_count, created_at, updated_at)
        VALUES (:id, :name, :hours_to_make, :cost_to_make, :sale_price, :stock_count, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, error) {
	query := `SELECT * FROM products`
	args := []any{}

	if f.SearchQuery != "" {
		query += ` WHERE name ILIKE $1`
		args = append(args, "%"+f.SearchQuery+"%")
	}

	// Whitelist sort fields to keep them out of injection range
	orderBy := "name"
	switch f.SortBy {
	case "price":
		orderBy = "sale_price"
	case "hours":
		orderBy = "hours_to_make"
	case "stock":
		orderBy = "stock_count"
	}
	if strings.ToLower(f.SortOrder) == "desc" {
		orderBy += " DESC"
	}
	query += ` ORDER BY ` + orderBy

	return store.SelectAll[model.Product](ctx, r.DB, query, args...)
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	return store.GetOne[model.Product](ctx, r.DB, `SELECT * FROM products WHERE id = $1 LIMIT 1`, id)
}

// FindByName matches exactly. Existence checks and stock updates are the
// case-insensitive ones.
func (r *PGRepository) FindByName(ctx context.Context, name string) (*model.Product, error) {
	return store.GetOne[model.Product](ctx, r.DB, `SELECT * FROM products WHERE name = $1 LIMIT 1`, name)
}

func (r *PGRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT count(*) FROM products WHERE LOWER(name) = LOWER($1)`, name)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PGRepository) Update(ctx context.Context, p *model.Product, expectedUpdatedAt time.Time) (bool, error) {
	query := `
        UPDATE products
        SET name = $1,
            hours_to_make = $2,
            cost_to_make = $3,
            sale_price = $4,
            stock_count = $5,
            updated_at = $6
        WHERE id = $7 AND updated_at = $8
    `
	return store.Exec(ctx, r.DB, query,
		p.Name, p.HoursToMake, p.CostToMake, p.SalePrice, p.StockCount, p.UpdatedAt,
		p.ID, expectedUpdatedAt,
	)
}

func (r *PGRepository) UpdateStockByName(ctx context.Context, name string, stock int) (bool, error) {
	query := `UPDATE products SET stock_count = $1, updated_at = NOW() WHERE LOWER(name) = LOWER($2)`
	return store.Exec(ctx, r.DB, query, stock, name)
}

func (r *PGRepository) AdjustStock(ctx context.Context, id string, delta int) (bool, error) {
	query := `UPDATE products SET stock_count = stock_count + $1, updated_at = NOW() WHERE id = $2`
	return store.Exec(ctx, r.DB, query, delta, id)
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	return err
}
