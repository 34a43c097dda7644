package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/hooknest/craftstock-service/internal/model"
	"github.com/hooknest/craftstock-service/internal/store"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Insert(ctx context.Context, link *model.MaterialLink) error {
	query := `
        INSERT INTO material_links (id, product_id, material_kind, material_id, quantity_used, created_at)
        VALUES (:id, :product_id, :material_kind, :material_id, :quantity_used, :created_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, link)
	return err
}

func (r *PGRepository) DeleteOne(ctx context.Context, productID string, kind model.MaterialKind, materialID string) (bool, error) {
	query := `
        DELETE FROM material_links
        WHERE id IN (
            SELECT id FROM material_links
            WHERE product_id = $1 AND material_kind = $2 AND material_id = $3
            ORDER BY created_at
            LIMIT 1
        )
    `
	return store.Exec(ctx, r.DB, query, productID, kind, materialID)
}

func (r *PGRepository) UpdateQuantity(ctx context.Context, productID string, kind model.MaterialKind, materialID string, quantity float64) (bool, error) {
	query := `
        UPDATE material_links SET quantity_used = $4
        WHERE product_id = $1 AND material_kind = $2 AND material_id = $3
    `
	return store.Exec(ctx, r.DB, query, productID, kind, materialID, quantity)
}

func (r *PGRepository) FindByProduct(ctx context.Context, productID string) ([]model.MaterialLink, error) {
	query := `SELECT * FROM material_links WHERE product_id = $1 ORDER BY created_at`
	return store.SelectAll[model.MaterialLink](ctx, r.DB, query, productID)
}

func (r *PGRepository) FindProductsUsing(ctx context.Context, kind model.MaterialKind, materialID string) ([]model.Product, error) {
	query := `
        SELECT DISTINCT p.* FROM products p
        JOIN material_links ml ON ml.product_id = p.id
        WHERE ml.material_kind = $1 AND ml.material_id = $2
        ORDER BY p.name
    `
	return store.SelectAll[model.Product](ctx, r.DB, query, kind, materialID)
}

func (r *PGRepository) SumQuantityUsed(ctx context.Context, materialID string) (float64, error) {
	var total float64
	err := r.DB.GetContext(ctx, &total,
		`SELECT COALESCE(SUM(quantity_used), 0) FROM material_links WHERE material_id = $1`,
		materialID,
	)
	return total, err
}
