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

func (r *PGRepository) Create(ctx context.Context, c *model.Customer) error {
	query := `
        INSERT INTO customers (id, name, phone, email, created_at, updated_at)
        VALUES (:id, :name, :phone, :email, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Customer, error) {
	return store.SelectAll[model.Customer](ctx, r.DB, `SELECT * FROM customers ORDER BY name`)
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	return store.GetOne[model.Customer](ctx, r.DB, `SELECT * FROM customers WHERE id = $1 LIMIT 1`, id)
}

// FindByName returns the oldest matching row when names collide.
func (r *PGRepository) FindByName(ctx context.Context, name string) (*model.Customer, error) {
	query := `SELECT * FROM customers WHERE name = $1 ORDER BY created_at LIMIT 1`
	return store.GetOne[model.Customer](ctx, r.DB, query, name)
}

func (r *PGRepository) Update(ctx context.Context, c *model.Customer) error {
	query := `
        UPDATE customers
        SET name = :name, phone = :phone, email = :email, updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *PGRepository) DeleteByName(ctx context.Context, name string) (*model.Customer, error) {
	// Only the first match goes; duplicates by name survive.
	query := `
        DELETE FROM customers
        WHERE id IN (SELECT id FROM customers WHERE name = $1 ORDER BY created_at LIMIT 1)
        RETURNING *
    `
	return store.GetOne[model.Customer](ctx, r.DB, query, name)
}
