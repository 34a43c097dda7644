package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/hooknest/craftstock-service/internal/material/dto"
	"github.com/hooknest/craftstock-service/internal/model"
	"github.com/hooknest/craftstock-service/internal/store"
)

// sizeMatch keeps safety-eye size comparisons within dto.SizeEpsilon.
// Sizes are fractional mm, so exact float equality would miss rows.
const sizeMatch = `ABS(size_mm - $1) < 0.0001`

type YarnPGRepository struct {
	DB *sqlx.DB
}

func NewYarnPGRepository(db *sqlx.DB) *YarnPGRepository {
	return &YarnPGRepository{DB: db}
}

func (r *YarnPGRepository) Create(ctx context.Context, y *model.Yarn) error {
	query := `
        INSERT INTO yarn (id, brand, fiber_type, weight, color, skeins_owned, price_per_skein, created_at, updated_at)
        VALUES (:id, :brand, :fiber_type, :weight, :color, :skeins_owned, :price_per_skein, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, y)
	return err
}

func (r *YarnPGRepository) FindAll(ctx context.Context, sortBy string) ([]model.Yarn, error) {
	// Whitelist sort fields to keep them out of injection range
	orderBy := "brand, color"
	switch sortBy {
	case "color":
		orderBy = "color"
	case "skeins":
		orderBy = "skeins_owned DESC"
	case "price":
		orderBy = "price_per_skein"
	}
	return store.SelectAll[model.Yarn](ctx, r.DB, `SELECT * FROM yarn ORDER BY `+orderBy)
}

func (r *YarnPGRepository) FindByID(ctx context.Context, id string) (*model.Yarn, error) {
	return store.GetOne[model.Yarn](ctx, r.DB, `SELECT * FROM yarn WHERE id = $1 LIMIT 1`, id)
}

func (r *YarnPGRepository) FindByKey(ctx context.Context, key dto.YarnKey) (*model.Yarn, error) {
	query := `
        SELECT * FROM yarn
        WHERE brand = $1 AND fiber_type = $2 AND weight = $3 AND color = $4
        LIMIT 1
    `
	return store.GetOne[model.Yarn](ctx, r.DB, query, key.Brand, key.FiberType, key.Weight, key.Color)
}

func (r *YarnPGRepository) Update(ctx context.Context, y *model.Yarn) error {
	query := `
        UPDATE yarn
        SET brand = :brand,
            fiber_type = :fiber_type,
            weight = :weight,
            color = :color,
            skeins_owned = :skeins_owned,
            price_per_skein = :price_per_skein,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, y)
	return err
}

func (r *YarnPGRepository) UpdateQuantity(ctx context.Context, key dto.YarnKey, skeins float64) (bool, error) {
	query := `
        UPDATE yarn SET skeins_owned = $1, updated_at = NOW()
        WHERE brand = $2 AND fiber_type = $3 AND weight = $4 AND color = $5
    `
	return store.Exec(ctx, r.DB, query, skeins, key.Brand, key.FiberType, key.Weight, key.Color)
}

func (r *YarnPGRepository) DeleteByKey(ctx context.Context, key dto.YarnKey) (*model.Yarn, error) {
	query := `
        DELETE FROM yarn
        WHERE brand = $1 AND fiber_type = $2 AND weight = $3 AND color = $4
        RETURNING *
    `
	return store.GetOne[model.Yarn](ctx, r.DB, query, key.Brand, key.FiberType, key.Weight, key.Color)
}

func (r *YarnPGRepository) ListBrands(ctx context.Context) ([]string, error) {
	var brands []string
	err := r.DB.SelectContext(ctx, &brands, `SELECT DISTINCT brand FROM yarn ORDER BY brand`)
	return brands, err
}

type SafetyEyesPGRepository struct {
	DB *sqlx.DB
}

func NewSafetyEyesPGRepository(db *sqlx.DB) *SafetyEyesPGRepository {
	return &SafetyEyesPGRepository{DB: db}
}

func (r *SafetyEyesPGRepository) Create(ctx context.Context, e *model.SafetyEyes) error {
	query := `
        INSERT INTO safety_eyes (id, size_mm, color, shape, pairs_owned, price_per_pair, created_at, updated_at)
        VALUES (:id, :size_mm, :color, :shape, :pairs_owned, :price_per_pair, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, e)
	return err
}

func (r *SafetyEyesPGRepository) FindAll(ctx context.Context, sortBy string) ([]model.SafetyEyes, error) {
	orderBy := "size_mm, color"
	switch sortBy {
	case "color":
		orderBy = "color"
	case "pairs":
		orderBy = "pairs_owned DESC"
	case "price":
		orderBy = "price_per_pair"
	}
	return store.SelectAll[model.SafetyEyes](ctx, r.DB, `SELECT * FROM safety_eyes ORDER BY `+orderBy)
}

func (r *SafetyEyesPGRepository) FindByID(ctx context.Context, id string) (*model.SafetyEyes, error) {
	return store.GetOne[model.SafetyEyes](ctx, r.DB, `SELECT * FROM safety_eyes WHERE id = $1 LIMIT 1`, id)
}

func (r *SafetyEyesPGRepository) FindByKey(ctx context.Context, key dto.SafetyEyesKey) (*model.SafetyEyes, error) {
	query := `
        SELECT * FROM safety_eyes
        WHERE ` + sizeMatch + ` AND color = $2 AND shape = $3
        LIMIT 1
    `
	return store.GetOne[model.SafetyEyes](ctx, r.DB, query, key.SizeMM, key.Color, key.Shape)
}

func (r *SafetyEyesPGRepository) Update(ctx context.Context, e *model.SafetyEyes) error {
	query := `
        UPDATE safety_eyes
        SET size_mm = :size_mm,
            color = :color,
            shape = :shape,
            pairs_owned = :pairs_owned,
            price_per_pair = :price_per_pair,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, e)
	return err
}

func (r *SafetyEyesPGRepository) UpdateQuantity(ctx context.Context, key dto.SafetyEyesKey, pairs float64) (bool, error) {
	query := `
        UPDATE safety_eyes SET pairs_owned = $4, updated_at = NOW()
        WHERE ` + sizeMatch + ` AND color = $2 AND shape = $3
    `
	return store.Exec(ctx, r.DB, query, key.SizeMM, key.Color, key.Shape, pairs)
}

func (r *SafetyEyesPGRepository) DeleteByKey(ctx context.Context, key dto.SafetyEyesKey) (*model.SafetyEyes, error) {
	query := `
        DELETE FROM safety_eyes
        WHERE ` + sizeMatch + ` AND color = $2 AND shape = $3
        RETURNING *
    `
	return store.GetOne[model.SafetyEyes](ctx, r.DB, query, key.SizeMM, key.Color, key.Shape)
}

type StuffingPGRepository struct {
	DB *sqlx.DB
}

func NewStuffingPGRepository(db *sqlx.DB) *StuffingPGRepository {
	return &StuffingPGRepository{DB: db}
}

func (r *StuffingPGRepository) Create(ctx context.Context, s *model.Stuffing) error {
	query := `
        INSERT INTO stuffing (id, brand, fill_type, ounces_owned, price_per_ounce, created_at, updated_at)
        VALUES (:id, :brand, :fill_type, :ounces_owned, :price_per_ounce, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return err
}

func (r *StuffingPGRepository) FindAll(ctx context.Context, sortBy string) ([]model.Stuffing, error) {
	orderBy := "brand, fill_type"
	switch sortBy {
	case "ounces":
		orderBy = "ounces_owned DESC"
	case "price":
		orderBy = "price_per_ounce"
	}
	return store.SelectAll[model.Stuffing](ctx, r.DB, `SELECT * FROM stuffing ORDER BY `+orderBy)
}

func (r *StuffingPGRepository) FindByID(ctx context.Context, id string) (*model.Stuffing, error) {
	return store.GetOne[model.Stuffing](ctx, r.DB, `SELECT * FROM stuffing WHERE id = $1 LIMIT 1`, id)
}

func (r *StuffingPGRepository) FindByKey(ctx context.Context, key dto.StuffingKey) (*model.Stuffing, error) {
	query := `SELECT * FROM stuffing WHERE brand = $1 AND fill_type = $2 LIMIT 1`
	return store.GetOne[model.Stuffing](ctx, r.DB, query, key.Brand, key.FillType)
}

func (r *StuffingPGRepository) Update(ctx context.Context, s *model.Stuffing) error {
	query := `
        UPDATE stuffing
        SET brand = :brand,
            fill_type = :fill_type,
            ounces_owned = :ounces_owned,
            price_per_ounce = :price_per_ounce,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return err
}

func (r *StuffingPGRepository) UpdateQuantity(ctx context.Context, key dto.StuffingKey, ounces float64) (bool, error) {
	query := `
        UPDATE stuffing SET ounces_owned = $1, updated_at = NOW()
        WHERE brand = $2 AND fill_type = $3
    `
	return store.Exec(ctx, r.DB, query, ounces, key.Brand, key.FillType)
}

func (r *StuffingPGRepository) DeleteByKey(ctx context.Context, key dto.StuffingKey) (*model.Stuffing, error) {
	query := `DELETE FROM stuffing WHERE brand = $1 AND fill_type = $2 RETURNING *`
	return store.GetOne[model.Stuffing](ctx, r.DB, query, key.Brand, key.FillType)
}
