package repository

import (
	"context"
	"fmt"
	"time"

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

func (r *PGRepository) CreateWithLines(ctx context.Context, o *model.Order, lines []model.OrderLine, facts []model.PurchaseFact) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Header goes in with a zero total; the real total lands as the last
	// write, mirroring the running-sum flow but inside one transaction.
	header := *o
	header.TotalPrice = 0
	insertOrder := `
        INSERT INTO orders (id, customer_id, order_date, payment_method, total_price, created_at, updated_at)
        VALUES (:id, :customer_id, :order_date, :payment_method, :total_price, :created_at, :updated_at)
    `
	if _, err := tx.NamedExecContext(ctx, insertOrder, &header); err != nil {
		return fmt.Errorf("failed to insert order header: %w", err)
	}

	insertLine := `
        INSERT INTO order_lines (id, order_id, product_id, quantity)
        VALUES (:id, :order_id, :product_id, :quantity)
    `
	for i := range lines {
		if _, err := tx.NamedExecContext(ctx, insertLine, &lines[i]); err != nil {
			return fmt.Errorf("failed to insert order line: %w", err)
		}
	}

	insertFact := `
        INSERT INTO purchase_facts (id, customer_id, product_id, created_at)
        VALUES (:id, :customer_id, :product_id, :created_at)
    `
	for i := range facts {
		if _, err := tx.NamedExecContext(ctx, insertFact, &facts[i]); err != nil {
			return fmt.Errorf("failed to insert purchase fact: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE orders SET total_price = $1, updated_at = $2 WHERE id = $3`,
		o.TotalPrice, o.UpdatedAt, o.ID,
	); err != nil {
		return fmt.Errorf("failed to set order total: %w", err)
	}

	return tx.Commit()
}

func (r *PGRepository) FindByCustomerAndDate(ctx context.Context, customerID string, date time.Time) (*model.Order, error) {
	query := `
        SELECT * FROM orders
        WHERE customer_id = $1 AND order_date = $2
        ORDER BY created_at
        LIMIT 1
    `
	return store.GetOne[model.Order](ctx, r.DB, query, customerID, date)
}

func (r *PGRepository) FindAllByCustomer(ctx context.Context, customerID string) ([]model.Order, error) {
	query := `SELECT * FROM orders WHERE customer_id = $1 ORDER BY order_date DESC`
	return store.SelectAll[model.Order](ctx, r.DB, query, customerID)
}

func (r *PGRepository) FindLines(ctx context.Context, orderID string) ([]model.OrderLine, error) {
	return store.SelectAll[model.OrderLine](ctx, r.DB, `SELECT * FROM order_lines WHERE order_id = $1`, orderID)
}

func (r *PGRepository) FindPurchasesByCustomer(ctx context.Context, customerID string) ([]model.PurchaseFact, error) {
	query := `SELECT * FROM purchase_facts WHERE customer_id = $1 ORDER BY created_at`
	return store.SelectAll[model.PurchaseFact](ctx, r.DB, query, customerID)
}

func (r *PGRepository) DeleteCascade(ctx context.Context, o *model.Order, lines []model.OrderLine) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Facts have no order id: delete one per line by (customer, product)
	// and accept that a fact written by another order may be the casualty.
	deleteFact := `
        DELETE FROM purchase_facts
        WHERE id IN (
            SELECT id FROM purchase_facts
            WHERE customer_id = $1 AND product_id = $2
            ORDER BY created_at
            LIMIT 1
        )
    `
	for _, line := range lines {
		if _, err := tx.ExecContext(ctx, deleteFact, o.CustomerID, line.ProductID); err != nil {
			return fmt.Errorf("failed to delete purchase fact: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM order_lines WHERE order_id = $1`, o.ID); err != nil {
		return fmt.Errorf("failed to delete order lines: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, o.ID); err != nil {
		return fmt.Errorf("failed to delete order header: %w", err)
	}

	return tx.Commit()
}
