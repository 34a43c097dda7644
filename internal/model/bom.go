package model

import "time"

// MaterialLink ties a finished product to a quantity of one material, the
// material identified by its kind plus that kind's own row id. The
// referenced material is checked to exist at insert time only; nothing
// guards it afterwards.
type MaterialLink struct {
	ID           string       `db:"id" json:"id"`
	ProductID    string       `db:"product_id" json:"product_id"`
	MaterialKind MaterialKind `db:"material_kind" json:"material_kind"`
	MaterialID   string       `db:"material_id" json:"material_id"`
	QuantityUsed float64      `db:"quantity_used" json:"quantity_used"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
}
