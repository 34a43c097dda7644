package model

type Product struct {
	BaseModel
	Name        string  `db:"name" json:"name"`
	HoursToMake float64 `db:"hours_to_make" json:"hours_to_make"`
	CostToMake  float64 `db:"cost_to_make" json:"cost_to_make"`
	SalePrice   float64 `db:"sale_price" json:"sale_price"`
	StockCount  int     `db:"stock_count" json:"stock_count"`
}
