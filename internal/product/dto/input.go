package dto

type CreateProductInput struct {
	Name        string  `json:"name"`
	HoursToMake float64 `json:"hours_to_make"`
	CostToMake  float64 `json:"cost_to_make"`
	SalePrice   float64 `json:"sale_price"`
	StockCount  int     `json:"stock_count"`
}

type UpdateProductInput struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	HoursToMake float64 `json:"hours_to_make"`
	CostToMake  float64 `json:"cost_to_make"`
	SalePrice   float64 `json:"sale_price"`
	StockCount  int     `json:"stock_count"`
}
