package dto

type ProductFilters struct {
	SearchQuery string
	SortBy      string // name, price, hours, stock
	SortOrder   string // asc, desc
}
