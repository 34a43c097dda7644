package model

// PlaceholderContact fills phone/email for customers created implicitly
// through the order workflow.
const PlaceholderContact = "unknown"

type Customer struct {
	BaseModel
	Name  string `db:"name" json:"name"`
	Phone string `db:"phone" json:"phone"`
	Email string `db:"email" json:"email"`
}
