package employee

import "github.com/shopspring/decimal"

type CreateEmployeeRequest struct {
	Name       string          `json:"name"`
	Position   string          `json:"position"`
	Department string          `json:"department"`
	Salary     decimal.Decimal `json:"salary"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Skills     []string        `json:"skills"`
	HireDate   string          `json:"hire_date"`
}

// UpdateEmployeeRequest carries a partial update; nil fields are left
// untouched.
type UpdateEmployeeRequest struct {
	Name       *string          `json:"name"`
	Position   *string          `json:"position"`
	Department *string          `json:"department"`
	Salary     *decimal.Decimal `json:"salary"`
	Email      *string          `json:"email"`
	Phone      *string          `json:"phone"`
	Skills     *[]string        `json:"skills"`
	HireDate   *string          `json:"hire_date"`
}

type SearchFilter struct {
	Name       string
	Department string
	Position   string
}
