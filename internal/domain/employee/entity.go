package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Position   string          `json:"position"`
	Department string          `json:"department"`
	Salary     decimal.Decimal `json:"salary"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Skills     []string        `json:"skills"`
	HireDate   time.Time       `json:"hire_date"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
