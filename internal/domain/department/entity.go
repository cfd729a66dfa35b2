package department

import (
	"time"

	"github.com/shopspring/decimal"
)

type Department struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	Budget      decimal.Decimal `json:"budget"`
	Manager     *string         `json:"manager,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
