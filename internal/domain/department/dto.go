package department

import "github.com/shopspring/decimal"

type CreateDepartmentRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	Budget      decimal.Decimal `json:"budget"`
	Manager     *string         `json:"manager"`
}

// UpdateDepartmentRequest carries a partial update; nil fields are
// left untouched.
type UpdateDepartmentRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Location    *string          `json:"location"`
	Budget      *decimal.Decimal `json:"budget"`
	Manager     *string          `json:"manager"`
}
