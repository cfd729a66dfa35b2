package project

import "github.com/shopspring/decimal"

type CreateProjectRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Status      Status          `json:"status"`
	Budget      decimal.Decimal `json:"budget"`
	Department  string          `json:"department"`
	Manager     string          `json:"manager"`
	Team        []string        `json:"team"`
	StartDate   string          `json:"start_date"`
	EndDate     *string         `json:"end_date"`
}

// UpdateProjectRequest carries a partial update; nil fields are left
// untouched.
type UpdateProjectRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Status      *Status          `json:"status"`
	Budget      *decimal.Decimal `json:"budget"`
	Department  *string          `json:"department"`
	Manager     *string          `json:"manager"`
	Team        *[]string        `json:"team"`
	StartDate   *string          `json:"start_date"`
	EndDate     *string          `json:"end_date"`
}
