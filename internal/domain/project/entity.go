package project

import (
	"time"

	"github.com/shopspring/decimal"
)

type Project struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Status      Status          `json:"status"`
	Budget      decimal.Decimal `json:"budget"`
	Department  string          `json:"department"`
	Manager     string          `json:"manager"`
	Team        []string        `json:"team"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     *time.Time      `json:"end_date,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type Status string

const (
	StatusPlanned    Status = "Planned"
	StatusInProgress Status = "InProgress"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the project may be deleted. Only
// Completed and Cancelled projects are deletable.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}
