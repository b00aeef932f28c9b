package models

import (
	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/ledger"
)

// Habit is a recurring practice with a date-keyed completion history.
// Category, Icon and BackgroundColor are copied from the chosen category at
// creation time and never refreshed.
type Habit struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Description     string              `json:"description"`
	Category        string              `json:"category"`
	Icon            string              `json:"icon"`
	BackgroundColor string              `json:"backgroundColor"`
	Frequency       constants.Frequency `json:"frequency"`
	StartDate       string              `json:"startDate"` // YYYY-MM-DD format
	History         ledger.Ledger       `json:"history"`
}

// ActiveOn reports whether the habit had started by the given day.
// Both dates are YYYY-MM-DD so lexical order is calendar order.
func (h Habit) ActiveOn(day string) bool {
	return h.StartDate != "" && h.StartDate <= day
}

// DoneOn reports whether the habit was completed on day.
func (h Habit) DoneOn(day string) bool {
	return h.History[day]
}
