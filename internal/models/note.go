package models

// Note is a journal entry for a single day
type Note struct {
	ID      string `json:"id"`
	Heading string `json:"heading"`
	Body    string `json:"body"`
	Date    string `json:"date"` // YYYY-MM-DD format
}
