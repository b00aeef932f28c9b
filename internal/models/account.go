package models

// UserAccount is the local profile of the single user
type UserAccount struct {
	Name       string  `json:"name"`
	Age        *string `json:"age"`
	DateJoined string  `json:"dateJoined"` // RFC3339
}
