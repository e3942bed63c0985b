package models

// Coordinator düğün günü koordinatörünü tutar.
type Coordinator struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
	Photo string `json:"photo,omitempty"`
}
