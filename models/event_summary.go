package models

// EventSummary etkinlik özet kartının tekil kaydıdır. Düğün tarihi burada
// değil core dilimindedir; gösterim tarafı ikisini birleştirir.
type EventSummary struct {
	Date                  string `json:"date,omitempty"`
	Place                 string `json:"place"`
	EventType             string `json:"eventType"`
	CeremonyTime          string `json:"ceremonyTime"`
	ReceptionTime         string `json:"receptionTime"`
	CeremonyGuests        string `json:"ceremonyGuests"`
	CeremonyGuestsDetail  string `json:"ceremonyGuestsDetail"`
	ReceptionGuests       string `json:"receptionGuests"`
	ChurchStaffSouvenir   string `json:"churchStaffSouvenir"`
	ChurchStaffNote       string `json:"churchStaffNote"`
	ReceptionSouvenir     string `json:"receptionSouvenir"`
	ReceptionSouvenirNote string `json:"receptionSouvenirNote"`
}
