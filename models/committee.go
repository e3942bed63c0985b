package models

// CommitteeMember düğün komitesindeki bir üyeyi tutar.
// Liste sırası görüntüleme sırasıdır (ekleme sırası korunur).
type CommitteeMember struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Photo string `json:"photo"`
	Phone string `json:"phone"`
}
