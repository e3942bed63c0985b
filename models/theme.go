package models

// WeddingTheme davetiye sayfasının görsel temasını tutar. Tek kayıttır,
// her güncellemede bütün olarak üzerine yazılır.
type WeddingTheme struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	FontFamily      string `json:"fontFamily"`
	BackgroundImage string `json:"backgroundImage"`
	AccentImage     string `json:"accentImage"`
}
