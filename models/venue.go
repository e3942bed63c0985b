package models

// Venue düğün mekanı bilgilerini tutar.
// MapPreviewURL, MapURL'den türetilen bir değerdir: MapURL her değiştiğinde
// yeniden hesaplanmalıdır, aksi halde bayat kabul edilir.
type Venue struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	MapURL        string `json:"mapUrl"`
	Directions    string `json:"directions"`
	Photo         string `json:"photo"`
	MapPreviewURL string `json:"mapPreviewUrl,omitempty"`
}
