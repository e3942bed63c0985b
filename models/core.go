package models

// CoreContent çift, tarih, mekan ve temayı tek dilimde toplar.
// Orijinal uygulamadaki "core" anahtarının birebir karşılığıdır.
type CoreContent struct {
	Couple Couple       `json:"couple"`
	Date   string       `json:"date"`
	Venue  Venue        `json:"venue"`
	Theme  WeddingTheme `json:"theme"`
}

// WeddingData tüm dilimlerin birleşik görünümüdür. Uyumluluk cephesi bu
// şekli her çağrıda dilimlerden yeniden üretir; bağımsız bir durumu yoktur.
type WeddingData struct {
	Couple       Couple            `json:"couple"`
	Date         string            `json:"date"`
	Venue        Venue             `json:"venue"`
	Theme        WeddingTheme      `json:"theme"`
	Schedule     []Event           `json:"schedule"`
	Committee    []CommitteeMember `json:"committee"`
	Vendors      []Vendor          `json:"vendors"`
	Coordinators []Coordinator     `json:"coordinators"`
	Moodboard    []MoodboardItem   `json:"moodboard"`
	EventSummary EventSummary      `json:"eventSummary"`
}
