package models

import "time"

// SliceRecord tek bir içerik diliminin kalıcı halidir: dilim anahtarı ve
// JSON gövdesi. İçerik dilimleri ilişkisel tablolara değil, anahtar başına
// tek JSON bloba yazılır.
type SliceRecord struct {
	Key       string    `gorm:"primaryKey;type:varchar(64)"`
	Value     []byte    `gorm:"type:jsonb;not null"`
	ByteSize  int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName GORM tablo adını sabitler.
func (SliceRecord) TableName() string { return "slice_records" }

// Dilim anahtarları. Kalıcı depo ve export belgesi bu adlarla çalışır;
// orijinal istemcinin yazdığı verilerle geriye dönük uyumludur.
const (
	SliceKeyCore         = "core"
	SliceKeySchedule     = "schedule"
	SliceKeyCommittee    = "committee"
	SliceKeyVendors      = "vendors"
	SliceKeyCoordinators = "coordinators"
	SliceKeyMoodboard    = "moodboard"
	SliceKeyEventSummary = "eventSummary"
	SliceKeyAuth         = "auth-storage"
	SliceKeyImages       = "wedding_images"
)
