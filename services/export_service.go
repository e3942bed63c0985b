package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/multierr"

	"undangan.link/models"
	"undangan.link/store"
)

// ExportVersion export belgesinin şema sürümü. Orijinal istemcinin yazdığı
// dosyalarla uyumludur.
const ExportVersion = "1.0.0"

// ExportDocument tüm dilimlerin kayıpsız dışa aktarım biçimi. Alan adları
// dosya sözleşmesinin parçasıdır; hem exportedAt hem lastUpdated kabul
// edilir (eski dosyalar lastUpdated yazar).
type ExportDocument struct {
	Version     string             `json:"version"`
	ExportedAt  string             `json:"exportedAt,omitempty"`
	LastUpdated string             `json:"lastUpdated,omitempty"`
	Data        models.WeddingData `json:"data"`
	Images      models.ImageSet    `json:"images"`
}

// ExportService dilimlerin dışa/içe aktarımını yapar. Canlı senkron
// yolunun dışındadır; dilim anahtarlarına doğrudan yazan tek istisnadır.
type ExportService struct {
	store *store.WeddingStore
}

// NewExportService yeni bir ExportService örneği oluşturur.
func NewExportService(w *store.WeddingStore) *ExportService {
	return &ExportService{store: w}
}

// Export tüm dilimlerin o anki değerinden belge üretir.
func (s *ExportService) Export() ExportDocument {
	return ExportDocument{
		Version:    ExportVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Data:       s.store.Aggregate(),
		Images:     s.store.Images.Get(),
	}
}

// ExportJSON belgeyi girintili JSON olarak serileştirir.
func (s *ExportService) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(s.Export(), "", "  ")
}

// Import belgedeki verileri dilimlere tam değiştirme ile uygular. Dilimler
// bağımsızdır: biri yazılamazsa diğerleri yine de uygulanır, hatalar
// birleştirilir.
func (s *ExportService) Import(ctx context.Context, doc ExportDocument) error {
	core := models.CoreContent{
		Couple: doc.Data.Couple,
		Date:   doc.Data.Date,
		Venue:  doc.Data.Venue,
		Theme:  doc.Data.Theme,
	}

	var err error
	err = multierr.Append(err, s.store.Core.Update(ctx, core))
	err = multierr.Append(err, s.store.Schedule.Update(ctx, doc.Data.Schedule))
	err = multierr.Append(err, s.store.Committee.Update(ctx, doc.Data.Committee))
	err = multierr.Append(err, s.store.Vendors.Update(ctx, doc.Data.Vendors))
	err = multierr.Append(err, s.store.Coordinators.Update(ctx, doc.Data.Coordinators))
	err = multierr.Append(err, s.store.Moodboard.Update(ctx, doc.Data.Moodboard))
	err = multierr.Append(err, s.store.EventSummary.Update(ctx, doc.Data.EventSummary))
	if doc.Images != nil {
		err = multierr.Append(err, s.store.Images.Update(ctx, doc.Images))
	}
	return err
}

// ImportJSON ham JSON belgesini çözüp uygular.
func (s *ExportService) ImportJSON(ctx context.Context, raw []byte) error {
	var doc ExportDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("export belgesi çözümlenemedi: %w", err)
	}
	return s.Import(ctx, doc)
}
