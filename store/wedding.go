package store

import (
	"context"

	"undangan.link/defaults"
	"undangan.link/models"
	"undangan.link/pkg/mappreview"
	"undangan.link/repositories"
)

// StoreError mağaza katmanının özel hata tipi.
type StoreError string

func (e StoreError) Error() string { return string(e) }

const (
	ErrVendorNotFound   StoreError = "tedarikçi bulunamadı"
	ErrDetailOutOfRange StoreError = "detay sırası liste dışında"
	ErrDetailCannotMove StoreError = "detay bu yönde taşınamaz"
)

// WeddingStore tüm içerik dilimlerini bir arada tutar. Uygulama başında
// bir kez kurulur ve referansla taşınır; paket seviyesinde singleton yoktur,
// testler izole örnekler kurabilir.
type WeddingStore struct {
	Core         *Slice[models.CoreContent]
	Schedule     *Slice[[]models.Event]
	Committee    *Slice[[]models.CommitteeMember]
	Vendors      *Slice[[]models.Vendor]
	Coordinators *Slice[[]models.Coordinator]
	Moodboard    *Slice[[]models.MoodboardItem]
	EventSummary *Slice[models.EventSummary]
	Images       *Slice[models.ImageSet]
}

// NewWeddingStore dilimleri kalıcı depodan yükleyerek mağazayı kurar.
func NewWeddingStore(repo repositories.ISliceRepository) *WeddingStore {
	return &WeddingStore{
		Core:         NewSlice(repo, models.SliceKeyCore, defaults.Core),
		Schedule:     NewSlice(repo, models.SliceKeySchedule, defaults.Schedule),
		Committee:    NewSlice(repo, models.SliceKeyCommittee, defaults.Committee),
		Vendors:      NewSlice(repo, models.SliceKeyVendors, defaults.Vendors),
		Coordinators: NewSlice(repo, models.SliceKeyCoordinators, defaults.Coordinators),
		Moodboard:    NewSlice(repo, models.SliceKeyMoodboard, defaults.Moodboard),
		EventSummary: NewSlice(repo, models.SliceKeyEventSummary, defaults.EventSummary),
		Images:       NewSlice(repo, models.SliceKeyImages, models.ImageSet{}),
	}
}

// --- Core dilimi güncellemeleri ---
// Core tek dilimdir (couple + date + venue + theme); alan güncellemeleri
// dilimin güncel halini okuyup ilgili alanı değiştirerek bütünü yazar.

// UpdateCouple çift bilgisini bütün olarak değiştirir.
func (w *WeddingStore) UpdateCouple(ctx context.Context, couple models.Couple) error {
	core := w.Core.Get()
	core.Couple = couple
	return w.Core.Update(ctx, core)
}

// UpdateDate düğün tarihini değiştirir.
func (w *WeddingStore) UpdateDate(ctx context.Context, date string) error {
	core := w.Core.Get()
	core.Date = date
	return w.Core.Update(ctx, core)
}

// UpdateVenue mekanı değiştirir. MapPreviewURL türetilmiş bir alandır:
// gönderilen değer ne olursa olsun MapURL'den yeniden hesaplanır, böylece
// önceki mekanın önizlemesi asla taşınmaz.
func (w *WeddingStore) UpdateVenue(ctx context.Context, venue models.Venue) error {
	venue.MapPreviewURL = mappreview.FromMapURL(venue.MapURL)
	core := w.Core.Get()
	core.Venue = venue
	return w.Core.Update(ctx, core)
}

// UpdateTheme temayı bütün olarak değiştirir.
func (w *WeddingStore) UpdateTheme(ctx context.Context, theme models.WeddingTheme) error {
	core := w.Core.Get()
	core.Theme = theme
	return w.Core.Update(ctx, core)
}

// --- Liste dilimleri ---

// UpdateSchedule programı bütün olarak değiştirir.
func (w *WeddingStore) UpdateSchedule(ctx context.Context, schedule []models.Event) error {
	return w.Schedule.Update(ctx, schedule)
}

// UpdateCommittee komiteyi bütün olarak değiştirir.
func (w *WeddingStore) UpdateCommittee(ctx context.Context, committee []models.CommitteeMember) error {
	return w.Committee.Update(ctx, committee)
}

// UpdateVendors tedarikçi listesini bütün olarak değiştirir.
func (w *WeddingStore) UpdateVendors(ctx context.Context, vendors []models.Vendor) error {
	return w.Vendors.Update(ctx, vendors)
}

// UpdateCoordinators koordinatörleri bütün olarak değiştirir.
func (w *WeddingStore) UpdateCoordinators(ctx context.Context, coordinators []models.Coordinator) error {
	return w.Coordinators.Update(ctx, coordinators)
}

// UpdateMoodboard ilham panosunu bütün olarak değiştirir.
func (w *WeddingStore) UpdateMoodboard(ctx context.Context, moodboard []models.MoodboardItem) error {
	return w.Moodboard.Update(ctx, moodboard)
}

// UpdateEventSummary etkinlik özetini bütün olarak değiştirir.
func (w *WeddingStore) UpdateEventSummary(ctx context.Context, summary models.EventSummary) error {
	return w.EventSummary.Update(ctx, summary)
}

// MoveVendorDetail bir tedarikçinin detay satırını bir pozisyon yukarı
// (up=true) veya aşağı taşır ve listeyi bütün olarak yazar. Sıra,
// düzenlemeler boyunca korunan görüntüleme sırasıdır.
func (w *WeddingStore) MoveVendorDetail(ctx context.Context, vendorID string, index int, up bool) error {
	vendors := w.Vendors.Get()

	updated := make([]models.Vendor, len(vendors))
	copy(updated, vendors)

	for i := range updated {
		if updated[i].ID != vendorID {
			continue
		}
		details := updated[i].Details
		if index < 0 || index >= len(details) {
			return ErrDetailOutOfRange
		}
		target := index - 1
		if !up {
			target = index + 1
		}
		if target < 0 || target >= len(details) {
			return ErrDetailCannotMove
		}

		reordered := make([]string, len(details))
		copy(reordered, details)
		reordered[index], reordered[target] = reordered[target], reordered[index]
		updated[i].Details = reordered

		return w.Vendors.Update(ctx, updated)
	}
	return ErrVendorNotFound
}
