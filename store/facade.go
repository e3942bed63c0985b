package store

import (
	"context"

	"go.uber.org/multierr"

	"undangan.link/models"
)

// Aggregate tüm dilimleri orijinal monolitik şekle birleştirir. Bağımsız
// durum tutmaz ve önbelleklemez: her çağrıda dilimlerin o anki değerinden
// yeniden hesaplanır, dolayısıyla dilimlerden sapamaz.
func (w *WeddingStore) Aggregate() models.WeddingData {
	core := w.Core.Get()
	return models.WeddingData{
		Couple:       core.Couple,
		Date:         core.Date,
		Venue:        core.Venue,
		Theme:        core.Theme,
		Schedule:     w.Schedule.Get(),
		Committee:    w.Committee.Get(),
		Vendors:      w.Vendors.Get(),
		Coordinators: w.Coordinators.Get(),
		Moodboard:    w.Moodboard.Get(),
		EventSummary: w.EventSummary.Get(),
	}
}

// ResetAll her dilimi kendi varsayılanına döndürür. Dilimler bağımsızdır;
// biri yazılamazsa diğerleri yine de resetlenir, hatalar birleştirilir.
func (w *WeddingStore) ResetAll(ctx context.Context) error {
	var err error
	err = multierr.Append(err, w.Core.ResetToDefault(ctx))
	err = multierr.Append(err, w.Schedule.ResetToDefault(ctx))
	err = multierr.Append(err, w.Committee.ResetToDefault(ctx))
	err = multierr.Append(err, w.Vendors.ResetToDefault(ctx))
	err = multierr.Append(err, w.Coordinators.ResetToDefault(ctx))
	err = multierr.Append(err, w.Moodboard.ResetToDefault(ctx))
	err = multierr.Append(err, w.EventSummary.ResetToDefault(ctx))
	return err
}
