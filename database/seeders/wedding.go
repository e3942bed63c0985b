package seeders

import (
	"encoding/json"
	"errors"

	"undangan.link/configs/configslog"
	"undangan.link/defaults"
	"undangan.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedWeddingContent varsayılan davetiye içeriğini dilim tablosuna yazar.
// Zaten dolu olan anahtarlara dokunulmaz; seeder tekrar tekrar güvenle
// çalıştırılabilir.
func SeedWeddingContent(db *gorm.DB) error {
	slicesToSeed := []struct {
		key   string
		value any
	}{
		{models.SliceKeyCore, defaults.Core},
		{models.SliceKeySchedule, defaults.Schedule},
		{models.SliceKeyCommittee, defaults.Committee},
		{models.SliceKeyVendors, defaults.Vendors},
		{models.SliceKeyCoordinators, defaults.Coordinators},
		{models.SliceKeyMoodboard, defaults.Moodboard},
		{models.SliceKeyEventSummary, defaults.EventSummary},
	}

	var createdCount int64 = 0
	var errorOccurred bool = false

	configslog.SLog.Info("Davetiye içeriği seed işlemi başlıyor...")

	for _, slice := range slicesToSeed {
		var existing models.SliceRecord
		result := db.Where("key = ?", slice.key).First(&existing)

		if result.Error == nil {
			configslog.SLog.Debugf("Dilim '%s' zaten mevcut, oluşturma atlanıyor.", slice.key)
			continue
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Dilim kontrol edilirken veritabanı hatası",
				zap.String("slice_key", slice.key),
				zap.Error(result.Error),
			)
			errorOccurred = true
			continue
		}

		raw, err := json.Marshal(slice.value)
		if err != nil {
			configslog.Log.Error("Varsayılan içerik serileştirilemedi",
				zap.String("slice_key", slice.key),
				zap.Error(err),
			)
			errorOccurred = true
			continue
		}

		configslog.SLog.Infof("Dilim '%s' oluşturuluyor...", slice.key)

		record := models.SliceRecord{Key: slice.key, Value: raw, ByteSize: len(raw)}
		if err := db.Create(&record).Error; err != nil {
			configslog.Log.Error("Dilim oluşturulamadı",
				zap.String("slice_key", slice.key),
				zap.Error(err),
			)
			errorOccurred = true
			continue
		}

		configslog.SLog.Infof("Dilim '%s' başarıyla oluşturuldu (%d bayt).", slice.key, len(raw))
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d adet dilim başarıyla seed edildi.", createdCount)
	} else if !errorOccurred {
		configslog.SLog.Info("Tüm dilimler zaten mevcut, yeni ekleme yapılmadı.")
	}

	if errorOccurred {
		return errors.New("davetiye içeriği seed edilirken en az bir hata oluştu")
	}

	configslog.SLog.Info("Davetiye içeriği seed işlemi başarıyla tamamlandı.")
	return nil
}
