package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"undangan.link/configs/configslog"
	"undangan.link/models"
)

// Depolama katmanı sentinel hataları.
var (
	// ErrNotFound anahtar için kayıt bulunamadığında döner.
	ErrNotFound = errors.New("dilim kaydı bulunamadı")
	// ErrQuotaExceeded serileştirilen gövde sert limiti aştığında döner.
	// Bellekteki değer güncel kalır ama yazma reddedilir; değişiklik bir
	// sonraki açılışta kaybolur.
	ErrQuotaExceeded = errors.New("dilim gövdesi boyut limitini aşıyor, kalıcı yazma reddedildi")
)

// Yazma kabul politikası eşikleri (serileştirilmiş bayt uzunluğu).
// Büyük base64 görsellerin JSON içine gömülmesine karşı kaba bir korumadır.
const (
	SoftLimitBytes = 500_000   // üzeri: yaz ama uyar
	HardLimitBytes = 1_000_000 // üzeri: yazmayı reddet
)

// ISliceRepository içerik dilimlerinin anahtar-değer kalıcılığı için arayüz.
type ISliceRepository interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// SliceRepository ISliceRepository arayüzünü GORM üzerinde uygular.
type SliceRepository struct {
	db *gorm.DB
}

// NewSliceRepository yeni bir SliceRepository örneği oluşturur.
func NewSliceRepository(db *gorm.DB) ISliceRepository {
	return &SliceRepository{db: db}
}

// Load anahtara ait JSON gövdesini okur. Kayıt yoksa ErrNotFound döner.
func (r *SliceRepository) Load(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("geçersiz dilim anahtarı")
	}
	var record models.SliceRecord
	err := r.db.WithContext(ctx).First(&record, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("SliceRepository.Load: DB hatası", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return record.Value, nil
}

// Save gövdeyi üç kademeli kabul politikasından geçirip anahtara yazar:
// soft limite kadar normal yazma, soft-hard arası uyarı ile yazma,
// hard limit üzeri ErrQuotaExceeded ile red.
func (r *SliceRepository) Save(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.New("geçersiz dilim anahtarı")
	}

	size := len(value)
	switch {
	case size > HardLimitBytes:
		configslog.Log.Error("Dilim gövdesi 1MB'ı aşıyor, kalıcılığa yazılmayacak",
			zap.String("key", key), zap.Int("bytes", size))
		return ErrQuotaExceeded
	case size > SoftLimitBytes:
		configslog.Log.Warn("Dilim gövdesi oldukça büyük, depolama sorunlarına yol açabilir",
			zap.String("key", key), zap.Int("kilobytes", size/1024))
	}

	record := models.SliceRecord{Key: key, Value: value, ByteSize: size}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			UpdateAll: true,
		}).
		Create(&record).Error
	if err != nil {
		configslog.Log.Error("SliceRepository.Save: DB hatası", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// Remove anahtara ait kaydı siler. Kayıt yoksa hata üretmez.
func (r *SliceRepository) Remove(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("geçersiz dilim anahtarı")
	}
	err := r.db.WithContext(ctx).Delete(&models.SliceRecord{}, "key = ?", key).Error
	if err != nil {
		configslog.Log.Error("SliceRepository.Remove: DB hatası", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}
