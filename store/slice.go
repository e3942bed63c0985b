// Package store kalıcı içerik dilimlerini tutar: her içerik alanı için
// bellek içi değer + depolama adaptörü üzerinden JSON kalıcılığı.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"undangan.link/configs/configslog"
	"undangan.link/repositories"
)

// Slice tek bir içerik alanının kalıcı durum kabıdır. Update ve
// ResetToDefault tam değiştirme yapar; bu katmanda kısmi güncelleme veya
// validasyon yoktur. Eşzamanlı okuyucular için güvenlidir; yazmalarda son
// tamamlanan kazanır.
type Slice[T any] struct {
	mu    sync.RWMutex
	key   string
	value T
	def   T
	repo  repositories.ISliceRepository
}

// NewSlice dilimi oluşturur ve kalıcı depodan yükler. Kayıt yoksa veya
// okunamazsa paketlenmiş varsayılana düşer.
func NewSlice[T any](repo repositories.ISliceRepository, key string, def T) *Slice[T] {
	s := &Slice[T]{key: key, value: def, def: def, repo: repo}

	raw, err := repo.Load(context.Background(), key)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			configslog.Log.Warn("Dilim yüklenemedi, varsayılan kullanılacak",
				zap.String("key", key), zap.Error(err))
		}
		return s
	}

	var loaded T
	if err := json.Unmarshal(raw, &loaded); err != nil {
		configslog.Log.Warn("Dilim gövdesi çözümlenemedi, varsayılan kullanılacak",
			zap.String("key", key), zap.Error(err))
		return s
	}
	s.value = loaded
	return s
}

// Key dilimin kalıcı depo anahtarını döndürür.
func (s *Slice[T]) Key() string { return s.key }

// Get dilimin güncel değerini döndürür.
func (s *Slice[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Update değeri bütün olarak değiştirir ve kalıcılığı tetikler. Kalıcı
// yazma reddedilse bile (kota veya depo hatası) bellek içi değer güncel
// kalır; oturum boyunca UI değişikliği görür, değişiklik yeniden açılışta
// kaybolur. Kota aşımı çağırana ErrQuotaExceeded olarak döner.
func (s *Slice[T]) Update(ctx context.Context, value T) error {
	s.mu.Lock()
	s.value = value
	s.mu.Unlock()

	return s.persist(ctx, value)
}

// ResetToDefault dilimi paketlenmiş varsayılanına döndürür. İdempotenttir.
func (s *Slice[T]) ResetToDefault(ctx context.Context) error {
	s.mu.Lock()
	s.value = s.def
	s.mu.Unlock()

	return s.persist(ctx, s.def)
}

func (s *Slice[T]) persist(ctx context.Context, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		configslog.Log.Error("Dilim serileştirilemedi", zap.String("key", s.key), zap.Error(err))
		return err
	}

	if err := s.repo.Save(ctx, s.key, raw); err != nil {
		if errors.Is(err, repositories.ErrQuotaExceeded) {
			return err
		}
		// Depo hatası ölümcül değildir: bellek içi değerle devam edilir.
		configslog.Log.Error("Dilim kalıcılığa yazılamadı", zap.String("key", s.key), zap.Error(err))
		return err
	}
	return nil
}
