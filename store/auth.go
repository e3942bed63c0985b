package store

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"undangan.link/configs/configslog"
	"undangan.link/defaults"
	"undangan.link/models"
	"undangan.link/repositories"
)

// AuthStore yönetici oturum durumunu tutan kalıcı dilim artı sabit kimlik
// bilgisi kontrolüdür. Tek kullanıcı, tek parola; oturum süresi veya token
// yoktur ve panel rotaları yalnızca bu boolean'a bakar.
type AuthStore struct {
	slice        *Slice[models.AuthState]
	username     string
	passwordHash []byte
}

// NewAuthStore auth dilimini yükler ve parola karşılaştırması için hash'i
// bir kez üretir; düz metin karşılaştırma dallarında dolaşmaz.
func NewAuthStore(repo repositories.ISliceRepository) *AuthStore {
	hash, err := bcrypt.GenerateFromPassword([]byte(defaults.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Fatal("Yönetici parolası hash'lenemedi", zap.Error(err))
	}
	return &AuthStore{
		slice:        NewSlice(repo, models.SliceKeyAuth, models.AuthState{}),
		username:     defaults.AdminUsername,
		passwordHash: hash,
	}
}

// State güncel oturum durumunu döndürür.
func (a *AuthStore) State() models.AuthState {
	return a.slice.Get()
}

// Login kimlik bilgilerini sabit çiftle karşılaştırır. Eşleşmede durumu
// {isAuthenticated: true, username} yapar ve true döner; eşleşmezse durum
// hiç değişmez ve false döner.
func (a *AuthStore) Login(ctx context.Context, username, password string) bool {
	if username != a.username {
		return false
	}
	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		return false
	}

	if err := a.slice.Update(ctx, models.AuthState{IsAuthenticated: true, Username: username}); err != nil {
		// Kalıcılık hatası girişi engellemez; bellek içi durum güncellendi.
		configslog.Log.Warn("Oturum durumu kalıcılığa yazılamadı", zap.Error(err))
	}
	return true
}

// Logout her iki alanı da temizler.
func (a *AuthStore) Logout(ctx context.Context) {
	if err := a.slice.Update(ctx, models.AuthState{}); err != nil {
		configslog.Log.Warn("Oturum kapatma durumu kalıcılığa yazılamadı", zap.Error(err))
	}
}
