package models

// AuthState yönetici oturum durumunu tutar; diğer dilimler gibi
// "auth-storage" anahtarı altında kalıcıdır.
type AuthState struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	Username        string `json:"username"`
}
