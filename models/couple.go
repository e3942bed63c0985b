package models

// Person gelin veya damada ait kişi bilgilerini tutar.
// Alan adları kalıcı JSON sözleşmesinin parçasıdır, değiştirilmemelidir.
type Person struct {
	Name        string `json:"name"`
	FullName    string `json:"fullName"`
	Photo       string `json:"photo"` // http(s) URL, data: URI veya yerel dosya URI'si
	Father      string `json:"father"`
	Mother      string `json:"mother"`
	ChildNumber string `json:"childNumber"`
	Siblings    string `json:"siblings"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Instagram   string `json:"instagram"`
	Bio         string `json:"bio"`
}

// Couple damat ve gelin kayıtlarını bir arada tutar.
// Panel formu her kayıtta nesnenin tamamını gönderir (kısmi merge yok).
type Couple struct {
	Groom Person `json:"groom"`
	Bride Person `json:"bride"`
}
