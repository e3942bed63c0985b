package models

// ImageRecord yüklenen bir görselin metadata kaydıdır. Görselin kendisi
// nesne deposunda (veya data: URI olarak ilgili dilimin içinde) durur;
// burada yalnızca referans tutulur.
type ImageRecord struct {
	URI      string `json:"uri"`
	Category string `json:"category"`
	SavedAt  string `json:"savedAt"`
}

// ImageSet dosya adından metadata kaydına eşleme; "wedding_images"
// anahtarı altında kalıcıdır ve export belgesinin images alanını oluşturur.
type ImageSet map[string]ImageRecord
