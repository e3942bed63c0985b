package models

// Vendor düğün tedarikçisini (katering, dekorasyon, müzik vb.) tutar.
// Details sıralı bir listedir; yönetici panelinden yukarı/aşağı taşınabilir
// ve bu sıra düzenlemeler boyunca korunmak zorundadır.
type Vendor struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Contact     string   `json:"contact"`
	Instagram   string   `json:"instagram"`
	Website     string   `json:"website"`
	Logo        string   `json:"logo"`
	Details     []string `json:"details,omitempty"`
	Description string   `json:"description,omitempty"`
}
