package mappreview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromMapURL(t *testing.T) {
	tests := []struct {
		name   string
		mapURL string
		want   string
	}{
		{
			name:   "boş girdi boş önizleme",
			mapURL: "",
			want:   "",
		},
		{
			name:   "koordinat sorgusu",
			mapURL: "https://www.google.com/maps?q=-7.978845,111.991813&z=17&hl=id",
			want:   "https://maps.googleapis.com/maps/api/staticmap?center=-7.978845,111.991813&zoom=15&size=600x300&maptype=roadmap&markers=color:red%7C-7.978845,111.991813",
		},
		{
			name:   "yer adı sorgusu",
			mapURL: "https://maps.google.com/?q=Hotel+Mulia+Jakarta",
			want:   "https://maps.googleapis.com/maps/api/staticmap?center=Hotel+Mulia+Jakarta&zoom=15&size=600x300&maptype=roadmap&markers=color:red%7CHotel+Mulia+Jakarta",
		},
		{
			name:   "at işareti biçimi",
			mapURL: "https://www.google.com/maps/@-8.0478,112.1615,15z",
			want:   "https://maps.googleapis.com/maps/api/staticmap?center=-8.0478,112.1615&zoom=15&size=600x300&maptype=roadmap&markers=color:red%7C-8.0478,112.1615",
		},
		{
			name:   "tanınmayan bağlantı varsayılan haritaya düşer",
			mapURL: "https://example.com/nerede",
			want:   DefaultPreviewURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromMapURL(tt.mapURL))
		})
	}
}

// Önizleme, mapUrl'nin saf bir fonksiyonudur: mekan değiştiğinde eski
// mekanın önizlemesi taşınmamalıdır.
func TestFromMapURLRecompute(t *testing.T) {
	first := FromMapURL("https://maps.google.com/?q=Griya+Joglo")
	second := FromMapURL("https://maps.google.com/?q=Hotel+X")

	assert.Contains(t, first, "Griya+Joglo")
	assert.Contains(t, second, "Hotel+X")
	assert.NotContains(t, second, "Griya+Joglo")
}
