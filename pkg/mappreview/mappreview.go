// Package mappreview bir Google Haritalar bağlantısından statik harita
// önizleme URL'si türetir. Gerçek bir geocoding çağrısı yapılmaz; yalnızca
// bilinen URL kalıpları ayrıştırılır.
package mappreview

import (
	"fmt"
	"strings"
)

// DefaultPreviewURL tanınmayan harita bağlantıları için kullanılan
// dünya haritası önizlemesi.
const DefaultPreviewURL = "https://maps.googleapis.com/maps/api/staticmap?center=0,0&zoom=1&size=600x300&maptype=roadmap"

// FromMapURL verilen harita bağlantısından önizleme URL'si üretir.
// Boş girdi boş sonuç döndürür. Desteklenen kalıplar:
//
//	https://www.google.com/maps?q=-7.97,111.99&z=17   (koordinat sorgusu)
//	https://maps.google.com/?q=Hotel+Mulia+Jakarta    (yer adı sorgusu)
//	https://www.google.com/maps/@-7.97,111.99,15z     (@lat,lng biçimi)
//
// Google Haritalar bağlantısı olup kalıplardan hiçbiri eşleşmezse
// DefaultPreviewURL döner; Google dışı bağlantılar da aynı şekilde ele alınır.
func FromMapURL(mapURL string) string {
	if mapURL == "" {
		return ""
	}

	// maps?q=lat,lng biçimi önce denenir çünkü genel ?q= kalıbıyla çakışır.
	if strings.Contains(mapURL, "maps?q=") {
		query := segmentAfter(mapURL, "maps?q=")
		if strings.Contains(query, ",") {
			parts := strings.SplitN(query, ",", 2)
			return staticMapFor(parts[0] + "," + parts[1])
		}
	}

	if strings.Contains(mapURL, "?q=") {
		query := segmentAfter(mapURL, "?q=")
		if query != "" {
			return staticMapFor(query)
		}
	}

	if strings.Contains(mapURL, "@") {
		coords := strings.Split(segmentAfter(mapURL, "@"), ",")
		if len(coords) >= 2 {
			return staticMapFor(coords[0] + "," + coords[1])
		}
	}

	return DefaultPreviewURL
}

// segmentAfter işaretçiden sonrasını alır ve ilk & sınırında keser.
func segmentAfter(url, marker string) string {
	idx := strings.Index(url, marker)
	if idx < 0 {
		return ""
	}
	rest := url[idx+len(marker):]
	if amp := strings.Index(rest, "&"); amp >= 0 {
		rest = rest[:amp]
	}
	return rest
}

func staticMapFor(center string) string {
	return fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/staticmap?center=%s&zoom=15&size=600x300&maptype=roadmap&markers=color:red%%7C%s",
		center, center,
	)
}
