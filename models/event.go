package models

// RundownItem bir etkinliğin detaylı akışındaki tek bir satırdır.
// ID üst etkinlik içinde benzersiz olmalıdır ("1-2" gibi bileşik değerler).
type RundownItem struct {
	ID        string `json:"id"`
	Time      string `json:"time"`
	Activity  string `json:"activity"`
	Personnel string `json:"personnel"`
}

// Event düğün programındaki bir etkinliği (pemberkatan, resepsi vb.) tutar.
// Time yapılandırılmış bir timestamp değil, serbest metindir.
type Event struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Date            string        `json:"date,omitempty"`
	Time            string        `json:"time"`
	Venue           string        `json:"venue,omitempty"`
	Location        string        `json:"location,omitempty"`
	Description     string        `json:"description"`
	Dress           string        `json:"dress,omitempty"`
	DetailedRundown []RundownItem `json:"detailedRundown,omitempty"`
}
