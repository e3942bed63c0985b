// Package defaults uygulamayla birlikte gelen varsayılan düğün içeriğini
// tutar. Her dilim, depoda kayıt bulunamadığında veya resetlendiğinde
// buradaki değerine döner.
package defaults

import "undangan.link/models"

// Yönetici girişi için sabit kimlik bilgileri. Tek yöneticili uygulama;
// oturum süresi, token veya kullanıcı yönetimi kapsam dışıdır.
const (
	AdminUsername = "admin"
	AdminPassword = "wedding2023"
)

// Core çift, tarih, mekan ve tema varsayılanları.
var Core = models.CoreContent{
	Couple: models.Couple{
		Groom: models.Person{
			Name:        "Davis",
			FullName:    "Davis Sandy Eka Prasetyo",
			Photo:       "https://images.unsplash.com/photo-1583864697784-a0efc8379f70?auto=format&fit=crop&w=1976&q=80",
			Father:      "Marjuki",
			Mother:      "Siwati",
			ChildNumber: "pertama dari 3 bersaudara",
			Siblings:    "pertama dari 3 bersaudara",
			Address:     "Kartosari Ponggok",
			Phone:       "+6281234567890",
			Instagram:   "@davis_p",
			Bio:         "Putra pertama dari Bapak Marjuki dan Ibu Siwati. Lahir di Blitar pada tanggal 15 Mei 1990. Saat ini bekerja sebagai Software Engineer di perusahaan teknologi terkemuka.",
		},
		Bride: models.Person{
			Name:        "Fera",
			FullName:    "Fera Dela Santi",
			Photo:       "https://images.unsplash.com/photo-1609241728358-55bdd86c92f8?auto=format&fit=crop&w=1974&q=80",
			Father:      "Suprayono",
			Mother:      "Siti Zulaikah",
			ChildNumber: "ke-4 dari 4 bersaudara",
			Siblings:    "ke-4 dari 4 bersaudara",
			Address:     "Jabung Kras",
			Phone:       "+6287654321098",
			Instagram:   "@fera_d",
			Bio:         "Putri keempat dari Bapak Suprayono dan Ibu Siti Zulaikah. Lahir di Kediri pada tanggal 22 September 1992. Saat ini bekerja sebagai Guru di salah satu sekolah dasar di Kediri.",
		},
	},
	Date: "20 Oktober 2024",
	Venue: models.Venue{
		Name:       "Griya Joglo",
		Address:    "Jl. Raya Ponggok No. 123, Blitar, Jawa Timur",
		MapURL:     "https://maps.google.com/?q=-8.0478,112.1615",
		Directions: "Lokasi berada di sebelah utara Alun-alun Blitar, sekitar 5 menit dari pusat kota.",
		Photo:      "https://images.unsplash.com/photo-1519167758481-83f550bb49b3?auto=format&fit=crop&w=2098&q=80",
	},
	Theme: models.WeddingTheme{
		ID:              "classic",
		Name:            "Classic Elegance",
		PrimaryColor:    "#8B4513",
		SecondaryColor:  "#F5DEB3",
		FontFamily:      "serif",
		BackgroundImage: "https://images.unsplash.com/photo-1520854221256-17451cc331bf?auto=format&fit=crop&w=2070&q=80",
		AccentImage:     "https://images.unsplash.com/photo-1511795409834-ef04bbd61622?auto=format&fit=crop&w=2069&q=80",
	},
}

// Schedule iki etkinlikli varsayılan program.
var Schedule = []models.Event{
	{
		ID:          "1",
		Title:       "Pemberkatan",
		Time:        "14:00 - 15:30 WIB",
		Venue:       "Gereja GKJW Ponggok",
		Description: "Upacara pemberkatan pernikahan akan dilaksanakan secara sederhana dan khidmat.",
		Dress:       "Putih & Gold",
		DetailedRundown: []models.RundownItem{
			{ID: "1-1", Time: "13:30 - 14:00", Activity: "Registrasi Tamu", Personnel: "Tim Penerima Tamu"},
			{ID: "1-2", Time: "14:00 - 14:15", Activity: "Prosesi Masuk Pengantin", Personnel: "Pengantin & Keluarga"},
			{ID: "1-3", Time: "14:15 - 15:00", Activity: "Upacara Pemberkatan", Personnel: "Pendeta & Majelis Gereja"},
			{ID: "1-4", Time: "15:00 - 15:30", Activity: "Sesi Foto Bersama", Personnel: "Fotografer & Keluarga"},
		},
	},
	{
		ID:          "2",
		Title:       "Resepsi",
		Time:        "15:30 - 18:00 WIB",
		Venue:       "Griya Joglo",
		Description: "Acara resepsi pernikahan dengan konsep garden party yang elegan.",
		Dress:       "Formal Elegant",
		DetailedRundown: []models.RundownItem{
			{ID: "2-1", Time: "15:30 - 16:00", Activity: "Penyambutan Tamu", Personnel: "Tim Penerima Tamu"},
			{ID: "2-2", Time: "16:00 - 16:30", Activity: "Pembukaan & Sambutan", Personnel: "MC & Keluarga"},
			{ID: "2-3", Time: "16:30 - 17:00", Activity: "Makan Malam", Personnel: "Tim Katering"},
			{ID: "2-4", Time: "17:00 - 17:30", Activity: "Hiburan & Persembahan", Personnel: "Tim Musik"},
			{ID: "2-5", Time: "17:30 - 18:00", Activity: "Sesi Foto & Penutupan", Personnel: "Fotografer & MC"},
		},
	},
}

// Committee varsayılan komite üyeleri.
var Committee = []models.CommitteeMember{
	{ID: "1", Name: "Budi Santoso", Role: "Ketua Panitia", Photo: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&w=1974&q=80", Phone: "+6281234567891"},
	{ID: "2", Name: "Siti Rahayu", Role: "Sekretaris", Photo: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&w=1974&q=80", Phone: "+6281234567892"},
	{ID: "3", Name: "Hendra Wijaya", Role: "Bendahara", Photo: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?auto=format&fit=crop&w=1974&q=80", Phone: "+6281234567893"},
	{ID: "4", Name: "Dewi Anggraini", Role: "Koordinator Acara", Photo: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?auto=format&fit=crop&w=2070&q=80", Phone: "+6281234567894"},
	{ID: "5", Name: "Agus Setiawan", Role: "Koordinator Konsumsi", Photo: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=crop&w=2070&q=80", Phone: "+6281234567895"},
	{ID: "6", Name: "Rina Fitriani", Role: "Koordinator Dekorasi", Photo: "https://images.unsplash.com/photo-1544005313-94ddf0286df2?auto=format&fit=crop&w=1976&q=80", Phone: "+6281234567896"},
}

// Vendors varsayılan tedarikçiler.
var Vendors = []models.Vendor{
	{ID: "1", Name: "Elegant Catering", Category: "Katering", Contact: "+6281234567897", Instagram: "@elegant_catering", Website: "www.elegantcatering.com", Logo: "https://images.unsplash.com/photo-1555244162-803834f70033?auto=format&fit=crop&w=2070&q=80"},
	{ID: "2", Name: "Floral Dreams", Category: "Dekorasi", Contact: "+6281234567898", Instagram: "@floral_dreams", Website: "www.floraldreams.com", Logo: "https://images.unsplash.com/photo-1561181286-d3fee7d55364?auto=format&fit=crop&w=2070&q=80"},
	{ID: "3", Name: "Harmony Music", Category: "Musik", Contact: "+6281234567899", Instagram: "@harmony_music", Website: "www.harmonymusic.com", Logo: "https://images.unsplash.com/photo-1511379938547-c1f69419868d?auto=format&fit=crop&w=2070&q=80"},
	{ID: "4", Name: "Capture Moments", Category: "Fotografi", Contact: "+6281234567800", Instagram: "@capture_moments", Website: "www.capturemoments.com", Logo: "https://images.unsplash.com/photo-1516035069371-29a1b244cc32?auto=format&fit=crop&w=1964&q=80"},
	{ID: "5", Name: "Sweet Delights", Category: "Kue", Contact: "+6281234567801", Instagram: "@sweet_delights", Website: "www.sweetdelights.com", Logo: "https://images.unsplash.com/photo-1535141192574-5d4897c12636?auto=format&fit=crop&w=1888&q=80"},
	{ID: "6", Name: "Elegant Attire", Category: "Busana", Contact: "+6281234567802", Instagram: "@elegant_attire", Website: "www.elegantattire.com", Logo: "https://images.unsplash.com/photo-1490707967831-1fd9b48e40e2?auto=format&fit=crop&w=1974&q=80"},
}

// Coordinators varsayılan koordinatörler.
var Coordinators = []models.Coordinator{
	{ID: "1", Name: "Ahmad Fauzi", Role: "Koordinator Utama", Phone: "+6281234567803", Photo: "https://images.unsplash.com/photo-1560250097-0b93528c311a?auto=format&fit=crop&w=1974&q=80"},
	{ID: "2", Name: "Ratna Dewi", Role: "Koordinator Pemberkatan", Phone: "+6281234567804", Photo: "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?auto=format&fit=crop&w=1976&q=80"},
	{ID: "3", Name: "Budi Santoso", Role: "Koordinator Resepsi", Phone: "+6281234567805", Photo: "https://images.unsplash.com/photo-1566492031773-4f4e44671857?auto=format&fit=crop&w=1974&q=80"},
	{ID: "4", Name: "Siti Aminah", Role: "Koordinator Tamu", Phone: "+6281234567806", Photo: "https://images.unsplash.com/photo-1580489944761-15a19d654956?auto=format&fit=crop&w=1961&q=80"},
}

// Moodboard varsayılan ilham panosu.
var Moodboard = []models.MoodboardItem{
	{ID: "1", CategoryID: models.MoodboardCategoryDecoration, ImageURL: "https://images.unsplash.com/photo-1519741347686-c1e331fcb4d0?auto=format&fit=crop&w=2069&q=80", Description: "Dekorasi dengan nuansa rustic dan sentuhan bunga segar", Source: "Pinterest"},
	{ID: "2", CategoryID: models.MoodboardCategoryDecoration, ImageURL: "https://images.unsplash.com/photo-1469371670807-013ccf25f16a?auto=format&fit=crop&w=2070&q=80", Description: "Rangkaian bunga untuk meja tamu dengan warna pastel", Source: "Instagram"},
	{ID: "3", CategoryID: models.MoodboardCategoryCake, ImageURL: "https://images.unsplash.com/photo-1535254973040-607b474cb50d?auto=format&fit=crop&w=1974&q=80", Description: "Kue pernikahan tiga tingkat dengan hiasan bunga segar", Source: "Wedding Magazine"},
	{ID: "4", CategoryID: models.MoodboardCategoryAttire, ImageURL: "https://images.unsplash.com/photo-1594552072238-5c4a26f10bfa?auto=format&fit=crop&w=1974&q=80", Description: "Gaun pengantin dengan model A-line dan detail bordir", Source: "Bridal Boutique"},
	{ID: "5", CategoryID: models.MoodboardCategoryAttire, ImageURL: "https://images.unsplash.com/photo-1596436889106-be35e843f974?auto=format&fit=crop&w=2070&q=80", Description: "Setelan jas pengantin pria dengan warna navy blue", Source: "Men's Fashion"},
	{ID: "6", CategoryID: models.MoodboardCategoryInvitation, ImageURL: "https://images.unsplash.com/photo-1607190074257-dd4b7af0309f?auto=format&fit=crop&w=1974&q=80", Description: "Desain undangan dengan tema rustic dan detail kaligrafi", Source: "Design Studio"},
}

// EventSummary varsayılan etkinlik özeti. Tarih core diliminden okunur.
var EventSummary = models.EventSummary{
	Place:                 "Griya Joglo",
	EventType:             "Pemberkatan & Resepsi",
	CeremonyTime:          "14.00 – 15.30",
	ReceptionTime:         "15.30 – 18.00",
	CeremonyGuests:        "100 Orang",
	CeremonyGuestsDetail:  "(Keluarga Inti & Jemaat)",
	ReceptionGuests:       "350 Orang",
	ChurchStaffSouvenir:   "5 pcs (Nasi Kotak by Keluarga + Souvenir)",
	ChurchStaffNote:       "*ada tambahan bingkisan sendiri",
	ReceptionSouvenir:     "300 pcs (Gelas Tumbler)",
	ReceptionSouvenirNote: "Kenang-kenangan spesial untuk para tamu yang hadir di hari bahagia kami",
}
