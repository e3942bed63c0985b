package models

// Moodboard kategorileri sabit bir kümedir; panel formu yalnızca bu
// değerlerden birini gönderir.
const (
	MoodboardCategoryDecoration = "decoration"
	MoodboardCategoryMakeup     = "makeup"
	MoodboardCategoryAttire     = "attire"
	MoodboardCategoryFlowers    = "flowers"
	MoodboardCategoryCake       = "cake"
	MoodboardCategoryInvitation = "invitation"
	MoodboardCategoryOther      = "other"
)

// MoodboardCategories geçerli kategori değerlerinin listesi.
var MoodboardCategories = []string{
	MoodboardCategoryDecoration,
	MoodboardCategoryMakeup,
	MoodboardCategoryAttire,
	MoodboardCategoryFlowers,
	MoodboardCategoryCake,
	MoodboardCategoryInvitation,
	MoodboardCategoryOther,
}

// MoodboardItem ilham panosundaki tek bir görseli tutar.
type MoodboardItem struct {
	ID          string `json:"id"`
	CategoryID  string `json:"categoryId"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source,omitempty"`
}

// ValidMoodboardCategory verilen kategori kimliğinin sabit kümede olup
// olmadığını kontrol eder.
func ValidMoodboardCategory(id string) bool {
	for _, c := range MoodboardCategories {
		if c == id {
			return true
		}
	}
	return false
}
