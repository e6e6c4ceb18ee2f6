package scoring

import "github.com/almonzeir/sudannnnn/internal/domain"

// Bilingual (English/Sudanese Arabic) keyword sets per category. Matching is
// case-insensitive substring containment over both the response and the user
// message; the first category with a hit wins.
var categoryKeywords = []struct {
	category domain.Category
	terms    []string
}{
	{domain.CategoryMedical, []string{
		"symptom", "أعراض", "مرض", "disease", "pain", "ألم", "fever", "حمى",
		"headache", "صداع", "cough", "سعال", "cold", "برد", "flu", "أنفلونزا",
		"infection", "عدوى", "treatment", "علاج", "diagnosis", "تشخيص",
	}},
	{domain.CategoryMedication, []string{
		"medication", "دواء", "medicine", "pill", "حبوب", "tablet", "أقراص",
		"dosage", "جرعة", "prescription", "وصفة", "pharmacy", "صيدلية",
		"side effect", "أعراض جانبية", "antibiotic", "مضاد حيوي",
	}},
	{domain.CategoryEmergency, []string{
		"emergency", "طوارئ", "urgent", "عاجل", "serious", "خطير",
		"severe", "شديد", "hospital", "مستشفى", "doctor", "دكتور",
		"chest pain", "ألم في الصدر", "difficulty breathing", "صعوبة في التنفس",
	}},
	{domain.CategoryPharmacy, []string{
		"pharmacy", "صيدلية", "pharmacist", "صيدلي", "store", "متجر",
		"location", "موقع", "hours", "ساعات", "contact", "تواصل",
		"price", "سعر", "cost", "تكلفة", "available", "متوفر",
	}},
}
