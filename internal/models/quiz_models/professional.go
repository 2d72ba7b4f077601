package quiz_models

// Field, motivation, style and presentation tags for the professional track.
const (
	FieldBusiness    = "business"
	FieldHumanities  = "humanities"
	FieldScience     = "science"
	FieldTechnology  = "technology"
	FieldMedical     = "medical"
	FieldEducation   = "education"
	FieldArts        = "arts"
	FieldAgriculture = "agriculture"

	MotivationFoundational = "foundational"
	MotivationPractical    = "practical"
	MotivationExploratory  = "exploratory"

	StyleStructured  = "structured"
	StyleIntegrative = "integrative"

	PresentationAnalytical  = "analytical"
	PresentationNarrative   = "narrative"
	PresentationIntegrative = "integrative"
)

// ProfessionalQuestions is the 4-question professional journey: field,
// reading goal, learning style, preferred presentation.
var ProfessionalQuestions = []ProfessionalQuestion{
	{
		ID:          "Q1",
		Question:    "Lĩnh vực bạn muốn đào sâu là gì?",
		ChoiceOrder: []string{"A", "B", "C", "D", "E", "F", "G", "H"},
		Choices: map[string]ProfessionalChoice{
			"A": {Text: "Kinh tế - Quản Trị - Tài chính", Field: FieldBusiness},
			"B": {Text: "Xã Hội - Nhân Văn", Field: FieldHumanities},
			"C": {Text: "Khoa học tự nhiên", Field: FieldScience},
			"D": {Text: "Công nghệ - Kỹ thuật", Field: FieldTechnology},
			"E": {Text: "Y - Dược học", Field: FieldMedical},
			"F": {Text: "Sư phạm - Giáo dục", Field: FieldEducation},
			"G": {Text: "Nghệ thuật - Thiết kế - Kiến trúc", Field: FieldArts},
			"H": {Text: "Nông - Lâm - Ngư nghiệp", Field: FieldAgriculture},
		},
	},
	{
		ID:          "Q2",
		Question:    "Mục tiêu đọc của bạn là:",
		ChoiceOrder: []string{"A", "B", "C"},
		Choices: map[string]ProfessionalChoice{
			"A": {Text: "Xây nền tảng lý thuyết vững chắc.", Motivation: MotivationFoundational},
			"B": {Text: "Giải quyết vấn đề thực tế trong công việc.", Motivation: MotivationPractical},
			"C": {Text: "Mở rộng tư duy và khám phá tri thức mới.", Motivation: MotivationExploratory},
		},
	},
	{
		ID:          "Q3",
		Question:    "Khi học một vấn đề mới, bạn thích:",
		ChoiceOrder: []string{"A", "B"},
		Choices: map[string]ProfessionalChoice{
			"A": {Text: "Có lộ trình rõ ràng, từ cơ bản đến nâng cao.", Style: StyleStructured},
			"B": {Text: "Tự mình tìm các liên kết giữa các lĩnh vực.", Style: StyleIntegrative, SynthesizerPotential: true},
		},
	},
	{
		ID:          "Q4",
		Question:    "Cách trình bày bạn thấy hấp dẫn nhất:",
		ChoiceOrder: []string{"A", "B", "C"},
		Choices: map[string]ProfessionalChoice{
			"A": {Text: "Sách học chuyên sâu, chặt chẽ, có trích dẫn.", Presentation: PresentationAnalytical},
			"B": {Text: "Sách kể chuyện sinh động, dễ hiểu.", Presentation: PresentationNarrative},
			"C": {Text: "Sách có khả năng kết nối lý thuyết với góc nhìn đa ngành.", Presentation: PresentationIntegrative, SynthesizerPotential: true},
		},
	},
}

// FieldToGroup borrows one of the five canonical groups per professional
// field so the professional track can reuse the book matcher.
var FieldToGroup = map[string]Group{
	FieldBusiness:    GroupChinhPhuc,
	FieldHumanities:  GroupKetNoi,
	FieldScience:     GroupTriThuc,
	FieldTechnology:  GroupTriThuc,
	FieldMedical:     GroupTriThuc,
	FieldEducation:   GroupKetNoi,
	FieldArts:        GroupKienTao,
	FieldAgriculture: GroupKienTao,
}
