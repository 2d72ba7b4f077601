package services

import "caelio/internal/models/quiz_models"

// Static per-group prose served alongside resolved profiles.
var groupDescriptions = map[quiz_models.Group]map[string]string{
	quiz_models.GroupKetNoi: {
		"title":       "🤝 The Connectors - Người Kết nối",
		"description": "Bạn đọc sách để tìm kiếm sự hòa hợp, tình yêu và cảm giác thuộc về. Bạn thích những câu chuyện chạm đến trái tim, giúp bạn hiểu và đồng cảm với người khác.",
		"books":       "Tâm lý tình cảm, chữa lành, tản văn, tiểu thuyết gia đình",
		"traits":      "Đồng cảm cao, thích kết nối, ưa câu chuyện cảm động",
	},
	quiz_models.GroupTuDo: {
		"title":       "🕊️ The Individuals - Người Tự do",
		"description": "Bạn tìm kiếm tự do, thể hiện bản sắc cá nhân và phá vỡ khuôn mẫu. Đọc sách là cách bạn khám phá thế giới và định hình cá tính riêng.",
		"books":       "Du ký, nghệ thuật sống, tiểu thuyết sáng tạo, sách phản tư xã hội",
		"traits":      "Độc lập, sáng tạo, thích khám phá bản thân",
	},
	quiz_models.GroupTriThuc: {
		"title":       "🧠 The Thinkers - Người Tư duy",
		"description": "Bạn tìm kiếm tri thức, sự thật và lý giải thế giới. Mỗi cuốn sách là một câu hỏi cần được trả lời, một bí ẩn cần được khám phá.",
		"books":       "Khoa học phổ thông, triết học, lịch sử, sách phân tích chuyên sâu",
		"traits":      "Hiếu học, logic, thích phân tích và tìm hiểu",
	},
	quiz_models.GroupChinhPhuc: {
		"title":       "🏆 The Achievers - Người Chinh phục",
		"description": "Bạn muốn vượt qua thử thách, tạo ra thành tựu và biến ý tưởng thành hiện thực. Sách là công cụ giúp bạn đạt được mục tiêu.",
		"books":       "Sách truyền cảm hứng, lãnh đạo, chiến lược, hồi ký thành công",
		"traits":      "Quyết đoán, hướng mục tiêu, thích thách thức",
	},
	quiz_models.GroupKienTao: {
		"title":       "🏗️ The Builders - Người Xây dựng",
		"description": "Bạn muốn xây dựng nền tảng vững chắc, phát triển kỹ năng thực tế. Bạn thích những cuốn sách có tính ứng dụng cao.",
		"books":       "Sách kỹ năng, tài chính, marketing, khởi nghiệp, sách hướng nghiệp",
		"traits":      "Thực tế, có hệ thống, thích xây dựng và phát triển",
	},
}

const synthesizerNote = "🔗 Đặc điểm Synthesizer: Bạn có khả năng tư duy tổng hợp cao, " +
	"thích kết nối tri thức từ nhiều lĩnh vực khác nhau. Phù hợp với " +
	"sách có chiều sâu và khả năng liên kết đa ngành."

// GroupDescription returns the description block for a group, extended with
// the synthesizer note when the trait is active.
func GroupDescription(group quiz_models.Group, isSynthesizer bool) map[string]string {
	base, ok := groupDescriptions[group]
	if !ok {
		return map[string]string{}
	}
	desc := make(map[string]string, len(base)+1)
	for k, v := range base {
		desc[k] = v
	}
	if isSynthesizer {
		desc["synthesizer_note"] = synthesizerNote
	}
	return desc
}

var fieldDescriptions = map[string]string{
	quiz_models.FieldBusiness:    "Kinh tế - Quản trị - Tài chính: Lĩnh vực kinh doanh, quản lý và tài chính",
	quiz_models.FieldHumanities:  "Xã hội - Nhân văn: Khoa học xã hội, văn học, lịch sử, triết học",
	quiz_models.FieldScience:     "Khoa học tự nhiên: Toán, lý, hóa, sinh, địa lý",
	quiz_models.FieldTechnology:  "Công nghệ - Kỹ thuật: IT, kỹ thuật, công nghệ thông tin",
	quiz_models.FieldMedical:     "Y - Dược học: Y khoa, dược phẩm, sức khỏe",
	quiz_models.FieldEducation:   "Sư phạm - Giáo dục: Giảng dạy, đào tạo, phát triển con người",
	quiz_models.FieldArts:        "Nghệ thuật - Thiết kế - Kiến trúc: Sáng tạo, thiết kế, nghệ thuật",
	quiz_models.FieldAgriculture: "Nông - Lâm - Ngư nghiệp: Nông nghiệp, lâm nghiệp, thủy sản",
}

func FieldDescription(field string) string {
	if desc, ok := fieldDescriptions[field]; ok {
		return desc
	}
	return "Lĩnh vực không xác định"
}

var motivationAdvice = map[string]string{
	quiz_models.MotivationFoundational: "Nên đọc sách có hệ thống, từ cơ bản đến nâng cao, có cấu trúc rõ ràng",
	quiz_models.MotivationPractical:    "Ưu tiên sách hướng dẫn thực hành, case study, cẩm nang ứng dụng",
	quiz_models.MotivationExploratory:  "Thích hợp với sách phản biện, góc nhìn đổi mới, tư duy đột phá",
}

var styleAdvice = map[string]string{
	quiz_models.StyleStructured:  "Phù hợp với giáo trình, sách có lộ trình học tập từng bước",
	quiz_models.StyleIntegrative: "Nên đọc sách liên ngành, tổng hợp, có tính kết nối cao",
}

var presentationAdvice = map[string]string{
	quiz_models.PresentationAnalytical:  "Ưa thích sách chuyên sâu, có trích dẫn, nghiên cứu khoa học",
	quiz_models.PresentationNarrative:   "Thích sách kể chuyện, ví dụ thực tế, dễ hiểu",
	quiz_models.PresentationIntegrative: "Phù hợp với sách đa ngành, tư duy hệ thống",
}

// LearningTips composes reading advice for a professional profile.
func LearningTips(motivation, style, presentation string) (string, string, string) {
	return motivationAdvice[motivation], styleAdvice[style], presentationAdvice[presentation]
}
