package services

import "caelio/internal/models/quiz_models"

// groupCategories maps each personality group to curated catalog category
// labels. The synthesizer set only joins the target list when the profile
// has the synthesizer trait active.
type groupCategories struct {
	Base        []string
	Synthesizer []string
}

var categoryMap = map[quiz_models.Group]groupCategories{
	quiz_models.GroupKetNoi: {
		Base: []string{
			"Sách tư duy - Kỹ năng sống",
			"Tâm lý - Giáo dục giới tính",
			"Gia đình",
			"Nuôi dạy con",
			"Tình yêu - Hôn nhân",
			"Xã hội",
			"Văn hóa - Xã hội",
			"Tâm lý học",
			"Giao tiếp",
			"Tiểu thuyết tình cảm",
			"Truyện ngắn - Tản văn",
		},
		Synthesizer: []string{
			"Triết học",
			"Tôn giáo",
			"Tâm lý học sâu",
			"Văn học phản tư",
			"Khoa học xã hội",
		},
	},
	quiz_models.GroupTuDo: {
		Base: []string{
			"Du lịch",
			"Ẩm thực",
			"Nấu ăn",
			"Sở thích",
			"Thể thao - Giải trí",
			"Nuôi trồng",
			"Làm vườn",
			"Thiền",
			"Yoga",
			"Nghệ thuật sống",
			"Phong cách sống",
		},
		Synthesizer: []string{
			"Triết học về tự do",
			"Nghệ thuật",
			"Văn học hiện đại",
			"Tư tưởng độc lập",
		},
	},
	quiz_models.GroupTriThuc: {
		Base: []string{
			"Khoa học - Kỹ thuật",
			"Lịch sử",
			"Địa lý",
			"Chính trị - Pháp luật",
			"Sách Học Tiếng Anh",
			"Sách giáo khoa",
			"Sách chuyên ngành",
			"Từ điển",
			"Sách tham khảo",
			"Khoa học phổ thông",
		},
		Synthesizer: []string{
			"Triết học khoa học",
			"Lịch sử tư tưởng",
			"Khoa học liên ngành",
			"Tư duy hệ thống",
		},
	},
	quiz_models.GroupChinhPhuc: {
		Base: []string{
			"Bài học kinh doanh",
			"Sách Marketing - Bán hàng",
			"Sách kỹ năng làm việc",
			"Quản trị - Lãnh đạo",
			"Khởi nghiệp",
			"Tài chính - Kế toán",
			"Chứng khoán - Đầu tư",
			"Bất động sản",
			"Thể thao",
			"Bóng đá",
			"Truyền cảm hứng",
		},
		Synthesizer: []string{
			"Chiến lược cấp cao",
			"Lý thuyết quản trị",
			"Case study phức tạp",
			"Tư duy chiến lược",
		},
	},
	quiz_models.GroupKienTao: {
		Base: []string{
			"Tiểu Thuyết",
			"Truyện ngắn - Tản văn - Tạp Văn",
			"Thơ ca",
			"Tác phẩm kinh điển",
			"Văn học",
			"Nghệ thuật",
			"Sách nghệ thuật sống đẹp",
			"Âm nhạc",
			"Hội họa",
			"Nhiếp ảnh",
			"Thời trang",
			"Làm đẹp",
			"Kiến trúc",
			"Thiết kế",
		},
		Synthesizer: []string{
			"Nghệ thuật đương đại",
			"Lý thuyết sáng tạo",
			"Văn học hiện đại",
			"Triết học nghệ thuật",
		},
	},
}

// categoryAliases links common category stems to their semantic family, so
// "Tâm lý học" still matches a catalog row labeled "Psychology" or
// "Sức khỏe tâm thần". Keys and values are lowercase.
var categoryAliases = map[string][]string{
	"tâm lý":     {"psychology", "tâm lí", "tâm thần", "mental"},
	"kinh doanh": {"business", "bán hàng", "marketing", "quản trị", "startup"},
	"khoa học":   {"science", "kỹ thuật", "công nghệ", "technology"},
	"văn học":    {"literature", "tiểu thuyết", "truyện", "tác phẩm"},
	"nghệ thuật": {"art", "hội họa", "thiết kế", "design"},
	"du lịch":    {"travel", "du ký", "phiêu lưu"},
	"sức khỏe":   {"health", "y học", "medical", "làm đẹp"},
	"tài chính":  {"finance", "tiền tệ", "đầu tư", "investment", "chứng khoán"},
}

// fieldKeywords backs the professional-track field filter.
var fieldKeywords = map[string][]string{
	quiz_models.FieldBusiness:    {"kinh doanh", "marketing", "bán hàng", "quản trị", "tài chính", "kế toán", "chứng khoán", "đầu tư", "khởi nghiệp"},
	quiz_models.FieldHumanities:  {"văn học", "lịch sử", "triết học", "xã hội", "nhân văn", "tôn giáo", "văn hóa"},
	quiz_models.FieldScience:     {"khoa học", "toán học", "vật lý", "hóa học", "sinh học", "địa lý", "kỹ thuật"},
	quiz_models.FieldTechnology:  {"công nghệ", "tin học", "lập trình", "máy tính", "internet", "ai", "robot"},
	quiz_models.FieldMedical:     {"y học", "sức khỏe", "dược", "y khoa", "chăm sóc", "dinh dưỡng"},
	quiz_models.FieldEducation:   {"giáo dục", "sư phạm", "dạy học", "đào tạo", "trẻ em"},
	quiz_models.FieldArts:        {"nghệ thuật", "hội họa", "thiết kế", "kiến trúc", "âm nhạc", "múa", "thời trang"},
	quiz_models.FieldAgriculture: {"nông nghiệp", "lâm nghiệp", "thủy sản", "trồng trọt", "chăn nuôi"},
}
