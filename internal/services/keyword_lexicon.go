package services

import "caelio/internal/models/quiz_models"

// groupKeywords is the free-text lexicon for keyword scoring: Vietnamese
// domain terms extracted from real catalog summaries. Lists are extensible;
// scoring normalizes by list length so adding terms does not inflate scores.
var groupKeywords = map[quiz_models.Group][]string{
	quiz_models.GroupChinhPhuc: {
		"vươn lên", "nghèo khó", "khó khăn", "nghịch cảnh", "vượt qua",
		"bản lĩnh", "kiên định", "động lực", "khởi nghiệp", "thành công",
		"phát triển", "cố gắng", "nỗ lực", "chiến thắng", "mục tiêu",
		"ý chí", "quyết tâm", "thử thách", "đấu tranh", "tự lập", "tự cường",
	},
	quiz_models.GroupKienTao: {
		"sáng tạo", "nghệ thuật", "thiết kế", "chữa lành", "hòa giải",
		"nội tâm", "tự sự", "biểu đạt", "cảm hứng", "tưởng tượng",
		"thơ ca", "văn chương", "suy ngẫm", "chiêm nghiệm", "khám phá",
		"tìm kiếm", "phát hiện", "trải nghiệm", "cá nhân", "bản thân",
	},
	quiz_models.GroupTriThuc: {
		"khoa học", "giải thích", "phân tích", "địa lý", "chính trị",
		"văn hóa", "tâm lý học", "lịch sử", "triết học", "kiến thức",
		"học hỏi", "hiểu biết", "nghiên cứu", "khám phá", "tư duy",
		"logic", "lý thuyết", "phương pháp", "giáo dục", "trí tuệ", "nhận thức",
	},
	quiz_models.GroupTuDo: {
		"tự do", "độc lập", "phiêu lưu", "hành trình", "du lịch",
		"khám phá", "mạo hiểm", "giải phóng", "thoát khỏi", "thao túng",
		"kiểm soát", "lựa chọn", "quyết định", "bình thản", "thư giãn",
		"thoải mái", "tự nhiên", "không ràng buộc", "tự chủ", "không phụ thuộc",
	},
	quiz_models.GroupKetNoi: {
		"gia đình", "tình cảm", "yêu thương", "quan hệ", "mối quan hệ",
		"cảm xúc", "đồng cảm", "thấu hiểu", "chia sẻ", "gắn kết",
		"kết nối", "tương tác", "giao tiếp", "trầm cảm", "cô đơn",
		"mất mát", "nỗi đau", "buồn", "vui", "hạnh phúc", "tình yêu",
	},
}

// synthesizerKeywords extend the primary group's list when the synthesizer
// trait is active: terms marking cross-disciplinary, integrative books.
var synthesizerKeywords = []string{
	"giao thoa", "đa tầng", "phức tạp", "nhiều chiều", "tổng hợp",
	"kết hợp", "hỗn hợp", "đa dạng", "phong phú", "đan xen",
	"xen kẽ", "luân phiên", "thay đổi", "biến đổi", "chuyển tiếp",
	"linh hoạt", "thích ứng", "đa năng", "toàn diện", "rộng rãi", "bao trùm",
}
