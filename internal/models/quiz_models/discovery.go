package quiz_models

// DiscoveryQuestions is the ordered WHY+HOW question set for the discovery
// journey. Q1-Q3 probe motivation, Q4-Q8 probe reading habits.
var DiscoveryQuestions = []DiscoveryQuestion{
	{
		ID:          "Q1",
		Question:    "Nếu một cuốn sách có linh hồn, linh hồn ấy nên làm gì cùng bạn?",
		ChoiceOrder: []string{"A", "B", "C", "D", "E"},
		Choices: map[string]DiscoveryChoice{
			"A": {Text: "Cùng bạn đi qua những vùng cảm xúc sâu thẳm, để hiểu và được hiểu.", Group: GroupKetNoi},
			"B": {Text: "Thức tỉnh trong bạn khát vọng tự do và bản sắc cá nhân.", Group: GroupTuDo},
			"C": {Text: "Mở ra những bí mật ẩn sau tri thức của thế giới.", Group: GroupTriThuc},
			"D": {Text: "Gieo trong bạn ngọn lửa chinh phục và thành tựu.", Group: GroupChinhPhuc},
			"E": {Text: "Dạy bạn cách xây một điều gì đó thực tế và bền vững.", Group: GroupKienTao},
		},
	},
	{
		ID:          "Q2",
		Question:    "Khi bạn chọn đọc, điều khiến bạn \"ấn nút bắt đầu\" là:",
		ChoiceOrder: []string{"A", "B", "C", "D", "E"},
		Choices: map[string]DiscoveryChoice{
			"A": {Text: "Cảm xúc thôi thúc muốn đồng cảm với những người xa lạ.", Group: GroupKetNoi},
			"B": {Text: "Niềm khao khát tự định nghĩa bản thân.", Group: GroupTuDo},
			"C": {Text: "Sự tò mò muốn giải mã một bí ẩn lớn.", Group: GroupTriThuc},
			"D": {Text: "Ham muốn tạo ra điều có giá trị trong thực tế.", Group: GroupKienTao},
			"E": {Text: "Mong muốn tiến gần hơn đến thành công.", Group: GroupChinhPhuc},
		},
	},
	{
		ID:          "Q3",
		Question:    "Khi đọc xong một cuốn sách tuyệt vời, bạn cảm thấy...",
		ChoiceOrder: []string{"A", "B", "C", "D", "E"},
		Choices: map[string]DiscoveryChoice{
			"A": {Text: "Muốn chia sẻ và kết nối với ai đó.", Group: GroupKetNoi},
			"B": {Text: "Muốn sáng tạo hoặc viết ra điều gì đó mới.", Group: GroupTuDo},
			"C": {Text: "Muốn tiếp tục tìm hiểu sâu hơn, đi đến tận cùng.", Group: GroupTriThuc},
			"D": {Text: "Muốn hành động và thử nghiệm ngay trong đời sống.", Group: GroupChinhPhuc},
			"E": {Text: "Muốn chiêm nghiệm, tổng hợp lại mọi điều trong đầu.", Synthesizer: true},
		},
	},
	{
		ID:          "Q4",
		Question:    "Khi cầm một cuốn sách, tâm trí bạn giống như:",
		ChoiceOrder: []string{"A", "B", "C"},
		Choices: map[string]DiscoveryChoice{
			"A": {Text: "Một người thám hiểm muốn ghi nhớ từng chi tiết.", Group: GroupTriThuc},
			"B": {Text: "Một nhà du hành tự do lang thang qua nhiều vùng ý tưởng.", Group: GroupTuDo},
			"C": {Text: "Một người kết hợp cả hai: học sâu rồi liên kết rộng.", Synthesizer: true},
		},
	},
	{
		ID:          "Q5",
		Question:    "Trong một cuộc trò chuyện về sách, bạn thường:",
		ChoiceOrder: []string{"A", "B", "C"},
		Choices: map[string]DiscoveryChoice{
			"A": {Text: "Lắng nghe câu chuyện và cảm xúc của người khác.", Group: GroupKetNoi},
			"B": {Text: "Chia sẻ góc nhìn riêng biệt và tư tưởng của mình.", Group: GroupTuDo},
			"C": {Text: "Phân tích, kết nối và làm rõ những luận điểm trái chiều.", Synthesizer: true},
		},
	},
	{
		ID:          "Q6",
		Question:    "Cảm giác lý tưởng của bạn khi đọc là:",
		ChoiceOrder: []string{"A", "B", "C", "D", "E"},
		Choices: map[string]DiscoveryChoice{
			"A": {Text: "Bình yên, được hiểu.", Group: GroupKetNoi},
			"B": {Text: "Tự do, bay bổng.", Group: GroupTuDo},
			"C": {Text: "Sâu thẳm, tập trung.", Group: GroupTriThuc},
			"D": {Text: "Hứng khởi, đầy năng lượng.", Group: GroupChinhPhuc},
			"E": {Text: "Khám phá liên tục và \"ghép các mảnh hình ảnh tri thức lại\".", Synthesizer: true},
		},
	},
	{
		ID:          "Q7",
		Question:    "Một cuốn sách lý tưởng nên:",
		ChoiceOrder: []string{"A", "B", "C", "D", "E"},
		Choices: map[string]DiscoveryChoice{
			"A": {Text: "Là lời tâm sự chân thành.", Group: GroupKetNoi},
			"B": {Text: "Là tiếng gọi phiêu lưu.", Group: GroupTuDo},
			"C": {Text: "Là cánh cửa tri thức.", Group: GroupTriThuc},
			"D": {Text: "Là cẩm nang thành công.", Group: GroupChinhPhuc},
			"E": {Text: "Là tấm gương soi phản chiếu mọi điều bạn từng nghĩ.", Synthesizer: true},
		},
	},
	{
		ID:          "Q8",
		Question:    "Khi bạn đọc đến một ý tưởng khó hiểu, bạn:",
		ChoiceOrder: []string{"A", "B", "C"},
		Choices: map[string]DiscoveryChoice{
			"A": {Text: "Bỏ qua và tiếp tục, vì cảm xúc là quan trọng nhất.", Group: GroupKetNoi},
			"B": {Text: "Ghi chú lại để tìm hiểu sau.", Group: GroupTriThuc},
			"C": {Text: "Truy tìm tất cả các nguồn liên quan, từ video, nghiên cứu, đến sách khác.", Synthesizer: true},
		},
	},
}
