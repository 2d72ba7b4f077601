package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"caelio/pkg/utils"
)

// FallbackLabel tags books whose text matches no group convincingly.
const FallbackLabel = "Đa động lực"

// Surface weights for labeling: the crawled summary is the most trustworthy
// signal, title+category metadata and reader comments fill in the rest.
const (
	labelSummaryWeight  = 0.6
	labelMetadataWeight = 0.2
	labelCommentsWeight = 0.2

	labelExactHit   = 2.0
	labelPartialHit = 1.0

	// Below this normalized share the top group is noise, not a signal.
	labelThreshold = 0.15
)

// labelKeywords drives offline labeling. Broader and looser than the
// runtime matching lexicon: labeling happens once per catalog build, so it
// can afford fuzzier terms that would be too noisy per-request.
var labelKeywords = map[string][]string{
	"Chinh phục": {
		"khởi nghiệp", "phát triển bản thân", "tự lực", "vươn lên", "nghèo khó",
		"truyền cảm hứng", "kỷ luật", "năng suất", "lãnh đạo", "kiên cường",
		"thất bại", "nghịch cảnh", "bản lĩnh", "động lực", "tư duy",
		"doanh nhân", "vượt khó", "nghị lực", "hồi ký", "thành công",
	},
	"Kiến tạo": {
		"sáng tạo", "nghệ thuật", "thiết kế", "hiện đại", "hậu hiện đại",
		"thử nghiệm", "tiểu luận", "triết học", "bản ngã", "tự do cá nhân",
		"chữa lành", "hòa giải", "tự sự", "phong cách sống", "design thinking",
		"thơ ca", "văn học sáng tạo",
	},
	"Tri thức": {
		"khoa học", "lịch sử", "tư tưởng", "tâm lý học", "stoicism",
		"mindfulness", "xã hội học", "triết học", "công nghệ",
		"tư duy phản biện", "nhận thức", "non fiction", "biography",
		"nhà khoa học", "viễn tưởng khoa học", "xã hội",
	},
	"Tự do": {
		"du hành", "phiêu lưu", "hiện sinh", "dystopia", "phản kháng",
		"kafka", "orwell", "camus", "tự do tinh thần", "du lịch",
		"nội tâm", "siêu thực", "eat pray love", "wild", "flow", "truyện ngắn",
	},
	"Kết nối": {
		"tình cảm", "gia đình", "xã hội", "tản văn", "cảm xúc",
		"đồng cảm", "chữa lành", "tâm lý", "giao tiếp", "mối quan hệ",
		"nhân văn", "mất mát", "xung đột", "feel good", "tình yêu",
	},
	FallbackLabel: {
		"đa tuyến", "murakami", "márquez", "tổng hợp", "sapiens",
		"ký sự", "tạp văn", "giao thoa", "đa tầng", "phản tư",
		"suy tưởng", "hybrid", "nhiều lớp", "mở kết",
	},
}

// splitWords breaks multi-word keywords into unique single tokens: single
// tokens match far more reliably against cleaned text than whole phrases.
func splitWords(keywords []string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, kw := range keywords {
		for _, word := range strings.Fields(kw) {
			if _, ok := seen[word]; !ok {
				seen[word] = struct{}{}
				out = append(out, word)
			}
		}
	}
	return out
}

var labelTokens = func() map[string][]string {
	tokens := make(map[string][]string, len(labelKeywords))
	for group, kws := range labelKeywords {
		tokens[group] = splitWords(kws)
	}
	return tokens
}()

// Label is one book's offline classification.
type Label struct {
	Scores       map[string]float64
	PrimaryGroup string
	Score        float64
}

// LabelBook scores a catalog row's text surfaces against every group's
// token list and returns the normalized result.
func LabelBook(row map[string]string) Label {
	scores := make(map[string]float64, len(labelTokens))

	surfaces := []struct {
		text   string
		weight float64
	}{
		{row["summary"], labelSummaryWeight},
		{row["title"] + " " + row["authors"] + " " + row["category"], labelMetadataWeight},
		{row["content"], labelCommentsWeight},
	}
	for _, surface := range surfaces {
		if strings.TrimSpace(surface.text) == "" {
			continue
		}
		terms := withBigrams(utils.CleanWords(surface.text))
		for group, tokens := range labelTokens {
			scores[group] += surfaceScore(terms, tokens) * surface.weight
		}
	}

	var total float64
	for _, s := range scores {
		total += s
	}
	if total > 0 {
		for g := range scores {
			scores[g] /= total
		}
	}

	primary, best := FallbackLabel, 0.0
	for _, group := range sortedGroups(scores) {
		if scores[group] > best {
			primary, best = group, scores[group]
		}
	}
	if best < labelThreshold {
		primary = FallbackLabel
	}

	return Label{Scores: scores, PrimaryGroup: primary, Score: scores[primary]}
}

// surfaceScore counts exact and partial token hits, normalized by lexicon
// size so longer token lists do not dominate.
func surfaceScore(terms, tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	var score float64
	for _, term := range terms {
		for _, token := range tokens {
			if term == token {
				score += labelExactHit
				break
			}
			if strings.Contains(term, token) || strings.Contains(token, term) {
				score += labelPartialHit
				break
			}
		}
	}
	return score / float64(len(tokens))
}

// withBigrams appends adjacent-word pairs so short phrases still match
// after keyword splitting.
func withBigrams(words []string) []string {
	out := make([]string, 0, len(words)*2)
	out = append(out, words...)
	for i := 0; i+1 < len(words); i++ {
		out = append(out, words[i]+" "+words[i+1])
	}
	return out
}

// sortedGroups gives deterministic iteration so equal scores always pick
// the same primary group.
func sortedGroups(scores map[string]float64) []string {
	groups := make([]string, 0, len(scores))
	for g := range scores {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}

// LabelTable labels every row in place, adding the scoring columns the
// labeled catalog carries.
func LabelTable(table *Table) {
	table.AddColumn("group_scores")
	table.AddColumn("primary_group")
	table.AddColumn("group_score")
	for _, row := range table.Rows {
		label := LabelBook(row)
		row["group_scores"] = formatScores(label.Scores)
		row["primary_group"] = label.PrimaryGroup
		row["group_score"] = fmt.Sprintf("%.4f", label.Score)
	}
}

func formatScores(scores map[string]float64) string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, group := range sortedGroups(scores) {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%q: %.4f", group, scores[group])
	}
	sb.WriteString("}")
	return sb.String()
}
