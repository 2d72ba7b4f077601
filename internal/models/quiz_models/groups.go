package quiz_models

// Group is one of the five reading-personality archetypes.
type Group string

const (
	GroupKetNoi    Group = "Kết nối"
	GroupTuDo      Group = "Tự do"
	GroupTriThuc   Group = "Tri thức"
	GroupChinhPhuc Group = "Chinh phục"
	GroupKienTao   Group = "Kiến tạo"
)

// AllGroups is the canonical declaration order. Score maps and response
// payloads list groups in this order.
var AllGroups = []Group{
	GroupKetNoi,
	GroupTuDo,
	GroupTriThuc,
	GroupChinhPhuc,
	GroupKienTao,
}

var EnglishNames = map[Group]string{
	GroupKetNoi:    "The Connectors",
	GroupTuDo:      "The Individuals",
	GroupTriThuc:   "The Thinkers",
	GroupChinhPhuc: "The Achievers",
	GroupKienTao:   "The Builders",
}

// SynthesizerSuffix is appended to the display name when the synthesizer
// trait is active.
const SynthesizerSuffix = "–Synthesizer"

func IsCanonicalGroup(g Group) bool {
	for _, known := range AllGroups {
		if known == g {
			return true
		}
	}
	return false
}
