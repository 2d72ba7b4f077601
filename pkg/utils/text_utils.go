package utils

import (
	"regexp"
	"strings"
)

// vietnameseWord keeps word characters plus accented Vietnamese letters.
// Everything else (punctuation, emoji, digits already covered by \w) is
// replaced by a space before tokenizing.
var vietnameseWord = regexp.MustCompile(`[^\w\sáàảãạăắằẳẵặâấầẩẫậéèẻẽẹêếềểễệíìỉĩịóòỏõọôốồổỗộơớờởỡợúùủũụưứừửữựýỳỷỹỵđ]`)

var whitespace = regexp.MustCompile(`\s+`)

// Minimal Vietnamese stop-word list for the catalog labeler. Only words that
// carry no signal in book summaries, plus store boilerplate like "tiki".
var stopWords = map[string]struct{}{
	"của": {}, "và": {}, "là": {}, "có": {}, "một": {}, "những": {}, "để": {},
	"cho": {}, "tôi": {}, "mình": {}, "sách": {}, "cuốn": {}, "này": {},
	"với": {}, "như": {}, "bạn": {}, "các": {}, "mà": {}, "đã": {},
	"trong": {}, "từ": {}, "khi": {}, "thì": {}, "họ": {}, "ra": {},
	"lại": {}, "đi": {}, "cũng": {}, "về": {}, "trên": {}, "dưới": {},
	"gì": {}, "ai": {}, "nào": {}, "không": {}, "còn": {}, "được": {},
	"làm": {}, "bị": {}, "cách": {}, "thế": {}, "tiki": {}, "nhà": {},
	"xuất": {}, "bản": {},
}

// CleanWords lowercases text, strips everything but Vietnamese word
// characters and returns the remaining tokens with stop words removed.
func CleanWords(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	lower = vietnameseWord.ReplaceAllString(lower, " ")
	lower = strings.TrimSpace(whitespace.ReplaceAllString(lower, " "))

	words := strings.Fields(lower)
	out := make([]string, 0, len(words))
	for _, w := range words {
		if len([]rune(w)) <= 2 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		out = append(out, w)
	}
	return out
}

// TruncateWords limits free text to at most n words. Book content can run to
// thousands of words and detail views only show the opening.
func TruncateWords(text string, n int) string {
	words := strings.Fields(text)
	if len(words) <= n {
		return text
	}
	return strings.Join(words[:n], " ") + "..."
}
