package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanWords(t *testing.T) {
	words := CleanWords("Cuốn sách này nói về KHOA HỌC, lịch sử... và tâm-lý!")
	assert.Equal(t, []string{"nói", "khoa", "học", "lịch", "tâm"}, words)

	assert.Nil(t, CleanWords(""))
	assert.Empty(t, CleanWords("và của là"))
}

func TestCleanWordsKeepsAccents(t *testing.T) {
	words := CleanWords("Nghệ thuật sống đẹp")
	assert.Contains(t, words, "nghệ")
	assert.Contains(t, words, "thuật")
	assert.Contains(t, words, "sống")
	assert.Contains(t, words, "đẹp")
}

func TestTruncateWords(t *testing.T) {
	assert.Equal(t, "ngắn gọn", TruncateWords("ngắn gọn", 5))

	long := strings.Repeat("từ ", 200)
	truncated := TruncateWords(long, 100)
	assert.True(t, strings.HasSuffix(truncated, "..."))
	assert.Len(t, strings.Fields(truncated), 100)
}
