package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitText_ShortTextSingleChunk(t *testing.T) {
	chunks := SplitText("hello world", 100, 10)
	assert.Equal(t, []string{"hello world"}, chunks)
}

func TestSplitText_Empty(t *testing.T) {
	assert.Empty(t, SplitText("", 100, 10))
	assert.Empty(t, SplitText("   ", 100, 10))
}

func TestSplitText_OverlapCarriesContext(t *testing.T) {
	text := strings.Repeat("abcdefghij", 30) // 300 chars
	chunks := SplitText(text, 100, 20)

	assert.Greater(t, len(chunks), 2)
	for i := 1; i < len(chunks); i++ {
		// Every chunk should start with the tail of the previous one.
		prevTail := chunks[i-1][len(chunks[i-1])-20:]
		assert.True(t, strings.HasPrefix(chunks[i], prevTail))
	}
}

func TestSplitText_CoversWholeInput(t *testing.T) {
	text := strings.Repeat("resume content ", 50)
	chunks := SplitText(text, 120, 30)

	joined := strings.Join(chunks, "")
	for _, word := range []string{"resume", "content"} {
		assert.Contains(t, joined, word)
	}
	assert.Contains(t, chunks[len(chunks)-1], strings.TrimSpace(text)[len(strings.TrimSpace(text))-10:])
}
