package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTicker(t *testing.T) {
	assert.Equal(t, "AAPL", NormalizeTicker("  aapl \n"))
	assert.Equal(t, "BRK.B", NormalizeTicker("brk.b"))
	assert.Equal(t, "", NormalizeTicker("   "))
	assert.Equal(t, "ABC", NormalizeTicker("a\xffbc"))
}

func TestCapitalizeSentence(t *testing.T) {
	assert.Equal(t, "Positive", CapitalizeSentence("positive"))
	assert.Equal(t, "", CapitalizeSentence("  "))
}
