package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, ".png", normalizeExt("png"))
	assert.Equal(t, ".jpg", normalizeExt(" .JPG "))
	assert.Equal(t, ".tiff", normalizeExt(".tiff"))
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", firstNonEmpty("", "b", "c"))
	assert.Equal(t, "", firstNonEmpty("", ""))
}
