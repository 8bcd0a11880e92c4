package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bussola/internal/core/domain"
)

func TestIsInstagramFeed(t *testing.T) {
	tests := []struct {
		category       string
		includeStories bool
		want           bool
	}{
		{"post", false, true},
		{"reels", false, true},
		{"carousel", true, true},
		{"stories", false, false},
		{"stories", true, true},
		{"text", false, false},
		{"text", true, false},
		{"", true, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.IsInstagramFeed(tt.category, tt.includeStories), "%s/%v", tt.category, tt.includeStories)
	}
}

func TestClassifyMediaKind(t *testing.T) {
	assert.Equal(t, domain.MediaKindVideo, domain.ClassifyMediaKind("clip.mp4"))
	assert.Equal(t, domain.MediaKindVideo, domain.ClassifyMediaKind("Making Of.MOV"))
	assert.Equal(t, domain.MediaKindImage, domain.ClassifyMediaKind("cover.jpg"))
	assert.Equal(t, domain.MediaKindImage, domain.ClassifyMediaKind("no-extension"))
	assert.Equal(t, domain.MediaKindImage, domain.ClassifyMediaKind("archive.mp4.zip"))
}
