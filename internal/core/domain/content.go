package domain

import (
	"path/filepath"
	"strings"
)

// Content categories with Instagram publishing semantics.
const (
	CategoryPost     = "post"
	CategoryReels    = "reels"
	CategoryCarousel = "carousel"
	CategoryStories  = "stories"
)

type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

// IsInstagramFeed reports whether category publishes to the Instagram feed.
// Stories only count when includeStories is set.
func IsInstagramFeed(category string, includeStories bool) bool {
	switch category {
	case CategoryPost, CategoryReels, CategoryCarousel:
		return true
	case CategoryStories:
		return includeStories
	default:
		return false
	}
}

// ClassifyMediaKind guesses the media kind of an uploaded file from its extension.
func ClassifyMediaKind(filename string) MediaKind {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mp4", ".mov":
		return MediaKindVideo
	default:
		return MediaKindImage
	}
}
