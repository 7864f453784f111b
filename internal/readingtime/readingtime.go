// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package readingtime estimates how long a piece of content takes to read.
package readingtime

import (
	"regexp"
	"strings"
)

// wordsPerMinute is the assumed average reading speed.
const wordsPerMinute = 200

// htmlTag matches anything between angle brackets. Content bodies are
// stored as HTML; tags do not count as readable words. This is a simple
// strip, not an HTML parser.
var htmlTag = regexp.MustCompile(`<[^>]*>`)

// Estimate returns the reading time in whole minutes for the given HTML
// content, rounding up. Any non-empty text reads in at least one minute.
// Empty or tag-only content reads in zero minutes. Tags are removed
// outright, so words separated only by markup count as one word.
func Estimate(content string) int {
	text := htmlTag.ReplaceAllString(content, "")
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}
	return (len(words) + wordsPerMinute - 1) / wordsPerMinute
}
