// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for post and comment fields.
const (
	maxTitleLen       = 300
	maxSlugLen        = 300
	maxBodyLen        = 100_000
	maxCommentLen     = 5_000
	maxAuthorNameLen  = 200
	maxAuthorEmailLen = 320
)

// validatePost checks post inputs and returns the first error found.
func validatePost(title, slug, body string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if utf8.RuneCountInString(slug) > maxSlugLen {
		return "Slug is too long (max 300 characters)."
	}
	if strings.TrimSpace(body) == "" {
		return "Content is required."
	}
	if utf8.RuneCountInString(body) > maxBodyLen {
		return "Content is too long (max 100,000 characters)."
	}
	return ""
}

// validateComment checks comment inputs and returns the first error found.
func validateComment(authorName, authorEmail, body string) string {
	authorName = strings.TrimSpace(authorName)
	if authorName == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(authorName) > maxAuthorNameLen {
		return "Name is too long (max 200 characters)."
	}
	authorEmail = strings.TrimSpace(authorEmail)
	if authorEmail == "" {
		return "Email is required."
	}
	if !strings.Contains(authorEmail, "@") || utf8.RuneCountInString(authorEmail) > maxAuthorEmailLen {
		return "Email is not valid."
	}
	if strings.TrimSpace(body) == "" {
		return "Comment text is required."
	}
	if utf8.RuneCountInString(body) > maxCommentLen {
		return "Comment is too long (max 5,000 characters)."
	}
	return ""
}
