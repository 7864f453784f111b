// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures that map to database tables
// and the display-shaped records returned by the content repository.
package models

import (
	"time"

	"github.com/google/uuid"
)

// PostStatus represents the publishing state of a post.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
	PostStatusScheduled PostStatus = "scheduled"
)

// Post represents a blog post row. A post always references an author
// profile; the category is optional.
type Post struct {
	ID               uuid.UUID  `json:"id"`
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	Excerpt          *string    `json:"excerpt,omitempty"`
	Content          string     `json:"content"`
	FeaturedImageURL *string    `json:"featured_image_url,omitempty"`
	AuthorID         uuid.UUID  `json:"author_id"`
	CategoryID       *uuid.UUID `json:"category_id,omitempty"`
	Status           PostStatus `json:"status"`
	ScheduledAt      *time.Time `json:"scheduled_at,omitempty"`
	PublishedAt      *time.Time `json:"published_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	MetaTitle        *string    `json:"meta_title,omitempty"`
	MetaDescription  *string    `json:"meta_description,omitempty"`
	MetaKeywords     []string   `json:"meta_keywords,omitempty"`

	// Virtual fields populated by joined store queries.
	AuthorName   *string `json:"-"`
	AuthorBio    *string `json:"-"`
	AuthorAvatar *string `json:"-"`
	CategoryName *string `json:"-"`
	CategorySlug *string `json:"-"`
	Tags         []Tag   `json:"-"`
}

// IsPublished returns true if the post is in published status.
func (p *Post) IsPublished() bool {
	return p.Status == PostStatusPublished
}

// PostAuthor is the author portion of a display-shaped post.
type PostAuthor struct {
	Name   string  `json:"name"`
	Bio    string  `json:"bio"`
	Avatar *string `json:"avatar"`
}

// PostCategory is the category portion of a display-shaped post.
type PostCategory struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// TagRef is a tag reference inside a display-shaped post.
type TagRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// PostView is the denormalized, display-shaped record the read path
// returns. Missing joins are replaced with deterministic fallbacks by
// the content repository. Views and CommentsCount are always zero —
// analytics would need a separate counting collaborator.
type PostView struct {
	ID               uuid.UUID    `json:"id"`
	Title            string       `json:"title"`
	Slug             string       `json:"slug"`
	Excerpt          string       `json:"excerpt"`
	Content          string       `json:"content"`
	FeaturedImageURL *string      `json:"featuredImageUrl"`
	Author           PostAuthor   `json:"author"`
	Category         PostCategory `json:"category"`
	Tags             []TagRef     `json:"tags"`
	Status           PostStatus   `json:"status"`
	PublishedAt      *time.Time   `json:"publishedAt"`
	ScheduledAt      *time.Time   `json:"scheduledAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
	Views            int          `json:"views"`
	CommentsCount    int          `json:"commentsCount"`
	ReadingTime      int          `json:"readingTime"`
	MetaTitle        *string      `json:"metaTitle"`
	MetaDescription  *string      `json:"metaDescription"`
}

// AdminPostRow is the compact row shape used by the admin post listing.
// Tags are not fetched for the listing and PublishDate holds only the
// date portion of published_at, nil for unpublished posts.
type AdminPostRow struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Author      string     `json:"author"`
	Status      PostStatus `json:"status"`
	Category    string     `json:"category"`
	Tags        []TagRef   `json:"tags"`
	PublishDate *string    `json:"publishDate"`
	Views       int        `json:"views"`
	Comments    int        `json:"comments"`
}
