// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content implements the content repository: denormalized read
// operations over posts, categories, tags, and comments, and the
// multi-step write workflow that keeps their references consistent.
//
// The error policy is two-tier. Read operations back public rendering,
// so storage failures are logged and masked — callers get an empty list
// or an absent record, never an error. Write operations surface any
// failure on the primary entity; subordinate writes (profile, category,
// and tag resolution, tag associations) are best-effort and only logged.
package content

import (
	"errors"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"inkwell/internal/models"
)

// ErrNotAuthenticated is returned when a post is created without an
// authenticated caller. It is raised before any row is written.
var ErrNotAuthenticated = errors.New("content: caller is not authenticated")

// Identity is the authenticated caller of a write operation, as exposed
// by the session collaborator.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// PostStore is the post persistence dependency of the repository.
type PostStore interface {
	ListPublished() ([]models.Post, error)
	ListRecent(limit int) ([]models.Post, error)
	ListPublishedByCategory(categorySlug string) ([]models.Post, error)
	FindPublishedBySlug(slug string) (*models.Post, error)
	FindByID(id uuid.UUID) (*models.Post, error)
	ListAll() ([]models.Post, error)
	Create(p *models.Post) (*models.Post, error)
	Update(p *models.Post) (*models.Post, error)
	Delete(id uuid.UUID) error
}

// ProfileStore resolves author profiles by identity.
type ProfileStore interface {
	Upsert(userID uuid.UUID, displayName string) (*models.Profile, error)
}

// CategoryStore resolves and lists categories.
type CategoryStore interface {
	List() ([]models.Category, error)
	FindBySlug(slug string) (*models.Category, error)
	Ensure(name, slug, description string) (*models.Category, error)
}

// TagStore resolves tags and rewrites post associations.
type TagStore interface {
	Ensure(name, slug string) (*models.Tag, error)
	ListByPost(postID uuid.UUID) ([]models.Tag, error)
	ReplaceForPost(postID uuid.UUID, tagIDs []uuid.UUID) error
}

// CommentStore lists and creates reader comments.
type CommentStore interface {
	ListApprovedByPost(postID uuid.UUID) ([]models.Comment, error)
	Create(c *models.Comment) (*models.Comment, error)
}

// Repository is the single entry point for all content operations.
// It holds no cross-request state; every method is an independent
// sequence of storage calls.
type Repository struct {
	posts      PostStore
	profiles   ProfileStore
	categories CategoryStore
	tags       TagStore
	comments   CommentStore
	sanitizer  *bluemonday.Policy
}

// NewRepository creates a content repository over the given stores.
func NewRepository(posts PostStore, profiles ProfileStore, categories CategoryStore, tags TagStore, comments CommentStore) *Repository {
	return &Repository{
		posts:      posts,
		profiles:   profiles,
		categories: categories,
		tags:       tags,
		comments:   comments,
		sanitizer:  bluemonday.UGCPolicy(),
	}
}
