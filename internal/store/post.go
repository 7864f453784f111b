// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"inkwell/internal/models"
)

// PostStore handles all post-related database operations. Read queries
// join the author profile and category so callers get denormalization
// inputs in one round trip; tags are fetched separately through the
// TagStore.
type PostStore struct {
	db *sql.DB
}

// NewPostStore creates a new PostStore with the given database connection.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

// postJoinSelect is the joined projection used by every read query.
// Profiles and categories are LEFT JOINed — a post with a dangling
// author or no category still comes back, with NULLs for the join side.
const postJoinSelect = `
	SELECT p.id, p.title, p.slug, p.excerpt, p.content, p.featured_image_url,
	       p.author_id, p.category_id, p.status, p.scheduled_at, p.published_at,
	       p.created_at, p.updated_at, p.meta_title, p.meta_description, p.meta_keywords,
	       pr.display_name, pr.bio, pr.avatar_url,
	       c.name, c.slug
	FROM posts p
	LEFT JOIN profiles pr ON pr.id = p.author_id
	LEFT JOIN categories c ON c.id = p.category_id`

// scanJoinedPost scans one joined row, decoding the meta_keywords JSON
// array and filling the virtual author/category fields.
func scanJoinedPost(scanner interface{ Scan(...any) error }) (*models.Post, error) {
	var p models.Post
	var keywords []byte
	err := scanner.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.FeaturedImageURL,
		&p.AuthorID, &p.CategoryID, &p.Status, &p.ScheduledAt, &p.PublishedAt,
		&p.CreatedAt, &p.UpdatedAt, &p.MetaTitle, &p.MetaDescription, &keywords,
		&p.AuthorName, &p.AuthorBio, &p.AuthorAvatar,
		&p.CategoryName, &p.CategorySlug,
	)
	if err != nil {
		return nil, err
	}
	if len(keywords) > 0 {
		if err := json.Unmarshal(keywords, &p.MetaKeywords); err != nil {
			return nil, fmt.Errorf("decode meta keywords: %w", err)
		}
	}
	return &p, nil
}

// collectJoinedPosts drains a result set of joined post rows.
func collectJoinedPosts(rows *sql.Rows) ([]models.Post, error) {
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		p, err := scanJoinedPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

// ListPublished returns all published posts with author and category
// joined, most recently published first.
func (s *PostStore) ListPublished() ([]models.Post, error) {
	rows, err := s.db.Query(postJoinSelect + `
		WHERE p.status = 'published'
		ORDER BY p.published_at DESC NULLS LAST`)
	if err != nil {
		return nil, fmt.Errorf("list published posts: %w", err)
	}
	return collectJoinedPosts(rows)
}

// ListRecent returns the most recently published posts, bounded by limit.
func (s *PostStore) ListRecent(limit int) ([]models.Post, error) {
	rows, err := s.db.Query(postJoinSelect+`
		WHERE p.status = 'published'
		ORDER BY p.published_at DESC NULLS LAST
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent posts: %w", err)
	}
	return collectJoinedPosts(rows)
}

// ListPublishedByCategory returns published posts whose category matches
// the given slug. The category join is inner here: uncategorized posts
// never match.
func (s *PostStore) ListPublishedByCategory(categorySlug string) ([]models.Post, error) {
	rows, err := s.db.Query(`
		SELECT p.id, p.title, p.slug, p.excerpt, p.content, p.featured_image_url,
		       p.author_id, p.category_id, p.status, p.scheduled_at, p.published_at,
		       p.created_at, p.updated_at, p.meta_title, p.meta_description, p.meta_keywords,
		       pr.display_name, pr.bio, pr.avatar_url,
		       c.name, c.slug
		FROM posts p
		LEFT JOIN profiles pr ON pr.id = p.author_id
		JOIN categories c ON c.id = p.category_id
		WHERE c.slug = $1 AND p.status = 'published'
		ORDER BY p.published_at DESC NULLS LAST`, categorySlug)
	if err != nil {
		return nil, fmt.Errorf("list posts by category: %w", err)
	}
	return collectJoinedPosts(rows)
}

// FindPublishedBySlug retrieves a published post by its slug. Drafts and
// scheduled posts are invisible here. Returns nil if not found.
func (s *PostStore) FindPublishedBySlug(slug string) (*models.Post, error) {
	row := s.db.QueryRow(postJoinSelect+`
		WHERE p.slug = $1 AND p.status = 'published'`, slug)
	p, err := scanJoinedPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by slug: %w", err)
	}
	return p, nil
}

// FindByID retrieves a post by primary key regardless of status.
// Returns nil if not found.
func (s *PostStore) FindByID(id uuid.UUID) (*models.Post, error) {
	row := s.db.QueryRow(postJoinSelect+` WHERE p.id = $1`, id)
	p, err := scanJoinedPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	return p, nil
}

// ListAll returns every post regardless of status, newest created first.
// Used by the admin listing.
func (s *PostStore) ListAll() ([]models.Post, error) {
	rows, err := s.db.Query(postJoinSelect + ` ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list all posts: %w", err)
	}
	return collectJoinedPosts(rows)
}

const postReturning = `id, title, slug, excerpt, content, featured_image_url,
	       author_id, category_id, status, scheduled_at, published_at,
	       created_at, updated_at, meta_title, meta_description, meta_keywords`

// scanPost scans a bare (unjoined) post row.
func scanPost(scanner interface{ Scan(...any) error }) (*models.Post, error) {
	var p models.Post
	var keywords []byte
	err := scanner.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.FeaturedImageURL,
		&p.AuthorID, &p.CategoryID, &p.Status, &p.ScheduledAt, &p.PublishedAt,
		&p.CreatedAt, &p.UpdatedAt, &p.MetaTitle, &p.MetaDescription, &keywords,
	)
	if err != nil {
		return nil, err
	}
	if len(keywords) > 0 {
		if err := json.Unmarshal(keywords, &p.MetaKeywords); err != nil {
			return nil, fmt.Errorf("decode meta keywords: %w", err)
		}
	}
	return &p, nil
}

// encodeKeywords serializes the meta keyword list for the jsonb column.
// A nil list stores as an empty array.
func encodeKeywords(keywords []string) ([]byte, error) {
	if keywords == nil {
		keywords = []string{}
	}
	b, err := json.Marshal(keywords)
	if err != nil {
		return nil, fmt.Errorf("encode meta keywords: %w", err)
	}
	return b, nil
}

// Create inserts a new post and returns it with generated fields filled.
// If the post is created directly in published status with no explicit
// publish time, published_at is set to now.
func (s *PostStore) Create(p *models.Post) (*models.Post, error) {
	if p.Status == models.PostStatusPublished && p.PublishedAt == nil {
		now := time.Now()
		p.PublishedAt = &now
	}

	keywords, err := encodeKeywords(p.MetaKeywords)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRow(`
		INSERT INTO posts (title, slug, excerpt, content, featured_image_url,
		                   author_id, category_id, status, scheduled_at, published_at,
		                   meta_title, meta_description, meta_keywords)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING `+postReturning,
		p.Title, p.Slug, p.Excerpt, p.Content, p.FeaturedImageURL,
		p.AuthorID, p.CategoryID, p.Status, p.ScheduledAt, p.PublishedAt,
		p.MetaTitle, p.MetaDescription, keywords,
	)
	result, err := scanPost(row)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return result, nil
}

// Update overwrites every mutable field of an existing post and returns
// the stored row. Fields left nil on the struct are nulled in storage —
// this is full replacement, not a patch.
func (s *PostStore) Update(p *models.Post) (*models.Post, error) {
	keywords, err := encodeKeywords(p.MetaKeywords)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRow(`
		UPDATE posts SET
			title = $1, slug = $2, excerpt = $3, content = $4,
			featured_image_url = $5, category_id = $6, status = $7,
			scheduled_at = $8, published_at = $9,
			meta_title = $10, meta_description = $11, meta_keywords = $12,
			updated_at = NOW()
		WHERE id = $13
		RETURNING `+postReturning,
		p.Title, p.Slug, p.Excerpt, p.Content,
		p.FeaturedImageURL, p.CategoryID, p.Status,
		p.ScheduledAt, p.PublishedAt,
		p.MetaTitle, p.MetaDescription, keywords, p.ID,
	)
	result, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("update post: no post with id %s", p.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return result, nil
}

// Delete removes a post by ID. Association rows and comments are cleaned
// up by the schema's ON DELETE CASCADE. Deleting an id that does not
// exist is a no-op, not an error.
func (s *PostStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}
