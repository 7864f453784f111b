// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"log/slog"

	"github.com/google/uuid"

	"inkwell/internal/models"
	"inkwell/internal/readingtime"
)

// Fallback values applied when a post's joins come back empty.
const (
	unknownAuthor       = "Unknown Author"
	uncategorizedName   = "Uncategorized"
	uncategorizedSlug   = "uncategorized"
	placeholderImageURL = "https://images.pexels.com/photos/274506/pexels-photo-274506.jpeg"

	// DefaultRecentLimit bounds the recent-posts listing when the caller
	// does not supply a limit.
	DefaultRecentLimit = 4

	// defaultCategoryColor is reported for every category; colors are
	// not stored.
	defaultCategoryColor = "#2563eb"
)

// AllPosts returns every published post as a display record, most
// recently published first. Storage failures degrade to an empty list.
func (r *Repository) AllPosts() []models.PostView {
	posts, err := r.posts.ListPublished()
	if err != nil {
		slog.Error("fetch published posts failed", "error", err)
		return []models.PostView{}
	}
	return r.displayPosts(posts)
}

// PostBySlug returns the published post with the given slug, or nil when
// no such post exists (drafts and scheduled posts never match) or the
// fetch fails.
func (r *Repository) PostBySlug(slug string) *models.PostView {
	post, err := r.posts.FindPublishedBySlug(slug)
	if err != nil {
		slog.Error("fetch post by slug failed", "error", err, "slug", slug)
		return nil
	}
	if post == nil {
		return nil
	}
	view := r.displayPost(post)
	return &view
}

// PostsByCategory returns the published posts in the category with the
// given slug, most recently published first.
func (r *Repository) PostsByCategory(categorySlug string) []models.PostView {
	posts, err := r.posts.ListPublishedByCategory(categorySlug)
	if err != nil {
		slog.Error("fetch posts by category failed", "error", err, "category", categorySlug)
		return []models.PostView{}
	}
	return r.displayPosts(posts)
}

// RecentPosts returns the most recently published posts. A non-positive
// limit falls back to DefaultRecentLimit.
func (r *Repository) RecentPosts(limit int) []models.PostView {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	posts, err := r.posts.ListRecent(limit)
	if err != nil {
		slog.Error("fetch recent posts failed", "error", err)
		return []models.PostView{}
	}
	return r.displayPosts(posts)
}

// FeaturedPost returns the most recently published post, or nil when
// nothing is published.
func (r *Repository) FeaturedPost() *models.PostView {
	posts := r.AllPosts()
	if len(posts) == 0 {
		return nil
	}
	return &posts[0]
}

// AdminPosts returns every post regardless of status as compact admin
// rows, newest created first. Tags are not fetched for the listing.
func (r *Repository) AdminPosts() []models.AdminPostRow {
	posts, err := r.posts.ListAll()
	if err != nil {
		slog.Error("fetch admin posts failed", "error", err)
		return []models.AdminPostRow{}
	}

	rows := make([]models.AdminPostRow, 0, len(posts))
	for i := range posts {
		p := &posts[i]
		row := models.AdminPostRow{
			ID:       p.ID,
			Title:    p.Title,
			Slug:     p.Slug,
			Author:   stringOr(p.AuthorName, unknownAuthor),
			Status:   p.Status,
			Category: stringOr(p.CategoryName, uncategorizedName),
			Tags:     []models.TagRef{},
		}
		if p.PublishedAt != nil {
			date := p.PublishedAt.Format("2006-01-02")
			row.PublishDate = &date
		}
		rows = append(rows, row)
	}
	return rows
}

// AdminPostByID returns a post by primary key regardless of status, or
// nil on absence or fetch failure. Unlike the public read paths it
// preserves a null publish time and a missing featured image.
func (r *Repository) AdminPostByID(id uuid.UUID) *models.PostView {
	post, err := r.posts.FindByID(id)
	if err != nil {
		slog.Error("fetch post by id failed", "error", err, "id", id)
		return nil
	}
	if post == nil {
		return nil
	}

	view := r.baseView(post)
	view.FeaturedImageURL = post.FeaturedImageURL
	view.PublishedAt = post.PublishedAt
	return &view
}

// Categories returns all categories as display records ordered by name.
func (r *Repository) Categories() []models.CategoryView {
	categories, err := r.categories.List()
	if err != nil {
		slog.Error("fetch categories failed", "error", err)
		return []models.CategoryView{}
	}

	views := make([]models.CategoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, models.CategoryView{
			ID:          c.ID,
			Name:        c.Name,
			Slug:        c.Slug,
			Description: stringOr(c.Description, ""),
			PostsCount:  0, // would need to count posts
			Color:       defaultCategoryColor,
			IsActive:    true,
			CreatedAt:   c.CreatedAt,
			UpdatedAt:   c.CreatedAt,
		})
	}
	return views
}

// CategoryBySlug returns the raw category row for the given slug, or nil
// on absence or fetch failure.
func (r *Repository) CategoryBySlug(slug string) *models.Category {
	category, err := r.categories.FindBySlug(slug)
	if err != nil {
		slog.Error("fetch category by slug failed", "error", err, "slug", slug)
		return nil
	}
	return category
}

// CommentsForPost returns the approved comments for a post, oldest first.
func (r *Repository) CommentsForPost(postID uuid.UUID) []models.Comment {
	comments, err := r.comments.ListApprovedByPost(postID)
	if err != nil {
		slog.Error("fetch comments failed", "error", err, "post_id", postID)
		return []models.Comment{}
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments
}

// displayPosts maps a batch of joined rows to display records.
func (r *Repository) displayPosts(posts []models.Post) []models.PostView {
	views := make([]models.PostView, 0, len(posts))
	for i := range posts {
		views = append(views, r.displayPost(&posts[i]))
	}
	return views
}

// displayPost builds the public display record: the featured image falls
// back to a placeholder and the publish time falls back to the creation
// time.
func (r *Repository) displayPost(p *models.Post) models.PostView {
	view := r.baseView(p)

	if view.FeaturedImageURL == nil {
		placeholder := placeholderImageURL
		view.FeaturedImageURL = &placeholder
	}
	if view.PublishedAt == nil {
		createdAt := p.CreatedAt
		view.PublishedAt = &createdAt
	}
	return view
}

// baseView maps a joined post row to a display record with the author,
// category, and tag fallbacks applied. Tags are fetched per post; a tag
// fetch failure degrades to an empty list like any other read error.
func (r *Repository) baseView(p *models.Post) models.PostView {
	tags, err := r.tags.ListByPost(p.ID)
	if err != nil {
		slog.Error("fetch post tags failed", "error", err, "post_id", p.ID)
	}
	tagRefs := make([]models.TagRef, 0, len(tags))
	for _, t := range tags {
		tagRefs = append(tagRefs, models.TagRef{Name: t.Name, Slug: t.Slug})
	}

	return models.PostView{
		ID:               p.ID,
		Title:            p.Title,
		Slug:             p.Slug,
		Excerpt:          stringOr(p.Excerpt, ""),
		Content:          p.Content,
		FeaturedImageURL: p.FeaturedImageURL,
		Author: models.PostAuthor{
			Name:   stringOr(p.AuthorName, unknownAuthor),
			Bio:    stringOr(p.AuthorBio, ""),
			Avatar: p.AuthorAvatar,
		},
		Category: models.PostCategory{
			Name: stringOr(p.CategoryName, uncategorizedName),
			Slug: stringOr(p.CategorySlug, uncategorizedSlug),
		},
		Tags:            tagRefs,
		Status:          p.Status,
		PublishedAt:     p.PublishedAt,
		ScheduledAt:     p.ScheduledAt,
		UpdatedAt:       p.UpdatedAt,
		Views:           0, // would need a separate analytics collaborator
		CommentsCount:   0,
		ReadingTime:     readingtime.Estimate(p.Content),
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
	}
}

// stringOr dereferences s, returning fallback when s is nil.
func stringOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
