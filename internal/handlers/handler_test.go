// handler_test.go provides shared test infrastructure for handler tests.
// Handlers are exercised through the full router with stub stores behind
// the content repository, so middleware and URL params behave as in
// production.
package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"inkwell/internal/content"
	"inkwell/internal/handlers"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/router"
)

// stubStores is a bundle of in-memory store stubs backing a test server.
type stubStores struct {
	posts    *stubPostStore
	comments *stubCommentStore
}

type stubPostStore struct {
	posts   []models.Post
	created *models.Post
	updated *models.Post
	deleted []uuid.UUID
}

func (s *stubPostStore) ListPublished() ([]models.Post, error) {
	var out []models.Post
	for _, p := range s.posts {
		if p.Status == models.PostStatusPublished {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubPostStore) ListRecent(limit int) ([]models.Post, error) {
	out, _ := s.ListPublished()
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubPostStore) ListPublishedByCategory(categorySlug string) ([]models.Post, error) {
	var out []models.Post
	for _, p := range s.posts {
		if p.Status == models.PostStatusPublished && p.CategorySlug != nil && *p.CategorySlug == categorySlug {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubPostStore) FindPublishedBySlug(slug string) (*models.Post, error) {
	for i := range s.posts {
		if s.posts[i].Slug == slug && s.posts[i].Status == models.PostStatusPublished {
			return &s.posts[i], nil
		}
	}
	return nil, nil
}

func (s *stubPostStore) FindByID(id uuid.UUID) (*models.Post, error) {
	for i := range s.posts {
		if s.posts[i].ID == id {
			return &s.posts[i], nil
		}
	}
	return nil, nil
}

func (s *stubPostStore) ListAll() ([]models.Post, error) {
	return s.posts, nil
}

func (s *stubPostStore) Create(p *models.Post) (*models.Post, error) {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	s.created = p
	s.posts = append(s.posts, *p)
	return p, nil
}

func (s *stubPostStore) Update(p *models.Post) (*models.Post, error) {
	s.updated = p
	return p, nil
}

func (s *stubPostStore) Delete(id uuid.UUID) error {
	s.deleted = append(s.deleted, id)
	return nil
}

type stubProfileStore struct{}

func (s *stubProfileStore) Upsert(userID uuid.UUID, displayName string) (*models.Profile, error) {
	return &models.Profile{ID: uuid.New(), UserID: userID, DisplayName: displayName}, nil
}

type stubCategoryStore struct{}

func (s *stubCategoryStore) List() ([]models.Category, error) { return nil, nil }

func (s *stubCategoryStore) FindBySlug(slug string) (*models.Category, error) { return nil, nil }

func (s *stubCategoryStore) Ensure(name, slug, description string) (*models.Category, error) {
	return &models.Category{ID: uuid.New(), Name: name, Slug: slug}, nil
}

type stubTagStore struct{}

func (s *stubTagStore) Ensure(name, slug string) (*models.Tag, error) {
	return &models.Tag{ID: uuid.New(), Name: name, Slug: slug}, nil
}

func (s *stubTagStore) ListByPost(postID uuid.UUID) ([]models.Tag, error) { return nil, nil }

func (s *stubTagStore) ReplaceForPost(postID uuid.UUID, tagIDs []uuid.UUID) error { return nil }

type stubCommentStore struct {
	comments []models.Comment
	created  *models.Comment
}

func (s *stubCommentStore) ListApprovedByPost(postID uuid.UUID) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range s.comments {
		if c.PostID == postID && c.Status == models.CommentStatusApproved {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *stubCommentStore) Create(c *models.Comment) (*models.Comment, error) {
	c.ID = uuid.New()
	c.Status = models.CommentStatusPending
	c.CreatedAt = time.Now()
	s.created = c
	s.comments = append(s.comments, *c)
	return c, nil
}

// newTestServer wires stub stores through the repository, handlers, and
// router. The session store is nil: cookie-less requests never touch it.
func newTestServer(posts ...models.Post) (*httptest.Server, *stubStores) {
	stubs := &stubStores{
		posts:    &stubPostStore{posts: posts},
		comments: &stubCommentStore{},
	}

	repo := content.NewRepository(
		stubs.posts, &stubProfileStore{}, &stubCategoryStore{}, &stubTagStore{}, stubs.comments,
	)

	r := router.New(nil, handlers.NewAdmin(repo), nil, handlers.NewPublic(repo))
	return httptest.NewServer(r), stubs
}

// csrfCookie primes a CSRF token with a safe request and returns the
// cookie whose value state-changing requests must echo in the
// X-CSRF-Token header.
func csrfCookie(t *testing.T, srv *httptest.Server) *http.Cookie {
	t.Helper()

	resp, err := http.Get(srv.URL + "/api/posts")
	if err != nil {
		t.Fatalf("prime CSRF token: %v", err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	for _, c := range resp.Cookies() {
		if c.Name == middleware.CSRFCookieName {
			return c
		}
	}
	t.Fatal("no CSRF cookie issued")
	return nil
}

// postJSON sends a CSRF-equipped JSON POST to the test server.
func postJSON(t *testing.T, srv *httptest.Server, path, body string) *http.Response {
	t.Helper()

	cookie := csrfCookie(t, srv)
	req, err := http.NewRequest(http.MethodPost, srv.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.CSRFHeaderName, cookie.Value)
	req.AddCookie(cookie)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

// publishedPost builds a minimal published post for listing tests.
func publishedPost(slug string) models.Post {
	now := time.Now()
	return models.Post{
		ID:          uuid.New(),
		Title:       "Post " + slug,
		Slug:        slug,
		Content:     "<p>Body</p>",
		AuthorID:    uuid.New(),
		Status:      models.PostStatusPublished,
		PublishedAt: &now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
