// fakes_test.go provides in-memory store fakes for repository policy
// tests. Each fake records the calls it receives and can be primed with
// rows or an injected error.
package content

import (
	"errors"

	"github.com/google/uuid"

	"inkwell/internal/models"
)

var errStorage = errors.New("storage unavailable")

// --- posts ---

type fakePostStore struct {
	posts []models.Post // joined rows served by read queries
	err   error         // injected failure for every read

	lastLimit int

	created   *models.Post
	createErr error
	updated   *models.Post
	updateErr error
	deleted   []uuid.UUID
	deleteErr error
}

func (f *fakePostStore) ListPublished() ([]models.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Post
	for _, p := range f.posts {
		if p.Status == models.PostStatusPublished {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePostStore) ListRecent(limit int) ([]models.Post, error) {
	f.lastLimit = limit
	out, err := f.ListPublished()
	if err != nil {
		return nil, err
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakePostStore) ListPublishedByCategory(categorySlug string) ([]models.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Post
	for _, p := range f.posts {
		if p.Status == models.PostStatusPublished &&
			p.CategorySlug != nil && *p.CategorySlug == categorySlug {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePostStore) FindPublishedBySlug(slug string) (*models.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.posts {
		if f.posts[i].Slug == slug && f.posts[i].Status == models.PostStatusPublished {
			return &f.posts[i], nil
		}
	}
	return nil, nil
}

func (f *fakePostStore) FindByID(id uuid.UUID) (*models.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.posts {
		if f.posts[i].ID == id {
			return &f.posts[i], nil
		}
	}
	return nil, nil
}

func (f *fakePostStore) ListAll() ([]models.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.posts, nil
}

func (f *fakePostStore) Create(p *models.Post) (*models.Post, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	stored := *p
	stored.ID = uuid.New()
	f.created = &stored
	return &stored, nil
}

func (f *fakePostStore) Update(p *models.Post) (*models.Post, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	stored := *p
	f.updated = &stored
	return &stored, nil
}

func (f *fakePostStore) Delete(id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

// --- profiles ---

type fakeProfileStore struct {
	err      error
	upserted *models.Profile
}

func (f *fakeProfileStore) Upsert(userID uuid.UUID, displayName string) (*models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	p := &models.Profile{ID: uuid.New(), UserID: userID, DisplayName: displayName}
	f.upserted = p
	return p, nil
}

// --- categories ---

type fakeCategoryStore struct {
	categories []models.Category
	err        error
	ensureErr  error

	ensuredName string
	ensuredSlug string
	ensuredDesc string
}

func (f *fakeCategoryStore) List() ([]models.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.categories, nil
}

func (f *fakeCategoryStore) FindBySlug(slug string) (*models.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.categories {
		if f.categories[i].Slug == slug {
			return &f.categories[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryStore) Ensure(name, slug, description string) (*models.Category, error) {
	if f.ensureErr != nil {
		return nil, f.ensureErr
	}
	f.ensuredName = name
	f.ensuredSlug = slug
	f.ensuredDesc = description

	for i := range f.categories {
		if f.categories[i].Slug == slug {
			return &f.categories[i], nil
		}
	}
	c := models.Category{ID: uuid.New(), Name: name, Slug: slug, Description: &description}
	f.categories = append(f.categories, c)
	return &c, nil
}

// --- tags ---

type fakeTagStore struct {
	bySlug     map[string]models.Tag // existing tags keyed by slug
	byPost     map[uuid.UUID][]models.Tag
	listErr    error
	failSlugs  map[string]bool // tag slugs whose Ensure fails
	replaceErr error

	ensured  []string                   // slugs passed to Ensure, in order
	replaced map[uuid.UUID][]uuid.UUID  // last ReplaceForPost call per post
}

func newFakeTagStore() *fakeTagStore {
	return &fakeTagStore{
		bySlug:    make(map[string]models.Tag),
		byPost:    make(map[uuid.UUID][]models.Tag),
		failSlugs: make(map[string]bool),
		replaced:  make(map[uuid.UUID][]uuid.UUID),
	}
}

func (f *fakeTagStore) Ensure(name, slug string) (*models.Tag, error) {
	if f.failSlugs[slug] {
		return nil, errStorage
	}
	f.ensured = append(f.ensured, slug)
	if t, ok := f.bySlug[slug]; ok {
		return &t, nil
	}
	t := models.Tag{ID: uuid.New(), Name: name, Slug: slug}
	f.bySlug[slug] = t
	return &t, nil
}

func (f *fakeTagStore) ListByPost(postID uuid.UUID) ([]models.Tag, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.byPost[postID], nil
}

func (f *fakeTagStore) ReplaceForPost(postID uuid.UUID, tagIDs []uuid.UUID) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.replaced[postID] = tagIDs
	return nil
}

// --- comments ---

type fakeCommentStore struct {
	comments  []models.Comment
	err       error
	createErr error

	created *models.Comment
}

func (f *fakeCommentStore) ListApprovedByPost(postID uuid.UUID) ([]models.Comment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Comment
	for _, c := range f.comments {
		if c.PostID == postID && c.Status == models.CommentStatusApproved {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCommentStore) Create(c *models.Comment) (*models.Comment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	stored := *c
	stored.ID = uuid.New()
	stored.Status = models.CommentStatusPending // the real store forces this too
	f.created = &stored
	return &stored, nil
}

// newTestRepository wires a repository over fresh fakes.
func newTestRepository() (*Repository, *fakePostStore, *fakeProfileStore, *fakeCategoryStore, *fakeTagStore, *fakeCommentStore) {
	posts := &fakePostStore{}
	profiles := &fakeProfileStore{}
	categories := &fakeCategoryStore{}
	tags := newFakeTagStore()
	comments := &fakeCommentStore{}
	repo := NewRepository(posts, profiles, categories, tags, comments)
	return repo, posts, profiles, categories, tags, comments
}

func strPtr(s string) *string { return &s }
