// Package memory holds in-memory implementations of the store
// interfaces for use in tests. The production wiring never touches this
// package.
package memory

import (
	"context"
	"sort"
	"sync"

	apperrors "sabi-consults/internal/common/errors"
	"sabi-consults/internal/models"
)

// ListingStore is a mutex-guarded slice with the same ordering contract
// as the postgres store: newest-first by creation time.
type ListingStore struct {
	mu       sync.RWMutex
	listings []models.Listing
}

func NewListingStore() *ListingStore {
	return &ListingStore{}
}

func (s *ListingStore) List(_ context.Context) ([]models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Listing, len(s.listings))
	copy(out, s.listings)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *ListingStore) Get(_ context.Context, id string) (*models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.listings {
		if s.listings[i].ID == id {
			listing := s.listings[i]
			return &listing, nil
		}
	}
	return nil, apperrors.NewNotFoundError("Property", id)
}

func (s *ListingStore) Create(_ context.Context, listing *models.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listings = append(s.listings, *listing)
	return nil
}

func (s *ListingStore) Update(_ context.Context, listing *models.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.listings {
		if s.listings[i].ID == listing.ID {
			s.listings[i] = *listing
			return nil
		}
	}
	return apperrors.NewNotFoundError("Property", listing.ID)
}

func (s *ListingStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.listings {
		if s.listings[i].ID == id {
			s.listings = append(s.listings[:i], s.listings[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFoundError("Property", id)
}

// Len reports the stored record count, handy for asserting that a
// rejected mutation left the store unchanged.
func (s *ListingStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listings)
}

type BlogStore struct {
	mu    sync.RWMutex
	posts []models.BlogPost
}

func NewBlogStore() *BlogStore {
	return &BlogStore{}
}

func (s *BlogStore) List(_ context.Context, publishedOnly bool) ([]models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.BlogPost
	for _, post := range s.posts {
		if publishedOnly && post.Status != models.BlogPublished {
			continue
		}
		out = append(out, post)
	}
	return out, nil
}

func (s *BlogStore) Get(_ context.Context, id string) (*models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			post := s.posts[i]
			return &post, nil
		}
	}
	return nil, apperrors.NewNotFoundError("Blog post", id)
}

func (s *BlogStore) GetBySlug(_ context.Context, slug string) (*models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.posts {
		if s.posts[i].Slug == slug {
			post := s.posts[i]
			return &post, nil
		}
	}
	return nil, apperrors.NewNotFoundError("Blog post", slug)
}

func (s *BlogStore) Create(_ context.Context, post *models.BlogPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].Slug == post.Slug {
			return apperrors.NewDuplicateSlugError(post.Slug)
		}
	}
	s.posts = append(s.posts, *post)
	return nil
}

func (s *BlogStore) Update(_ context.Context, post *models.BlogPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].Slug == post.Slug && s.posts[i].ID != post.ID {
			return apperrors.NewDuplicateSlugError(post.Slug)
		}
	}
	for i := range s.posts {
		if s.posts[i].ID == post.ID {
			s.posts[i] = *post
			return nil
		}
	}
	return apperrors.NewNotFoundError("Blog post", post.ID)
}

func (s *BlogStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFoundError("Blog post", id)
}

func (s *BlogStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}

type TeamStore struct {
	mu      sync.RWMutex
	members []models.TeamMember
}

func NewTeamStore() *TeamStore {
	return &TeamStore{}
}

func (s *TeamStore) List(_ context.Context, activeOnly bool) ([]models.TeamMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.TeamMember
	for _, member := range s.members {
		if activeOnly && !member.IsActive {
			continue
		}
		out = append(out, member)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})
	return out, nil
}

func (s *TeamStore) Get(_ context.Context, id string) (*models.TeamMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.members {
		if s.members[i].ID == id {
			member := s.members[i]
			return &member, nil
		}
	}
	return nil, apperrors.NewNotFoundError("Team member", id)
}

func (s *TeamStore) Create(_ context.Context, member *models.TeamMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.members = append(s.members, *member)
	return nil
}

func (s *TeamStore) Update(_ context.Context, member *models.TeamMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.members {
		if s.members[i].ID == member.ID {
			s.members[i] = *member
			return nil
		}
	}
	return apperrors.NewNotFoundError("Team member", member.ID)
}

func (s *TeamStore) Deactivate(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.members {
		if s.members[i].ID == id {
			s.members[i].IsActive = false
			return nil
		}
	}
	return apperrors.NewNotFoundError("Team member", id)
}

func (s *TeamStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.members)
}

type InquiryStore struct {
	mu        sync.RWMutex
	inquiries []models.Inquiry
}

func NewInquiryStore() *InquiryStore {
	return &InquiryStore{}
}

func (s *InquiryStore) List(_ context.Context) ([]models.Inquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Inquiry, len(s.inquiries))
	copy(out, s.inquiries)
	return out, nil
}

func (s *InquiryStore) Get(_ context.Context, id string) (*models.Inquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.inquiries {
		if s.inquiries[i].ID == id {
			inquiry := s.inquiries[i]
			return &inquiry, nil
		}
	}
	return nil, apperrors.NewNotFoundError("Inquiry", id)
}

func (s *InquiryStore) Create(_ context.Context, inquiry *models.Inquiry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inquiries = append(s.inquiries, *inquiry)
	return nil
}

func (s *InquiryStore) UpdateStatus(_ context.Context, id string, status models.InquiryStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.inquiries {
		if s.inquiries[i].ID == id {
			s.inquiries[i].Status = status
			return nil
		}
	}
	return apperrors.NewNotFoundError("Inquiry", id)
}

func (s *InquiryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.inquiries)
}

type SettingsStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewSettingsStore() *SettingsStore {
	return &SettingsStore{values: make(map[string]string)}
}

func (s *SettingsStore) GetAll(_ context.Context) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out, nil
}

func (s *SettingsStore) SetAll(_ context.Context, values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, v := range values {
		s.values[k] = v
	}
	return nil
}
