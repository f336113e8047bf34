package admin

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "sabi-consults/internal/common/errors"
	"sabi-consults/internal/models"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// CreateBlogPost writes a new post. A post created directly in
// published state gets its publication timestamp immediately.
func (g *Gateway) CreateBlogPost(ctx context.Context, token string, input models.BlogPostInput) (*models.BlogPost, error) {
	if err := g.authorize(ctx, token, "blog"); err != nil {
		return nil, err
	}
	if err := validateBlogInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post := &models.BlogPost{
		ID:         uuid.New().String(),
		Title:      strings.TrimSpace(input.Title),
		Slug:       input.Slug,
		Excerpt:    input.Excerpt,
		Content:    input.Content,
		CoverImage: input.CoverImage,
		Author:     strings.TrimSpace(input.Author),
		Status:     blogStatusOrDefault(input.Status),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if post.Status == models.BlogPublished {
		publishedAt := now
		post.PublishedAt = &publishedAt
	}

	if err := g.blogs.Create(ctx, post); err != nil {
		return nil, err
	}

	g.logger.Info("Blog post created", map[string]interface{}{
		"post_id": post.ID,
		"slug":    post.Slug,
		"status":  string(post.Status),
	})
	return post, nil
}

// UpdateBlogPost replaces a post's content. The publication timestamp
// is stamped once, on the first transition to published, and preserved
// through every later edit including unpublish/republish cycles.
func (g *Gateway) UpdateBlogPost(ctx context.Context, token, id string, input models.BlogPostInput) (*models.BlogPost, error) {
	if err := g.authorize(ctx, token, "blog"); err != nil {
		return nil, err
	}
	if err := validateBlogInput(input); err != nil {
		return nil, err
	}

	existing, err := g.blogs.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	updated := &models.BlogPost{
		ID:          existing.ID,
		Title:       strings.TrimSpace(input.Title),
		Slug:        input.Slug,
		Excerpt:     input.Excerpt,
		Content:     input.Content,
		CoverImage:  input.CoverImage,
		Author:      strings.TrimSpace(input.Author),
		Status:      blogStatusOrDefault(input.Status),
		PublishedAt: existing.PublishedAt,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   now,
	}
	if updated.Status == models.BlogPublished && updated.PublishedAt == nil {
		publishedAt := now
		updated.PublishedAt = &publishedAt
	}

	if err := g.blogs.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (g *Gateway) DeleteBlogPost(ctx context.Context, token, id string) error {
	if err := g.authorize(ctx, token, "blog"); err != nil {
		return err
	}
	return g.blogs.Delete(ctx, id)
}

func validateBlogInput(input models.BlogPostInput) error {
	var fields []apperrors.FieldError

	if strings.TrimSpace(input.Title) == "" {
		fields = append(fields, apperrors.FieldError{Field: "title", Message: "title is required"})
	}
	if input.Slug == "" {
		fields = append(fields, apperrors.FieldError{Field: "slug", Message: "slug is required"})
	} else if !slugPattern.MatchString(input.Slug) {
		fields = append(fields, apperrors.FieldError{Field: "slug", Message: "slug must be lowercase words separated by hyphens"})
	}
	if strings.TrimSpace(input.Content) == "" {
		fields = append(fields, apperrors.FieldError{Field: "content", Message: "content is required"})
	}
	if strings.TrimSpace(input.Author) == "" {
		fields = append(fields, apperrors.FieldError{Field: "author", Message: "author is required"})
	}
	if input.Status != "" && !input.Status.Valid() {
		fields = append(fields, apperrors.FieldError{Field: "status", Message: "status must be draft or published"})
	}

	if len(fields) > 0 {
		return apperrors.NewValidationError(fields...)
	}
	return nil
}

func blogStatusOrDefault(status models.BlogStatus) models.BlogStatus {
	if status == "" {
		return models.BlogDraft
	}
	return status
}
