// internal/store/postgres/blogs.go
package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	apperrors "sabi-consults/internal/common/errors"
	"sabi-consults/internal/models"
)

type BlogStore struct {
	db *sql.DB
}

func NewBlogStore(db *sql.DB) *BlogStore {
	return &BlogStore{db: db}
}

const blogColumns = `
	id, title, slug, excerpt, content, cover_image, author, status,
	published_at, created_at, updated_at`

func (s *BlogStore) List(ctx context.Context, publishedOnly bool) ([]models.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs`
	if publishedOnly {
		query += ` WHERE status = 'published' ORDER BY published_at DESC`
	} else {
		query += ` ORDER BY created_at DESC`
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.NewStorageError("blogs.list", err)
	}
	defer rows.Close()

	var posts []models.BlogPost
	for rows.Next() {
		post, err := scanBlogPost(rows)
		if err != nil {
			return nil, apperrors.NewStorageError("blogs.list", err)
		}
		posts = append(posts, *post)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("blogs.list", err)
	}
	return posts, nil
}

func (s *BlogStore) Get(ctx context.Context, id string) (*models.BlogPost, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+blogColumns+` FROM blogs WHERE id = $1`, id)

	post, err := scanBlogPost(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("Blog post", id)
	}
	if err != nil {
		return nil, apperrors.NewStorageError("blogs.get", err)
	}
	return post, nil
}

func (s *BlogStore) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+blogColumns+` FROM blogs WHERE slug = $1`, slug)

	post, err := scanBlogPost(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("Blog post", slug)
	}
	if err != nil {
		return nil, apperrors.NewStorageError("blogs.get_by_slug", err)
	}
	return post, nil
}

func (s *BlogStore) Create(ctx context.Context, post *models.BlogPost) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO blogs (
			id, title, slug, excerpt, content, cover_image, author, status,
			published_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		post.ID, post.Title, post.Slug, nullString(post.Excerpt), post.Content,
		nullString(post.CoverImage), post.Author, string(post.Status),
		post.PublishedAt, post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewDuplicateSlugError(post.Slug)
		}
		return apperrors.NewStorageError("blogs.create", err)
	}
	return nil
}

func (s *BlogStore) Update(ctx context.Context, post *models.BlogPost) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE blogs SET
			title = $2, slug = $3, excerpt = $4, content = $5, cover_image = $6,
			author = $7, status = $8, published_at = $9, updated_at = $10
		WHERE id = $1`,
		post.ID, post.Title, post.Slug, nullString(post.Excerpt), post.Content,
		nullString(post.CoverImage), post.Author, string(post.Status),
		post.PublishedAt, post.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewDuplicateSlugError(post.Slug)
		}
		return apperrors.NewStorageError("blogs.update", err)
	}
	return requireRow(result, "Blog post", post.ID, "blogs.update")
}

func (s *BlogStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return apperrors.NewStorageError("blogs.delete", err)
	}
	return requireRow(result, "Blog post", id, "blogs.delete")
}

func scanBlogPost(row rowScanner) (*models.BlogPost, error) {
	var (
		post       models.BlogPost
		excerpt    sql.NullString
		coverImage sql.NullString
	)

	err := row.Scan(
		&post.ID, &post.Title, &post.Slug, &excerpt, &post.Content,
		&coverImage, &post.Author, &post.Status,
		&post.PublishedAt, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	post.Excerpt = excerpt.String
	post.CoverImage = coverImage.String
	return &post, nil
}

// isUniqueViolation matches the postgres unique_violation SQLSTATE.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
