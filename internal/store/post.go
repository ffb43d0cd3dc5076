package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"blogapp/internal/models"
)

// PostStore manages posts in the database. Read paths that serve the
// public site populate the referenced category snapshot via a join.
type PostStore struct {
	db *sql.DB
}

// NewPostStore returns a new PostStore.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

const postColumns = `p.id, p.title, p.slug, p.summary, p.body, p.category_id, p.created_at, p.updated_at,
       c.id, c.name, c.slug, c.created_at, c.updated_at`

// List returns all posts ordered by creation date descending, each with
// its category populated when the reference is still set.
func (s *PostStore) List() ([]models.Post, error) {
	rows, err := s.db.Query(`
		SELECT ` + postColumns + `
		FROM posts p
		LEFT JOIN categories c ON c.id = p.category_id
		ORDER BY p.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()
	return collectPosts(rows)
}

// ListByCategory returns all posts in the given category, newest first.
// The category snapshot is not populated — callers already hold it.
func (s *PostStore) ListByCategory(categoryID uuid.UUID) ([]models.Post, error) {
	rows, err := s.db.Query(`
		SELECT p.id, p.title, p.slug, p.summary, p.body, p.category_id, p.created_at, p.updated_at
		FROM posts p
		WHERE p.category_id = $1
		ORDER BY p.created_at DESC
	`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list posts by category: %w", err)
	}
	defer rows.Close()

	var items []models.Post
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Slug, &p.Summary, &p.Body,
			&p.CategoryID, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// FindByID retrieves a post by ID without populating the category.
// Returns nil if not found.
func (s *PostStore) FindByID(id uuid.UUID) (*models.Post, error) {
	var p models.Post
	err := s.db.QueryRow(`
		SELECT id, title, slug, summary, body, category_id, created_at, updated_at
		FROM posts WHERE id = $1
	`, id).Scan(
		&p.ID, &p.Title, &p.Slug, &p.Summary, &p.Body,
		&p.CategoryID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	return &p, nil
}

// FindBySlug retrieves a post by its slug with the category populated.
// Used for the public single-post page. Returns nil if not found.
func (s *PostStore) FindBySlug(slug string) (*models.Post, error) {
	row := s.db.QueryRow(`
		SELECT `+postColumns+`
		FROM posts p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.slug = $1
	`, slug)

	p, err := scanPostWithCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by slug: %w", err)
	}
	return p, nil
}

// Create inserts a new post and returns it with the generated ID and
// creation timestamp.
func (s *PostStore) Create(p *models.Post) (*models.Post, error) {
	result := &models.Post{}
	err := s.db.QueryRow(`
		INSERT INTO posts (title, slug, summary, body, category_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, slug, summary, body, category_id, created_at, updated_at
	`, p.Title, p.Slug, p.Summary, p.Body, p.CategoryID).Scan(
		&result.ID, &result.Title, &result.Slug, &result.Summary, &result.Body,
		&result.CategoryID, &result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return result, nil
}

// Update overwrites every mutable field of an existing post.
// Returns sql.ErrNoRows if the post does not exist.
func (s *PostStore) Update(p *models.Post) error {
	res, err := s.db.Exec(`
		UPDATE posts SET
			title = $1, slug = $2, summary = $3, body = $4, category_id = $5,
			updated_at = NOW()
		WHERE id = $6
	`, p.Title, p.Slug, p.Summary, p.Body, p.CategoryID, p.ID)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a post by ID. Deleting an absent ID succeeds.
func (s *PostStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// Count returns the number of posts.
func (s *PostStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM posts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}

// scanPostWithCategory scans a joined post+category row. The category
// side of the join may be all NULLs.
func scanPostWithCategory(scanner interface{ Scan(...any) error }) (*models.Post, error) {
	var p models.Post
	var catID *uuid.UUID
	var catName, catSlug sql.NullString
	var catCreated, catUpdated sql.NullTime

	err := scanner.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Summary, &p.Body,
		&p.CategoryID, &p.CreatedAt, &p.UpdatedAt,
		&catID, &catName, &catSlug, &catCreated, &catUpdated,
	)
	if err != nil {
		return nil, err
	}

	if catID != nil {
		p.Category = &models.Category{
			ID:        *catID,
			Name:      catName.String,
			Slug:      catSlug.String,
			CreatedAt: catCreated.Time,
			UpdatedAt: catUpdated.Time,
		}
	}
	return &p, nil
}

// collectPosts drains joined post rows into a slice.
func collectPosts(rows *sql.Rows) ([]models.Post, error) {
	var items []models.Post
	for rows.Next() {
		p, err := scanPostWithCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}
