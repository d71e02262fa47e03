package repository

import (
	"database/sql"
	"fmt"

	"github.com/kingctheceo/togther-app-2/internal/database"
	"github.com/kingctheceo/togther-app-2/internal/models"
)

// LibraryRepository handles database operations for the family book library
type LibraryRepository struct {
	db *database.DB
}

// NewLibraryRepository creates a new library repository
func NewLibraryRepository(db *database.DB) *LibraryRepository {
	return &LibraryRepository{db: db}
}

// CreateBook adds a book recommendation to the family library
func (r *LibraryRepository) CreateBook(title, author, url, addedBy, ageGroup string) (int64, error) {
	query := "INSERT INTO books (title, author, url, added_by, age_group) VALUES (?, ?, ?, ?, ?)"
	id, err := r.db.ExecReturningID(query, title, author, url, addedBy, ageGroup)
	if err != nil {
		return 0, fmt.Errorf("failed to create book: %w", err)
	}
	return id, nil
}

// GetFamilyBooks retrieves the books recommended within a family, newest
// first, with aggregate ratings computed in the same query.
func (r *LibraryRepository) GetFamilyBooks(familyCode string) ([]models.Book, error) {
	query := `
		SELECT b.id, b.title, b.author, b.url, b.added_by, b.age_group, b.created_at,
			COALESCE(AVG(rv.rating), 0), COUNT(rv.id)
		FROM books b
		INNER JOIN users u ON b.added_by = u.handle
		LEFT JOIN book_reviews rv ON rv.book_id = b.id
		WHERE u.family_code = ?
		GROUP BY b.id, b.title, b.author, b.url, b.added_by, b.age_group, b.created_at
		ORDER BY b.created_at DESC
	`
	rows, err := r.db.Query(query, familyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		var b models.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.URL,
			&b.AddedBy, &b.AgeGroup, &b.CreatedAt, &b.AvgRating, &b.ReviewCount); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}

	return books, rows.Err()
}

// GetBookFamily returns the family code of the member who recommended a book,
// or "" if the book does not exist.
func (r *LibraryRepository) GetBookFamily(bookID int64) (string, error) {
	var familyCode string
	query := `
		SELECT u.family_code FROM books b
		INNER JOIN users u ON b.added_by = u.handle
		WHERE b.id = ?
	`
	err := r.db.QueryRow(query, bookID).Scan(&familyCode)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve book family: %w", err)
	}
	return familyCode, nil
}

// CreateReview adds a rating and optional review text to a book
func (r *LibraryRepository) CreateReview(bookID int64, reviewer string, rating int, review string) (int64, error) {
	query := "INSERT INTO book_reviews (book_id, reviewer, rating, review) VALUES (?, ?, ?, ?)"
	id, err := r.db.ExecReturningID(query, bookID, reviewer, rating, review)
	if err != nil {
		return 0, fmt.Errorf("failed to create review: %w", err)
	}
	return id, nil
}

// GetReviews retrieves the reviews on a book, newest first
func (r *LibraryRepository) GetReviews(bookID int64) ([]models.BookReview, error) {
	query := "SELECT id, book_id, reviewer, rating, review, created_at FROM book_reviews WHERE book_id = ? ORDER BY created_at DESC"
	rows, err := r.db.Query(query, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []models.BookReview
	for rows.Next() {
		var rv models.BookReview
		if err := rows.Scan(&rv.ID, &rv.BookID, &rv.Reviewer, &rv.Rating, &rv.Review, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}

	return reviews, rows.Err()
}
