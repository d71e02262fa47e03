package service

import (
	"strings"

	"github.com/kingctheceo/togther-app-2/internal/models"
	"github.com/kingctheceo/togther-app-2/internal/repository"
	"github.com/kingctheceo/togther-app-2/internal/validation"
)

// Star rating bounds for a book review.
const (
	MinBookRating = 1
	MaxBookRating = 5
)

// LibraryService handles the family book library
type LibraryService struct {
	libraryRepo *repository.LibraryRepository
	access      *AccessService
}

// NewLibraryService creates a new library service
func NewLibraryService(libraryRepo *repository.LibraryRepository, access *AccessService) *LibraryService {
	return &LibraryService{libraryRepo: libraryRepo, access: access}
}

// AddBook adds a book recommendation to the caller's family library
func (s *LibraryService) AddBook(user *models.User, title, author, url, ageGroup string) (int64, error) {
	if err := s.access.Authorize(user, ResourceLibrary, user.FamilyCode); err != nil {
		return 0, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return 0, validation.ValidationError{Field: "title", Message: "title is required"}
	}
	if !validAgeGroup(ageGroup) {
		return 0, validation.ValidationError{Field: "age_group", Message: "unknown age group"}
	}

	return s.libraryRepo.CreateBook(title, strings.TrimSpace(author), strings.TrimSpace(url),
		user.Handle, ageGroup)
}

// GetBooks returns the caller's family library with aggregate ratings, and
// each book's reviews attached.
func (s *LibraryService) GetBooks(user *models.User) ([]models.Book, error) {
	if err := s.access.Authorize(user, ResourceLibrary, user.FamilyCode); err != nil {
		return nil, err
	}

	books, err := s.libraryRepo.GetFamilyBooks(user.FamilyCode)
	if err != nil {
		return nil, err
	}

	for i := range books {
		reviews, err := s.libraryRepo.GetReviews(books[i].ID)
		if err != nil {
			return nil, err
		}
		books[i].Reviews = reviews
	}

	return books, nil
}

// ReviewBook adds a star rating and optional review to a book in the
// caller's family library.
func (s *LibraryService) ReviewBook(user *models.User, bookID int64, rating int, review string) error {
	familyCode, err := s.libraryRepo.GetBookFamily(bookID)
	if err != nil {
		return err
	}
	if familyCode == "" {
		return ErrNotFound
	}
	if err := s.access.Authorize(user, ResourceLibrary, familyCode); err != nil {
		return err
	}

	if rating < MinBookRating || rating > MaxBookRating {
		return validation.ValidationError{Field: "rating", Message: "rating must be between 1 and 5 stars"}
	}

	_, err = s.libraryRepo.CreateReview(bookID, user.Handle, rating, strings.TrimSpace(review))
	return err
}

func validAgeGroup(group string) bool {
	for _, g := range models.AgeGroups {
		if g == group {
			return true
		}
	}
	return false
}
