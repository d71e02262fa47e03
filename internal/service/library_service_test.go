package service

import (
	"errors"
	"testing"

	"github.com/kingctheceo/togther-app-2/internal/repository"
)

func newLibraryEnv(t *testing.T) (*LibraryService, *EnrollmentService) {
	t.Helper()
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	familyRepo := repository.NewFamilyRepository(db)
	libraryRepo := repository.NewLibraryRepository(db)
	access := NewAccessService()
	return NewLibraryService(libraryRepo, access), NewEnrollmentService(userRepo, familyRepo)
}

func TestLibraryIsFamilyScoped(t *testing.T) {
	libSvc, enrollSvc := newLibraryEnv(t)
	_, smith := mustCreateFamily(t, enrollSvc, "The Smiths", "mom_smith")
	_, jones := mustCreateFamily(t, enrollSvc, "The Jones", "dad_jones")

	if _, err := libSvc.AddBook(smith, "Charlotte's Web", "E.B. White", "https://example.com/charlottes-web", "Kids"); err != nil {
		t.Fatalf("AddBook() error: %v", err)
	}

	smithBooks, err := libSvc.GetBooks(smith)
	if err != nil {
		t.Fatalf("GetBooks() error: %v", err)
	}
	if len(smithBooks) != 1 || smithBooks[0].Title != "Charlotte's Web" {
		t.Errorf("smith library = %d books, want the family's own book", len(smithBooks))
	}
	if smithBooks[0].URL != "https://example.com/charlottes-web" {
		t.Errorf("URL = %q, want the submitted link", smithBooks[0].URL)
	}

	jonesBooks, err := libSvc.GetBooks(jones)
	if err != nil {
		t.Fatalf("GetBooks() error: %v", err)
	}
	if len(jonesBooks) != 0 {
		t.Errorf("jones sees %d smith books, want 0", len(jonesBooks))
	}
}

func TestAddBookValidation(t *testing.T) {
	libSvc, enrollSvc := newLibraryEnv(t)
	_, parent := mustCreateFamily(t, enrollSvc, "The Smiths", "mom_smith")

	if _, err := libSvc.AddBook(parent, "   ", "", "", "Kids"); err == nil {
		t.Error("blank title should be rejected")
	}
	if _, err := libSvc.AddBook(parent, "Dune", "Frank Herbert", "", "Toddlers"); err == nil {
		t.Error("unknown age group should be rejected")
	}
}

func TestReviewsAggregateOnBook(t *testing.T) {
	libSvc, enrollSvc := newLibraryEnv(t)
	family, mom := mustCreateFamily(t, enrollSvc, "The Smiths", "mom_smith")

	dad, err := enrollSvc.EnrollMember(family.InviteCode, newTestEnrollment("dad_smith"))
	if err != nil {
		t.Fatalf("EnrollMember() error: %v", err)
	}

	bookID, err := libSvc.AddBook(mom, "The Hobbit", "J.R.R. Tolkien", "", "Everyone")
	if err != nil {
		t.Fatalf("AddBook() error: %v", err)
	}

	if err := libSvc.ReviewBook(mom, bookID, 5, "A classic"); err != nil {
		t.Fatalf("ReviewBook() error: %v", err)
	}
	if err := libSvc.ReviewBook(dad, bookID, 3, ""); err != nil {
		t.Fatalf("ReviewBook() error: %v", err)
	}

	books, err := libSvc.GetBooks(mom)
	if err != nil {
		t.Fatalf("GetBooks() error: %v", err)
	}
	book := books[0]
	if book.ReviewCount != 2 {
		t.Errorf("ReviewCount = %d, want 2", book.ReviewCount)
	}
	if book.AvgRating != 4 {
		t.Errorf("AvgRating = %v, want 4", book.AvgRating)
	}
	if len(book.Reviews) != 2 {
		t.Errorf("Reviews = %d entries, want 2", len(book.Reviews))
	}
}

func TestReviewBookBounds(t *testing.T) {
	libSvc, enrollSvc := newLibraryEnv(t)
	_, parent := mustCreateFamily(t, enrollSvc, "The Smiths", "mom_smith")

	bookID, err := libSvc.AddBook(parent, "Matilda", "Roald Dahl", "", "Kids")
	if err != nil {
		t.Fatalf("AddBook() error: %v", err)
	}

	if err := libSvc.ReviewBook(parent, bookID, 0, ""); err == nil {
		t.Error("rating below 1 star should be rejected")
	}
	if err := libSvc.ReviewBook(parent, bookID, 6, ""); err == nil {
		t.Error("rating above 5 stars should be rejected")
	}
}

func TestCrossFamilyReviewDenied(t *testing.T) {
	libSvc, enrollSvc := newLibraryEnv(t)
	_, smith := mustCreateFamily(t, enrollSvc, "The Smiths", "mom_smith")
	_, jones := mustCreateFamily(t, enrollSvc, "The Jones", "dad_jones")

	bookID, err := libSvc.AddBook(smith, "Family favorite", "", "", "Everyone")
	if err != nil {
		t.Fatalf("AddBook() error: %v", err)
	}

	if err := libSvc.ReviewBook(jones, bookID, 4, ""); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("cross-family review: expected ErrAccessDenied, got %v", err)
	}
	if err := libSvc.ReviewBook(smith, 9999, 4, ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown book: expected ErrNotFound, got %v", err)
	}
}
