package service

import (
	"testing"

	"github.com/kingctheceo/togther-app-2/internal/repository"
)

func newFeedEnv(t *testing.T) (*FeedService, *EnrollmentService) {
	t.Helper()
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	familyRepo := repository.NewFamilyRepository(db)
	feedRepo := repository.NewFeedRepository(db)
	access := NewAccessService()
	return NewFeedService(feedRepo, access), NewEnrollmentService(userRepo, familyRepo)
}

func TestFeedIsFamilyScoped(t *testing.T) {
	feedSvc, enrollSvc := newFeedEnv(t)

	_, smith := mustCreateFamily(t, enrollSvc, "The Smiths", "mom_smith")
	_, jones := mustCreateFamily(t, enrollSvc, "The Jones", "dad_jones")

	if _, err := feedSvc.CreatePost(smith, "Pizza night!", "Home"); err != nil {
		t.Fatalf("CreatePost() error: %v", err)
	}
	if _, err := feedSvc.CreatePost(jones, "Beach day", ""); err != nil {
		t.Fatalf("CreatePost() error: %v", err)
	}

	smithFeed, err := feedSvc.GetFeed(smith)
	if err != nil {
		t.Fatalf("GetFeed() error: %v", err)
	}
	if len(smithFeed) != 1 || smithFeed[0].Content != "Pizza night!" {
		t.Errorf("smith feed = %d posts, want only the family's own post", len(smithFeed))
	}

	jonesFeed, err := feedSvc.GetFeed(jones)
	if err != nil {
		t.Fatalf("GetFeed() error: %v", err)
	}
	if len(jonesFeed) != 1 || jonesFeed[0].Content != "Beach day" {
		t.Errorf("jones feed = %d posts, want only the family's own post", len(jonesFeed))
	}
}

func TestToggleLike(t *testing.T) {
	feedSvc, enrollSvc := newFeedEnv(t)
	family, author := mustCreateFamily(t, enrollSvc, "The Smiths", "mom_smith")

	other, err := enrollSvc.EnrollMember(family.InviteCode, newTestEnrollment("dad_smith"))
	if err != nil {
		t.Fatalf("EnrollMember() error: %v", err)
	}

	postID, err := feedSvc.CreatePost(author, "Look at this", "")
	if err != nil {
		t.Fatalf("CreatePost() error: %v", err)
	}

	// Like, then unlike
	if err := feedSvc.ToggleLike(other, postID); err != nil {
		t.Fatalf("ToggleLike() error: %v", err)
	}
	feed, err := feedSvc.GetFeed(other)
	if err != nil {
		t.Fatalf("GetFeed() error: %v", err)
	}
	if feed[0].LikeCount != 1 || !feed[0].Liked {
		t.Errorf("after like: count=%d liked=%v, want 1/true", feed[0].LikeCount, feed[0].Liked)
	}

	if err := feedSvc.ToggleLike(other, postID); err != nil {
		t.Fatalf("ToggleLike() error: %v", err)
	}
	feed, err = feedSvc.GetFeed(other)
	if err != nil {
		t.Fatalf("GetFeed() error: %v", err)
	}
	if feed[0].LikeCount != 0 || feed[0].Liked {
		t.Errorf("after unlike: count=%d liked=%v, want 0/false", feed[0].LikeCount, feed[0].Liked)
	}
}

func TestCrossFamilyLikeDenied(t *testing.T) {
	feedSvc, enrollSvc := newFeedEnv(t)

	_, smith := mustCreateFamily(t, enrollSvc, "The Smiths", "mom_smith")
	_, jones := mustCreateFamily(t, enrollSvc, "The Jones", "dad_jones")

	postID, err := feedSvc.CreatePost(smith, "Family only", "")
	if err != nil {
		t.Fatalf("CreatePost() error: %v", err)
	}

	if err := feedSvc.ToggleLike(jones, postID); err == nil {
		t.Error("liking another family's post should fail")
	}
	if err := feedSvc.AddComment(jones, postID, "hi"); err == nil {
		t.Error("commenting on another family's post should fail")
	}
}

func TestCommentsAppearOnFeed(t *testing.T) {
	feedSvc, enrollSvc := newFeedEnv(t)
	_, author := mustCreateFamily(t, enrollSvc, "The Smiths", "mom_smith")

	postID, err := feedSvc.CreatePost(author, "Dinner ideas?", "")
	if err != nil {
		t.Fatalf("CreatePost() error: %v", err)
	}
	if err := feedSvc.AddComment(author, postID, "Tacos!"); err != nil {
		t.Fatalf("AddComment() error: %v", err)
	}

	feed, err := feedSvc.GetFeed(author)
	if err != nil {
		t.Fatalf("GetFeed() error: %v", err)
	}
	if len(feed[0].Comments) != 1 || feed[0].Comments[0].Body != "Tacos!" {
		t.Errorf("comments = %v, want one 'Tacos!' comment", feed[0].Comments)
	}
}

func TestCreatePostRequiresContent(t *testing.T) {
	feedSvc, enrollSvc := newFeedEnv(t)
	_, author := mustCreateFamily(t, enrollSvc, "The Smiths", "mom_smith")

	if _, err := feedSvc.CreatePost(author, "   ", ""); err == nil {
		t.Error("whitespace-only content should be rejected")
	}
}
