package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"ecotrack/internal/models"
)

type communityRepoStub struct {
	stories    []models.CommunityStory
	added      []models.CommunityStory
	total      float64
	pruneCalls []int
	listErr    error
}

func (s *communityRepoStub) Add(ctx context.Context, story models.CommunityStory) error {
	s.added = append(s.added, story)
	return nil
}

func (s *communityRepoStub) List(ctx context.Context, limit int) ([]models.CommunityStory, error) {
	return s.stories, s.listErr
}

func (s *communityRepoStub) TotalImpact(ctx context.Context) (float64, error) {
	return s.total, nil
}

func (s *communityRepoStub) Prune(ctx context.Context, keep int) error {
	s.pruneCalls = append(s.pruneCalls, keep)
	return nil
}

func TestCommunityService_PostStory(t *testing.T) {
	t.Parallel()

	repo := &communityRepoStub{}
	svc := NewCommunityService(repo)

	story, err := svc.PostStory(context.Background(), "  ", "Switched to cycling", 14.567)
	if err != nil {
		t.Fatalf("PostStory: %v", err)
	}
	if story.Name != "Anonymous" {
		t.Errorf("Name: want Anonymous, got %q", story.Name)
	}
	if story.ImpactKg != 14.57 {
		t.Errorf("ImpactKg: want 14.57, got %v", story.ImpactKg)
	}
	if story.StoryID == "" {
		t.Error("StoryID must be generated")
	}
	if len(repo.added) != 1 {
		t.Fatalf("want one Add call, got %d", len(repo.added))
	}
	if len(repo.pruneCalls) != 1 || repo.pruneCalls[0] != maxCommunityStories {
		t.Errorf("prune calls: want [%d], got %v", maxCommunityStories, repo.pruneCalls)
	}
}

func TestCommunityService_PostStory_EmptyTextRejected(t *testing.T) {
	t.Parallel()

	svc := NewCommunityService(&communityRepoStub{})
	if _, err := svc.PostStory(context.Background(), "Sam", "   ", 5); !errors.Is(err, ErrEmptyStory) {
		t.Fatalf("want ErrEmptyStory, got %v", err)
	}
}

func TestCommunityService_PostStory_UnusableImpactZeroed(t *testing.T) {
	t.Parallel()

	repo := &communityRepoStub{}
	svc := NewCommunityService(repo)

	story, err := svc.PostStory(context.Background(), "Sam", "Compost bin installed", math.NaN())
	if err != nil {
		t.Fatalf("PostStory: %v", err)
	}
	if story.ImpactKg != 0 {
		t.Errorf("ImpactKg: want 0, got %v", story.ImpactKg)
	}
}

func TestCommunityService_Board(t *testing.T) {
	t.Parallel()

	repo := &communityRepoStub{
		stories: []models.CommunityStory{{StoryID: "a", Name: "Sam", Text: "hi"}},
		total:   123.456,
	}
	svc := NewCommunityService(repo)

	board, err := svc.Board(context.Background())
	if err != nil {
		t.Fatalf("Board: %v", err)
	}
	if len(board.Stories) != 1 {
		t.Fatalf("stories: want 1, got %d", len(board.Stories))
	}
	if board.TotalImpactKg != 123.46 {
		t.Errorf("TotalImpactKg: want 123.46, got %v", board.TotalImpactKg)
	}
}

type goalRepoStub struct {
	created []models.Goal
	goals   []models.Goal
}

func (s *goalRepoStub) Create(ctx context.Context, g models.Goal) error {
	s.created = append(s.created, g)
	return nil
}

func (s *goalRepoStub) List(ctx context.Context) ([]models.Goal, error) {
	return s.goals, nil
}

func TestGoalService_PledgeGoal(t *testing.T) {
	t.Parallel()

	repo := &goalRepoStub{}
	svc := NewGoalService(repo)

	goal, err := svc.PledgeGoal(context.Background(), " Cut commute ", 150, "2026-12-31")
	if err != nil {
		t.Fatalf("PledgeGoal: %v", err)
	}
	if goal.Title != "Cut commute" {
		t.Errorf("Title: got %q", goal.Title)
	}
	if goal.TargetPct != 100 {
		t.Errorf("TargetPct: want clamped 100, got %v", goal.TargetPct)
	}
	if goal.Progress != 0 {
		t.Errorf("Progress: want 0, got %v", goal.Progress)
	}
	if goal.GoalID == "" {
		t.Error("GoalID must be generated")
	}
	if len(repo.created) != 1 {
		t.Fatalf("want one Create call, got %d", len(repo.created))
	}
}

func TestGoalService_PledgeGoal_EmptyTitleRejected(t *testing.T) {
	t.Parallel()

	svc := NewGoalService(&goalRepoStub{})
	if _, err := svc.PledgeGoal(context.Background(), "  ", 10, ""); !errors.Is(err, ErrEmptyGoalTitle) {
		t.Fatalf("want ErrEmptyGoalTitle, got %v", err)
	}
}
