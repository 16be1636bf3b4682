package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"ecotrack/internal/models"
	"ecotrack/internal/repository"

	"github.com/google/uuid"
)

// maxCommunityStories bounds the board to the newest entries.
const maxCommunityStories = 50

var ErrEmptyStory = errors.New("story text is required")

type CommunityService struct {
	communityRepo repository.CommunityRepo
	now           func() time.Time
}

func NewCommunityService(communityRepo repository.CommunityRepo) *CommunityService {
	return &CommunityService{
		communityRepo: communityRepo,
		now:           time.Now,
	}
}

// Board returns the newest stories plus the combined avoided-impact
// total.
func (s *CommunityService) Board(ctx context.Context) (models.CommunityBoard, error) {
	stories, err := s.communityRepo.List(ctx, maxCommunityStories)
	if err != nil {
		return models.CommunityBoard{}, err
	}
	total, err := s.communityRepo.TotalImpact(ctx)
	if err != nil {
		return models.CommunityBoard{}, err
	}
	return models.CommunityBoard{
		Stories:       stories,
		TotalImpactKg: round2(total),
	}, nil
}

// PostStory validates and stores a story, then trims the board to its
// cap. A missing name posts as "Anonymous"; a negative or non-finite
// impact claim is recorded as zero.
func (s *CommunityService) PostStory(ctx context.Context, name, text string, impactKg float64) (models.CommunityStory, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.CommunityStory{}, ErrEmptyStory
	}
	if !isUsableNumber(impactKg) {
		impactKg = 0
	}

	story := models.CommunityStory{
		StoryID:  uuid.NewString(),
		Name:     strings.TrimSpace(name),
		Text:     text,
		ImpactKg: round2(impactKg),
		PostedAt: s.now().UTC(),
	}
	if story.Name == "" {
		story.Name = "Anonymous"
	}

	if err := s.communityRepo.Add(ctx, story); err != nil {
		return models.CommunityStory{}, err
	}
	if err := s.communityRepo.Prune(ctx, maxCommunityStories); err != nil {
		return models.CommunityStory{}, err
	}
	return story, nil
}
