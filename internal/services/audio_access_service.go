package services

import (
	"context"
	"time"

	"herhzzz/internal/models/db_models"
	"herhzzz/internal/models/response_models"
	"herhzzz/internal/repositories"
	"herhzzz/pkg/utils"

	"github.com/google/uuid"
)

type AudioAccessServiceInterface interface {
	ListAccess(ctx context.Context, userID uuid.UUID) (*response_models.AudioAccessResponse, error)
	CheckAccess(ctx context.Context, userID uuid.UUID, trackName string) (bool, error)
}

type AudioAccessService struct {
	audioRepo      repositories.AudioRepository
	membershipRepo repositories.MembershipRepository
}

func NewAudioAccessService(audioRepo repositories.AudioRepository, membershipRepo repositories.MembershipRepository) AudioAccessServiceInterface {
	return &AudioAccessService{
		audioRepo:      audioRepo,
		membershipRepo: membershipRepo,
	}
}

// CanAccess is the whole access rule: free tracks for everyone, paid tracks
// for valid members. Pure, no side effects.
func CanAccess(track *db_models.AudioTrack, membership *db_models.UserMembership, now time.Time) bool {
	if track.AccessLevel == db_models.AccessLevelFree {
		return true
	}
	return IsMembershipValid(membership, now)
}

func (s *AudioAccessService) ListAccess(ctx context.Context, userID uuid.UUID) (*response_models.AudioAccessResponse, error) {
	tracks, err := s.audioRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	membership, err := s.membershipRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	now := time.Now()
	resp := &response_models.AudioAccessResponse{
		Tracks:     make([]response_models.TrackAccess, 0, len(tracks)),
		Membership: *buildMembershipStatus(userID, membership),
	}
	for i := range tracks {
		track := &tracks[i]
		resp.Tracks = append(resp.Tracks, response_models.TrackAccess{
			Name:        track.Name,
			CyclePhase:  track.CyclePhase,
			AccessLevel: string(track.AccessLevel),
			HasAccess:   CanAccess(track, membership, now),
		})
	}
	return resp, nil
}

func (s *AudioAccessService) CheckAccess(ctx context.Context, userID uuid.UUID, trackName string) (bool, error) {
	track, err := s.audioRepo.FindByName(ctx, trackName)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	if track == nil {
		return false, utils.ErrAudioNotFound
	}

	membership, err := s.membershipRepo.FindByUserID(ctx, userID)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	return CanAccess(track, membership, time.Now()), nil
}
