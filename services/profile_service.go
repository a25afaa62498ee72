//go:generate go run go.uber.org/mock/mockgen -source=profile_service.go -destination=../mocks/mock_profile_service.go -package=mocks
package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"timebank/auth"
	"timebank/domain"
	"timebank/errors"
	"timebank/infrastructure/search"
	"timebank/repositories"

	"github.com/samber/lo"
)

type IProfileService interface {
	CompleteRegistration(ctx context.Context, userID string, req auth.RegistrationRequest) (domain.Profile, error)
	GetProfile(ctx context.Context, userID string) (domain.Profile, error)
	UpdateProfile(ctx context.Context, userID string, update auth.ProfileUpdate) (domain.Profile, error)
	SearchDirectory(ctx context.Context, callerID, query string) ([]domain.Profile, error)
	Reindex(ctx context.Context) error
}

type ProfileService struct {
	log                    *slog.Logger
	userRepository         repositories.IUserRepository
	availabilityRepository repositories.IAvailabilityRepository
	index                  search.IDirectoryIndex
	searchLimit            int
}

func NewProfileService(log *slog.Logger,
	userRepository repositories.IUserRepository,
	availabilityRepository repositories.IAvailabilityRepository,
	index search.IDirectoryIndex,
	searchLimit int) *ProfileService {
	return &ProfileService{
		log:                    log,
		userRepository:         userRepository,
		availabilityRepository: availabilityRepository,
		index:                  index,
		searchLimit:            searchLimit,
	}
}

// CompleteRegistration stores the availability batch of an executive, then the profile.
// Every slot is checked against the duration invariant before anything is written.
func (p *ProfileService) CompleteRegistration(ctx context.Context, userID string, req auth.RegistrationRequest) (domain.Profile, error) {
	if err := auth.ValidateRegistration(req); err != nil {
		return domain.Profile{}, err
	}
	if req.Role == domain.RoleExecutive && len(req.Slots) == 0 {
		return domain.Profile{}, errors.ErrAvailabilityMissing
	}
	for i, slot := range req.Slots {
		if rejection := domain.ValidateSlot(slot); rejection != nil {
			return domain.Profile{}, fmt.Errorf("slot %d: %w", i, rejection)
		}
	}

	profile := domain.Profile{
		ID:        userID,
		FullName:  req.FullName,
		Phone:     req.Phone,
		Email:     req.Email,
		PhotoURL:  req.PhotoURL,
		IDCardURL: req.IDCardURL,
		Role:      req.Role,
		CreatedAt: time.Now().UTC(),
	}
	// The profile marks a completed registration, so it is written last:
	// a failed batch write leaves nothing behind and the form can be resubmitted.
	if _, err := p.userRepository.GetProfile(userID); err == nil {
		return domain.Profile{}, errors.ErrProfileAlreadyExists
	} else if !stderrors.Is(err, errors.ErrProfileNotFound) {
		return domain.Profile{}, err
	}
	if profile.IsExecutive() {
		if err := p.availabilityRepository.SaveBatch(ctx, userID, req.Slots); err != nil {
			return domain.Profile{}, err
		}
	}
	if err := p.userRepository.CreateProfile(profile); err != nil {
		return domain.Profile{}, err
	}
	p.indexProfile(profile)
	p.log.Info("Registration completed", "user_id", userID, "role", string(profile.Role), "slots", len(req.Slots))
	return profile, nil
}

func (p *ProfileService) GetProfile(_ context.Context, userID string) (domain.Profile, error) {
	return p.userRepository.GetProfile(userID)
}

func (p *ProfileService) UpdateProfile(_ context.Context, userID string, update auth.ProfileUpdate) (domain.Profile, error) {
	if err := auth.ValidateProfileUpdate(update); err != nil {
		return domain.Profile{}, err
	}
	profile, err := p.userRepository.GetProfile(userID)
	if err != nil {
		return domain.Profile{}, err
	}
	profile.FullName = lo.CoalesceOrEmpty(update.FullName, profile.FullName)
	profile.Phone = lo.CoalesceOrEmpty(update.Phone, profile.Phone)
	profile.PhotoURL = lo.CoalesceOrEmpty(update.PhotoURL, profile.PhotoURL)

	if err = p.userRepository.UpdateProfile(profile); err != nil {
		return domain.Profile{}, err
	}
	p.indexProfile(profile)
	return profile, nil
}

// SearchDirectory lists the other users whose name or phone contains the query.
func (p *ProfileService) SearchDirectory(ctx context.Context, callerID, query string) ([]domain.Profile, error) {
	// One extra hit leaves room for the caller
	ids, err := p.index.Search(ctx, query, p.searchLimit+1)
	if err != nil {
		return nil, err
	}
	ids = lo.Without(ids, callerID)

	profiles := make([]domain.Profile, 0, len(ids))
	for _, id := range lo.Slice(ids, 0, p.searchLimit) {
		profile, err := p.userRepository.GetProfile(id)
		if stderrors.Is(err, errors.ErrProfileNotFound) {
			p.log.Warn("Indexed profile is gone", "user_id", id)
			continue
		}
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

// Reindex rebuilds the directory from the stored profiles.
func (p *ProfileService) Reindex(_ context.Context) error {
	profiles, err := p.userRepository.ListProfiles()
	if err != nil {
		return err
	}
	for _, profile := range profiles {
		if err = p.index.Index(profile); err != nil {
			return err
		}
	}
	p.log.Info("Directory indexed", "profiles", len(profiles))
	return nil
}

// A stale index only hides a profile from search; the write has already succeeded.
func (p *ProfileService) indexProfile(profile domain.Profile) {
	if err := p.index.Index(profile); err != nil {
		p.log.Error("Unable to index profile", "user_id", profile.ID, "error", err)
	}
}
