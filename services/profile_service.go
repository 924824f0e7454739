package services

import (
	"errors"

	"conduit-api/models"
	"conduit-api/repositories"

	"gorm.io/gorm"
)

type ProfileService interface {
	GetProfile(viewerID uint, username string) (*models.Profile, error)
	Follow(viewerID uint, username string) (*models.Profile, error)
	Unfollow(viewerID uint, username string) (*models.Profile, error)
}

type profileService struct {
	userRepo   repositories.UserRepository
	followRepo repositories.FollowRepository
	presenter  PresenterService
}

func NewProfileService(userRepo repositories.UserRepository, followRepo repositories.FollowRepository, presenter PresenterService) ProfileService {
	return &profileService{
		userRepo:   userRepo,
		followRepo: followRepo,
		presenter:  presenter,
	}
}

func (s *profileService) GetProfile(viewerID uint, username string) (*models.Profile, error) {
	user, err := s.findUser(username)
	if err != nil {
		return nil, err
	}

	return s.presenter.Profile(viewerID, user)
}

// Follow ensures the (viewer -> target) edge exists. Repeated calls are
// no-ops; the unique index absorbs concurrent duplicates.
func (s *profileService) Follow(viewerID uint, username string) (*models.Profile, error) {
	target, err := s.checkTarget(viewerID, username)
	if err != nil {
		return nil, err
	}

	if err := s.followRepo.Create(&models.Follow{FollowerID: viewerID, FolloweeID: target.ID}); err != nil {
		return nil, err
	}

	return s.presenter.Profile(viewerID, target)
}

// Unfollow ensures the (viewer -> target) edge is absent.
func (s *profileService) Unfollow(viewerID uint, username string) (*models.Profile, error) {
	target, err := s.checkTarget(viewerID, username)
	if err != nil {
		return nil, err
	}

	if err := s.followRepo.Delete(viewerID, target.ID); err != nil {
		return nil, err
	}

	return s.presenter.Profile(viewerID, target)
}

func (s *profileService) checkTarget(viewerID uint, username string) (*models.User, error) {
	if viewerID == 0 {
		return nil, models.ErrorUnauthorized{}
	}

	target, err := s.findUser(username)
	if err != nil {
		return nil, err
	}

	if target.ID == viewerID {
		return nil, models.ErrorValidation{Message: "You cannot follow yourself"}
	}

	return target, nil
}

func (s *profileService) findUser(username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Entity: "User"}
		}
		return nil, err
	}
	return user, nil
}
