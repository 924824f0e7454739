package services

import (
	"errors"
	"time"

	"conduit-api/config"
	"conduit-api/models"
	"conduit-api/repositories"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req models.RegisterUser) (*models.AuthUser, error)
	Login(req models.LoginUser) (*models.AuthUser, error)
	GetUserByID(id uint) (*models.User, error)
	UpdateUser(userID uint, req models.UpdateUserFields) (*models.AuthUser, error)
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(req models.RegisterUser) (*models.AuthUser, error) {
	if req.Username == "" {
		return nil, models.ErrorFieldRequired{Field: "A username"}
	}
	if req.Email == "" {
		return nil, models.ErrorFieldRequired{Field: "An email"}
	}
	if req.Password == "" {
		return nil, models.ErrorFieldRequired{Field: "A password"}
	}

	if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
		return nil, models.ErrorAlreadyTaken{Field: "Email", Hint: "try logging in"}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := s.userRepo.GetByUsername(req.Username); err == nil {
		return nil, models.ErrorAlreadyTaken{Field: "Username"}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
		Bio:      req.Bio,
		Image:    req.Image,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return s.authUser(user)
}

func (s *authService) Login(req models.LoginUser) (*models.AuthUser, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Entity: "Email", Hint: "sign in first"}
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.ErrorValidation{Message: "Wrong email/password combination"}
	}

	return s.authUser(user)
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Entity: "User"}
		}
		return nil, err
	}
	return user, nil
}

// UpdateUser is the self-service profile update: only supplied fields are
// overwritten, and a changed password is re-hashed.
func (s *authService) UpdateUser(userID uint, req models.UpdateUserFields) (*models.AuthUser, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if req.Username != nil && *req.Username != "" && *req.Username != user.Username {
		if _, err := s.userRepo.GetByUsername(*req.Username); err == nil {
			return nil, models.ErrorAlreadyTaken{Field: "Username"}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Username = *req.Username
	}
	if req.Email != nil && *req.Email != "" && *req.Email != user.Email {
		if _, err := s.userRepo.GetByEmail(*req.Email); err == nil {
			return nil, models.ErrorAlreadyTaken{Field: "Email"}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.Password != nil && *req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashedPassword)
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Image != nil {
		user.Image = *req.Image
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return s.authUser(user)
}

func (s *authService) authUser(user *models.User) (*models.AuthUser, error) {
	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthUser{
		Username: user.Username,
		Email:    user.Email,
		Bio:      user.Bio,
		Image:    user.Image,
		Token:    token,
	}, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      now.Add(config.JWTExpiration).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(config.JWTSecret)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}
