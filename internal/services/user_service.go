package services

import (
	"strings"
	"time"

	"github.com/finsight/finsight-backend/internal/auth"
	"github.com/finsight/finsight-backend/internal/models"
	repo "github.com/finsight/finsight-backend/internal/repository"
)

type UserService struct {
	r  repo.Users
	tm *auth.TokenManager
}

func NewUserService(r repo.Users, tm *auth.TokenManager) *UserService {
	return &UserService{r: r, tm: tm}
}

func (s *UserService) Register(name, email, password string) (models.User, error) {
	u := models.User{Name: strings.TrimSpace(name), Email: strings.TrimSpace(email), Role: "user"}
	if err := u.Validate(); err != nil { return models.User{}, err }
	hash, err := auth.HashPassword(password)
	if err != nil { return models.User{}, err }
	return s.r.Create(u.Name, u.Email, hash, u.Role)
}

type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func (s *UserService) Login(email, password string) (models.User, TokenPair, error) {
	u, err := s.r.GetByEmail(strings.TrimSpace(email))
	if err != nil {
		return models.User{}, TokenPair{}, ErrInvalidCredentials
	}
	if err := auth.VerifyPassword(password, u.PasswordHash); err != nil {
		return models.User{}, TokenPair{}, ErrInvalidCredentials
	}
	access, refresh, exp, err := s.tm.GeneratePair(u.ID, u.Role)
	if err != nil {
		return models.User{}, TokenPair{}, err
	}
	return u, TokenPair{AccessToken: access, RefreshToken: refresh, ExpiresAt: exp}, nil
}

func (s *UserService) Refresh(refreshToken string) (TokenPair, error) {
	claims, isRefresh, err := s.tm.ParseAny(refreshToken)
	if err != nil || !isRefresh {
		return TokenPair{}, ErrInvalidCredentials
	}
	access, refresh, exp, err := s.tm.GeneratePair(claims.UserID, claims.Role)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh, ExpiresAt: exp}, nil
}

func (s *UserService) Get(id string) (models.User, error) {
	u, err := s.r.GetByID(id)
	if err != nil {
		return models.User{}, notFound(err, ErrUserNotFound)
	}
	return u, nil
}

func (s *UserService) UpdateDetails(id, name, email string) (models.User, error) {
	u, err := s.Get(id)
	if err != nil {
		return models.User{}, err
	}
	u.Name = strings.TrimSpace(name)
	u.Email = strings.TrimSpace(email)
	if err := u.Validate(); err != nil {
		return models.User{}, err
	}
	if err := s.r.Update(u); err != nil {
		return models.User{}, err
	}
	return s.Get(id)
}

func (s *UserService) List() ([]models.User, error) { return s.r.List() }
