package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gunnargantzel/NMS-sub000/internal/auth"
	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/mapper"
	"github.com/gunnargantzel/NMS-sub000/internal/repository"
	"go.uber.org/zap"
)

type AuthService struct {
	users  *repository.UserRepository
	tokens *auth.TokenManager
	logger *zap.Logger
}

func NewAuthService(users *repository.UserRepository, tokens *auth.TokenManager, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// Login checks credentials and issues a bearer token. Unknown users,
// inactive users and wrong passwords all yield ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	username := strings.TrimSpace(req.Username)
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if isNotFound(err) {
			s.logger.Info("login rejected", zap.String("username", username), zap.String("reason", "unknown user"))
			return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
		}
		return nil, translate(err, "get user")
	}
	if !user.IsActive {
		s.logger.Info("login rejected", zap.String("username", username), zap.String("reason", "inactive"))
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}
	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		s.logger.Info("login rejected", zap.String("username", username), zap.String("reason", "password"))
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID, time.Now().UTC()); err != nil {
		s.logger.Warn("failed to record last login", zap.Int64("user_id", user.ID), zap.Error(err))
	}

	s.logger.Info("user logged in", zap.Int64("user_id", user.ID), zap.String("username", user.Username))
	return &domain.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
		User:      mapper.ToUserDTO(user),
	}, nil
}

// Verify validates a bearer token and confirms the user is still active
func (s *AuthService) Verify(ctx context.Context, token string) (*domain.VerifyResponse, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: user no longer exists", ErrUnauthorized)
		}
		return nil, translate(err, "get user")
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: user is inactive", ErrUnauthorized)
	}
	return &domain.VerifyResponse{Valid: true, User: mapper.ToUserDTO(user)}, nil
}

// ErrBootstrapSkipped is returned when users already exist
var ErrBootstrapSkipped = errors.New("users already exist")

// EnsureAdmin creates the first admin account when the users table is
// empty. It returns ErrBootstrapSkipped otherwise.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) (*domain.UserDTO, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, invalidInput("admin username and password are required")
	}
	count, err := s.users.Count(ctx)
	if err != nil {
		return nil, translate(err, "count users")
	}
	if count > 0 {
		return nil, ErrBootstrapSkipped
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		FullName:     "Administrator",
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, translate(err, "create admin user")
	}

	s.logger.Info("bootstrap admin created", zap.String("username", username))
	dto := mapper.ToUserDTO(user)
	return &dto, nil
}
