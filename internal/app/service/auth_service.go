package service

import (
	"context"
	"errors"

	"codedrill/internal/common"
	"codedrill/internal/common/security"
	"codedrill/internal/domain/model"
	"codedrill/internal/domain/repository"
)

type AuthService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type SignupResponse struct {
	Message string `json:"message"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Signup registers a new account. There is no presence or format validation
// of email and password; the only check is that the email is not taken.
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*SignupResponse, error) {
	role := req.Role
	if role == "" {
		role = model.RoleUser
	}

	user := &model.User{
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, common.Errorf("user already exists: %w", common.ErrConflict)
		}
		return nil, common.Errorf("failed to create user: %w", err)
	}

	return &SignupResponse{Message: "User registered successfully"}, nil
}

// Login checks credentials by exact string comparison and issues a fresh
// session token, overwriting whatever token the account held before.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.Errorf("user not found: %w", common.ErrUnauthorized)
		}
		return nil, common.Errorf("failed to find user: %w", err)
	}

	if user.Password != req.Password {
		return nil, common.Errorf("incorrect password: %w", common.ErrUnauthorized)
	}

	token := security.NewSessionToken()
	if err := s.userRepo.UpdateToken(ctx, user.ID, token); err != nil {
		return nil, common.Errorf("failed to store token: %w", err)
	}

	return &LoginResponse{Message: "Login successful", Token: token}, nil
}
