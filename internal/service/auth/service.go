package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/auth"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/user"
	"github.com/MohamedSalah50/hr-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo         user.UserRepository
	refreshTokenRepo auth.RefreshTokenRepository
	jwtService       jwt.Service
}

func NewAuthService(
	userRepo user.UserRepository,
	refreshTokenRepo auth.RefreshTokenRepository,
	jwtService jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		jwtService:       jwtService,
	}
}

func (a *AuthServiceImpl) Signup(ctx context.Context, req auth.SignupRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.userRepo.Create(ctx, user.User{
		FullName:     req.FullName,
		UserName:     req.UserName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         user.RoleUser,
		IsActive:     true,
	})
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return a.issueTokens(ctx, created)
}

func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	u, err := a.userRepo.GetByUserNameOrEmail(ctx, req.UsernameOrEmail)
	if errors.Is(err, user.ErrUserNotFound) {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if err != nil {
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if !u.IsActive {
		return auth.LoginResponse{}, auth.ErrUserNotActive
	}

	return a.issueTokens(ctx, u)
}

func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	decoded, err := a.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrRefreshTokenInvalid
	}
	if tokenType, _ := decoded.Get("type"); tokenType != "refresh" {
		return auth.LoginResponse{}, auth.ErrRefreshTokenInvalid
	}

	stored, err := a.refreshTokenRepo.Get(ctx, refreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrRefreshTokenInvalid
	}
	if stored.RevokedAt != nil {
		return auth.LoginResponse{}, auth.ErrRefreshTokenRevoked
	}
	if time.Now().After(stored.ExpiresAt) {
		return auth.LoginResponse{}, auth.ErrTokenExpired
	}

	u, err := a.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		return auth.LoginResponse{}, err
	}
	if !u.IsActive {
		return auth.LoginResponse{}, auth.ErrUserNotActive
	}

	// Rotate: the presented token is single-use
	if err := a.refreshTokenRepo.Revoke(ctx, refreshToken); err != nil {
		return auth.LoginResponse{}, err
	}

	return a.issueTokens(ctx, u)
}

func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	return a.refreshTokenRepo.Revoke(ctx, refreshToken)
}

func (a *AuthServiceImpl) ChangePassword(ctx context.Context, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	u, err := a.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.OldPassword)); err != nil {
		return auth.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return a.userRepo.UpdatePassword(ctx, u.ID, string(hash))
}

func (a *AuthServiceImpl) Me(ctx context.Context, userID string) (auth.ProfileResponse, error) {
	u, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.ProfileResponse{}, err
	}

	return auth.ProfileResponse{
		ID:       u.ID,
		FullName: u.FullName,
		UserName: u.UserName,
		Email:    u.Email,
		Role:     string(u.Role),
		IsActive: u.IsActive,
	}, nil
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, u user.User) (auth.LoginResponse, error) {
	accessToken, _, err := a.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := a.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := a.refreshTokenRepo.Store(ctx, auth.RefreshToken{
		UserID:    u.ID,
		Token:     refreshToken,
		ExpiresAt: time.Unix(refreshExp, 0),
	}); err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return auth.LoginResponse{
		Credentials: auth.Credentials{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	}, nil
}
