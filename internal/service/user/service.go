package user

import (
	"context"
	"fmt"
	"time"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/user"
	"github.com/MohamedSalah50/hr-backend-go/internal/domain/usergroup"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	userRepo      user.UserRepository
	userGroupRepo usergroup.UserGroupRepository
}

func NewUserService(userRepo user.UserRepository, userGroupRepo usergroup.UserGroupRepository) user.UserService {
	return &UserServiceImpl{userRepo: userRepo, userGroupRepo: userGroupRepo}
}

func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if req.UserGroupID != nil {
		if _, err := s.userGroupRepo.GetByID(ctx, *req.UserGroupID); err != nil {
			return user.UserResponse{}, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := user.RoleUser
	if req.Role != nil {
		role = user.Role(*req.Role)
	}

	created, err := s.userRepo.Create(ctx, user.User{
		FullName:     req.FullName,
		UserName:     req.UserName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		UserGroupID:  req.UserGroupID,
		IsActive:     true,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *UserServiceImpl) Get(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return mapToResponse(u), nil
}

func (s *UserServiceImpl) List(ctx context.Context, filter user.UserFilter) (user.ListUserResponse, error) {
	users, total, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return user.ListUserResponse{}, err
	}

	result := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, mapToResponse(u))
	}

	return user.ListUserResponse{Data: result, Total: total}, nil
}

func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if req.UserGroupID != nil {
		if _, err := s.userGroupRepo.GetByID(ctx, *req.UserGroupID); err != nil {
			return user.UserResponse{}, err
		}
	}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		hashed := string(hash)
		req.PasswordHash = &hashed
	}

	if err := s.userRepo.Update(ctx, req); err != nil {
		return user.UserResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

func (s *UserServiceImpl) ToggleStatus(ctx context.Context, id string) (user.ToggleUserStatusResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.ToggleUserStatusResponse{}, err
	}

	if err := s.userRepo.SetActive(ctx, id, !u.IsActive); err != nil {
		return user.ToggleUserStatusResponse{}, err
	}

	return user.ToggleUserStatusResponse{ID: id, IsActive: !u.IsActive}, nil
}

func (s *UserServiceImpl) SoftDelete(ctx context.Context, id string) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.SoftDelete(ctx, id)
}

func mapToResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:          u.ID,
		FullName:    u.FullName,
		UserName:    u.UserName,
		Email:       u.Email,
		Role:        string(u.Role),
		UserGroupID: u.UserGroupID,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   u.UpdatedAt.Format(time.RFC3339),
	}
}
