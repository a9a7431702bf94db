package service

import (
	"context"
	"strings"

	"cardify/internal/models"
	"cardify/internal/repository"
	"cardify/internal/validation"
)

type UserService struct {
	userRepo repository.UserRepository
}

type UpdateProfileInput struct {
	UserID uint
	Name   string
	Avatar string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	updates := map[string]any{}

	if in.Name != "" {
		if err := validation.ValidateName(in.Name); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		updates["name"] = strings.TrimSpace(in.Name)
	}
	if in.Avatar != "" {
		const maxAvatarLen = 500
		if len(in.Avatar) > maxAvatarLen {
			return nil, models.NewValidationError("Avatar URL too long (max 500 characters)")
		}
		updates["avatar"] = in.Avatar
	}

	if len(updates) > 0 {
		if err := s.userRepo.UpdateProfile(ctx, in.UserID, updates); err != nil {
			return nil, err
		}
	}
	return s.userRepo.GetByID(ctx, in.UserID)
}
