package service

import (
	"context"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/apperr"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/repository"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/security"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/validation"
)

type userService struct {
	userRepo repository.UserRepository
	logRepo  repository.ActivityLogRepository
}

func NewUserService(userRepo repository.UserRepository, logRepo repository.ActivityLogRepository) UserService {
	return &userService{userRepo: userRepo, logRepo: logRepo}
}

func (s *userService) List(ctx context.Context, page, limit int32) ([]domain.User, int32, error) {
	return s.userRepo.List(ctx, page, limit)
}

func (s *userService) Get(ctx context.Context, id int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) Create(ctx context.Context, actorID int32, in validation.UserInput) (*domain.User, error) {
	user, password, err := validation.User(in)
	if err != nil {
		return nil, err
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	user.PasswordHash = ""

	recordActivity(ctx, s.logRepo, actorID, "user", user.ID, domain.LogActionCreate, user.Email)
	return user, nil
}

func (s *userService) Update(ctx context.Context, actorID, id int32, in validation.UserUpdateInput) (*domain.User, error) {
	normalized, err := validation.UserUpdate(in)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Name = normalized.Name
	user.Email = normalized.Email
	user.Role = normalized.Role

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.logRepo, actorID, "user", user.ID, domain.LogActionUpdate, user.Email)
	return user, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID int32, currentPassword, newPassword string) error {
	ve := &apperr.ValidationError{}
	validation.Password(ve, newPassword)
	if ve.HasErrors() {
		return ve
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	withCred, err := s.userRepo.GetByEmailWithCredential(ctx, user.Email)
	if err != nil {
		return err
	}
	if !security.VerifyPassword(withCred.PasswordHash, currentPassword) {
		return apperr.ErrInvalidCredentials
	}

	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}

	recordActivity(ctx, s.logRepo, userID, "user", userID, domain.LogActionUpdate, "password change")
	return nil
}
