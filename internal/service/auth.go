package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/apperr"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/logger"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/repository"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/security"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/validation"
)

var (
	ErrResetTokenExpired = errors.New("reset token has expired")
	ErrResetTokenUsed    = errors.New("reset token already used")
)

const resetTokenTTL = 1 * time.Hour

type authService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.PasswordResetTokenRepository
	logRepo   repository.ActivityLogRepository
	emailSvc  EmailService
	tokens    security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.PasswordResetTokenRepository, logRepo repository.ActivityLogRepository, emailSvc EmailService, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		logRepo:   logRepo,
		emailSvc:  emailSvc,
		tokens:    tokens,
	}
}

func (s *authService) Signup(ctx context.Context, in validation.UserInput) (*domain.User, string, error) {
	user, password, err := validation.User(in)
	if err != nil {
		return nil, "", err
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, "", err
	}
	user.PasswordHash = hash

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}
	user.PasswordHash = ""

	recordActivity(ctx, s.logRepo, user.ID, "user", user.ID, domain.LogActionCreate, "signup")

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByEmailWithCredential(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			// Same failure as a wrong password, to avoid account enumeration.
			return nil, "", apperr.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !security.VerifyPassword(user.PasswordHash, password) {
		return nil, "", apperr.ErrInvalidCredentials
	}
	user.PasswordHash = ""

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			// Succeed silently for unknown addresses.
			logger.Info("Password reset requested for unknown email")
			return nil
		}
		return err
	}

	token := &domain.PasswordResetToken{
		UserID:    user.ID,
		Token:     uuid.New().String(),
		ExpiresOn: time.Now().Add(resetTokenTTL),
	}
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return err
	}

	return s.emailSvc.SendPasswordReset(ctx, user.Email, user.Name, token.Token)
}

func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	ve := &apperr.ValidationError{}
	validation.Password(ve, newPassword)
	if ve.HasErrors() {
		return ve
	}

	rec, err := s.tokenRepo.GetByToken(ctx, token)
	if err != nil {
		return err
	}
	if rec.Used() {
		return ErrResetTokenUsed
	}
	if rec.Expired(time.Now()) {
		return ErrResetTokenExpired
	}

	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, rec.UserID, hash); err != nil {
		return err
	}
	if err := s.tokenRepo.MarkUsed(ctx, rec.ID, time.Now()); err != nil {
		return err
	}

	recordActivity(ctx, s.logRepo, rec.UserID, "user", rec.UserID, domain.LogActionUpdate, "password reset")
	return nil
}
