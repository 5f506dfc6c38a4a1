package services

import (
	"context"

	"tripify/internal/infra"
	"tripify/internal/models/db_models"
	"tripify/internal/models/request_models"
	"tripify/internal/models/response_models"
	"tripify/internal/repositories"
	"tripify/pkg/utils"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.TokenResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.TokenResponse, error)
}

type AuthService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthServiceInterface {
	return &AuthService{
		userRepo: userRepo,
	}
}

func (a *AuthService) Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.TokenResponse, error) {

	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	newUser := &db_models.User{
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Name:         request.Name,
	}
	if err := a.userRepo.Create(ctx, newUser); err != nil {
		// Two registrations racing on the same email; the unique index
		// rejects the second writer.
		if infra.IsUniqueViolation(err) {
			return nil, utils.ErrEmailAlreadyExists
		}
		return nil, utils.ErrDatabaseError
	}

	token, err := utils.CreateToken(newUser.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

func (a *AuthService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.TokenResponse, error) {

	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}
