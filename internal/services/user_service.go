package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"
	"tripify/internal/models/db_models"
	"tripify/internal/models/request_models"
	"tripify/internal/models/response_models"
	"tripify/internal/repositories"
	"tripify/pkg/utils"
)

type UserServiceInterface interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*response_models.UserResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, request request_models.UpdateUserRequest) (*response_models.UserResponse, error)
	DeleteAccount(ctx context.Context, userId uuid.UUID) error
}

type UserService struct {
	userRepo repositories.UserRepository
	storage  StorageService
}

func NewUserService(userRepo repositories.UserRepository, storage StorageService) UserServiceInterface {
	return &UserService{
		userRepo: userRepo,
		storage:  storage,
	}
}

func toUserResponse(user *db_models.User) *response_models.UserResponse {
	return &response_models.UserResponse{
		ID:            user.ID.String(),
		Email:         user.Email,
		Name:          user.Name,
		ProfilePicURL: user.ProfilePicURL,
		CreatedAt:     user.CreatedAt,
	}
}

func (u *UserService) GetProfile(ctx context.Context, userId uuid.UUID) (*response_models.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, userId.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}

	// Older rows may predate the name column being required.
	if strings.TrimSpace(user.Name) == "" {
		user.Name = strings.Split(user.Email, "@")[0]
	}

	return toUserResponse(user), nil
}

func (u *UserService) UpdateProfile(ctx context.Context, userId uuid.UUID, request request_models.UpdateUserRequest) (*response_models.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, userId.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}

	if request.Name != nil {
		user.Name = *request.Name
	}
	if request.ProfilePicURL != nil {
		user.ProfilePicURL = *request.ProfilePicURL
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toUserResponse(user), nil
}

func (u *UserService) DeleteAccount(ctx context.Context, userId uuid.UUID) error {
	if err := u.userRepo.Delete(ctx, userId.String()); err != nil {
		return utils.ErrDatabaseError
	}

	// Blob cleanup is best-effort; orphaned objects are acceptable.
	if count, err := u.storage.DeletePrefix(ctx, u.storage.UserPrefix(userId.String())); err != nil {
		log.Printf("Error cleaning blob prefix for user %s: %v", userId, err)
	} else if count > 0 {
		log.Printf("Deleted %d blobs for user %s", count, userId)
	}

	return nil
}
