package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio-api/internal/model"
	"portfolio-api/internal/storage"
)

type userStore interface {
	FindByID(ctx context.Context, id string) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	Create(ctx context.Context, u model.User) error
	Update(ctx context.Context, u model.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.User, error)
}

type UserService struct {
	repo   userStore
	images storage.ImageStore
}

func NewUserService(repo userStore, images storage.ImageStore) *UserService {
	return &UserService{repo: repo, images: images}
}

// UpdateUserParams carries a partial user update. PasswordChanged is the
// explicit "was the password field reassigned" flag: the hash is recomputed
// exactly when it is set, never inferred from the content of the field, so an
// already-hashed value can never be hashed twice.
type UpdateUserParams struct {
	FirstName string
	LastName  string
	Email     string

	Password        string
	PasswordChanged bool

	// AvatarData holds a newly uploaded avatar image; nil leaves the
	// current avatar untouched.
	AvatarData []byte
}

func (s *UserService) Create(ctx context.Context, req model.CreateUserRequest) (model.User, error) {
	hash, err := HashPassword(req.Password)
	if err != nil {
		return model.User{}, err
	}

	now := time.Now().UTC()
	user := model.User{
		ID:        uuid.NewString(),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		Password:  hash,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Email uniqueness is enforced by the users_email_unique constraint;
	// concurrent sign-ups with the same email race to it and exactly one
	// wins.
	if err := s.repo.Create(ctx, user); err != nil {
		return model.User{}, err
	}

	return user, nil
}

func (s *UserService) Update(ctx context.Context, id string, params UpdateUserParams) (model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return model.User{}, err
	}

	if params.FirstName != "" {
		user.FirstName = strings.TrimSpace(params.FirstName)
	}
	if params.LastName != "" {
		user.LastName = strings.TrimSpace(params.LastName)
	}
	if params.Email != "" {
		user.Email = strings.TrimSpace(params.Email)
	}

	if params.PasswordChanged {
		hash, err := HashPassword(params.Password)
		if err != nil {
			return model.User{}, err
		}
		user.Password = hash
	}

	if params.AvatarData != nil {
		avatarPath, err := processAndStoreImage(ctx, s.images, params.AvatarData, avatarMaxSize)
		if err != nil {
			return model.User{}, err
		}
		user.Avatar = avatarPath
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return model.User{}, err
	}

	return user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (model.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
