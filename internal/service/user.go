package service

import (
	"context"
	"database/sql"
	"errors"

	"coolgym-backend/internal/domain"
	"coolgym-backend/internal/repository"
)

type userService struct {
	store repository.Store
}

func NewUserService(store repository.Store) UserService {
	return &userService{store: store}
}

func (s *userService) GetUser(ctx context.Context, id int32) (*domain.User, error) {
	user, err := s.store.Users().GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return user, err
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.store.Users().List(ctx)
}

func (s *userService) UpdateProfile(ctx context.Context, id int32, in UpdateProfileInput) (*domain.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Phone != nil {
		user.Phone = in.Phone
	}
	if in.ProfilePhoto != nil {
		user.ProfilePhoto = in.ProfilePhoto
	}
	if in.ClientPlanID != nil {
		user.ClientPlanID = in.ClientPlanID
	}

	if err := s.store.Users().Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
