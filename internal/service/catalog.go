package service

import (
	"context"
	"database/sql"
	"errors"

	"coolgym-backend/internal/domain"
	"coolgym-backend/internal/repository"
)

type rentalItemService struct {
	store repository.Store
}

func NewRentalItemService(store repository.Store) RentalItemService {
	return &rentalItemService{store: store}
}

func (s *rentalItemService) CreateRentalItem(ctx context.Context, in CreateRentalItemInput) (*domain.RentalItem, error) {
	item, err := domain.NewRentalItem(in.Name, in.Type, in.Model, in.MonthlyPrice, in.Currency, in.ImageURL, in.IsAvailable)
	if err != nil {
		return nil, err
	}

	exists, err := s.store.RentalItems().ExistsByNameAndModel(ctx, item.Name, item.Model)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateRentalItem
	}

	if err := s.store.RentalItems().Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *rentalItemService) GetRentalItem(ctx context.Context, id int32) (*domain.RentalItem, error) {
	item, err := s.store.RentalItems().GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return item, err
}

func (s *rentalItemService) ListRentalItems(ctx context.Context) ([]domain.RentalItem, error) {
	return s.store.RentalItems().List(ctx)
}

func (s *rentalItemService) ListRentalItemsByType(ctx context.Context, itemType string) ([]domain.RentalItem, error) {
	return s.store.RentalItems().ListByType(ctx, itemType)
}

func (s *rentalItemService) ListAvailableRentalItems(ctx context.Context) ([]domain.RentalItem, error) {
	return s.store.RentalItems().ListAvailable(ctx)
}

func (s *rentalItemService) UpdateRentalItem(ctx context.Context, id int32, in UpdateRentalItemInput) (*domain.RentalItem, error) {
	item, err := s.store.RentalItems().GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := item.UpdateBasicInfo(in.Name, in.Type, in.Model, in.ImageURL); err != nil {
		return nil, err
	}
	if err := item.UpdateMonthlyPrice(in.MonthlyPrice, in.Currency); err != nil {
		return nil, err
	}
	item.SetAvailability(in.IsAvailable)

	if err := s.store.RentalItems().Update(ctx, item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *rentalItemService) SetRentalItemAvailability(ctx context.Context, id int32, available bool) (*domain.RentalItem, error) {
	item, err := s.store.RentalItems().GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	item.SetAvailability(available)
	if err := s.store.RentalItems().Update(ctx, item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *rentalItemService) DeleteRentalItem(ctx context.Context, id int32) error {
	err := s.store.RentalItems().SoftDelete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
