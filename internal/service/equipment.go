package service

import (
	"context"
	"database/sql"
	"errors"

	"coolgym-backend/internal/domain"
	"coolgym-backend/internal/repository"
)

type equipmentService struct {
	store repository.Store
}

func NewEquipmentService(store repository.Store) EquipmentService {
	return &equipmentService{store: store}
}

func (s *equipmentService) CreateEquipment(ctx context.Context, in CreateEquipmentInput) (*domain.Equipment, error) {
	eq := domain.NewEquipment(in.Name, in.Type, in.Model, in.Manufacturer, in.SerialNumber, in.Code,
		in.InstallationDate, in.PowerWatts, in.Room, in.Floor)
	if err := s.store.Equipment().Create(ctx, eq); err != nil {
		return nil, err
	}
	return eq, nil
}

func (s *equipmentService) GetEquipment(ctx context.Context, id int32) (*domain.Equipment, error) {
	eq, err := s.store.Equipment().GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return eq, err
}

func (s *equipmentService) ListEquipment(ctx context.Context) ([]domain.Equipment, error) {
	return s.store.Equipment().List(ctx)
}

func (s *equipmentService) ListEquipmentByType(ctx context.Context, eqType string) ([]domain.Equipment, error) {
	return s.store.Equipment().ListByType(ctx, eqType)
}

func (s *equipmentService) ListEquipmentByStatus(ctx context.Context, status string) ([]domain.Equipment, error) {
	return s.store.Equipment().ListByStatus(ctx, status)
}

func (s *equipmentService) UpdateEquipment(ctx context.Context, id int32, in UpdateEquipmentInput) (*domain.Equipment, error) {
	eq, err := s.GetEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		eq.Name = *in.Name
	}
	if in.Status != nil {
		if err := eq.UpdateStatus(*in.Status); err != nil {
			return nil, err
		}
	}
	if in.Notes != nil {
		eq.Notes = in.Notes
	}
	if in.Image != nil {
		eq.Image = in.Image
	}
	if in.Room != nil {
		eq.Room = *in.Room
	}
	if in.Floor != nil {
		eq.Floor = *in.Floor
	}
	if in.PowerWatts != nil {
		eq.PowerWatts = *in.PowerWatts
	}

	if err := s.store.Equipment().Update(ctx, eq); err != nil {
		return nil, err
	}
	return eq, nil
}

func (s *equipmentService) DeleteEquipment(ctx context.Context, id int32) error {
	err := s.store.Equipment().SoftDelete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
