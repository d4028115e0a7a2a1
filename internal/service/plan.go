package service

import (
	"context"
	"database/sql"
	"errors"

	"coolgym-backend/internal/domain"
	"coolgym-backend/internal/logger"
	"coolgym-backend/internal/repository"
)

// defaultPlans is the stock catalog inserted on first boot: three
// individual tiers and three company tiers.
var defaultPlans = []struct {
	name               string
	description        string
	monthlyPrice       float64
	maxEquipmentAccess int32
	maintenance        bool
	priority           bool
}{
	{"Basic", "Perfect for individual users. Access to up to 6 machines.", 18.99, 6, false, false},
	{"Standard", "For active users. Access to up to 12 machines with maintenance support.", 35.13, 12, true, false},
	{"Premium", "For power users. Access to up to 24 machines with full support.", 67.56, 24, true, true},
	{"Small Company", "Perfect for small businesses. Manage up to 10 clients.", 40.51, 10, false, false},
	{"Medium Company", "Ideal for growing companies. Manage up to 30 clients with maintenance support.", 81.08, 30, true, false},
	{"Enterprise Premium", "Ultimate solution for large enterprises. Unlimited clients with priority support.", 162.16, 999, true, true},
}

type clientPlanService struct {
	store repository.Store
}

func NewClientPlanService(store repository.Store) ClientPlanService {
	return &clientPlanService{store: store}
}

func (s *clientPlanService) GetPlan(ctx context.Context, id int32) (*domain.ClientPlan, error) {
	plan, err := s.store.Plans().GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return plan, err
}

func (s *clientPlanService) ListPlans(ctx context.Context) ([]domain.ClientPlan, error) {
	return s.store.Plans().List(ctx)
}

func (s *clientPlanService) SeedDefaultPlans(ctx context.Context) error {
	existing, err := s.store.Plans().List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	err = s.store.ExecTx(ctx, func(tx repository.Store) error {
		for _, p := range defaultPlans {
			plan, err := domain.NewClientPlan(p.name, p.description, p.monthlyPrice, p.maxEquipmentAccess, p.maintenance, p.priority)
			if err != nil {
				return err
			}
			if err := tx.Plans().Create(ctx, plan); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	logger.Info("Seeded client plan catalog", "plans", len(defaultPlans))
	return nil
}
