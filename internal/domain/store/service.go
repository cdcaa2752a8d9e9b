package store

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/medoxido/medoxido/internal/platform/apperr"
	"github.com/medoxido/medoxido/internal/platform/db"
)

// Service provides business logic for inventory lots.
type Service struct {
	stores StoreRepository
}

func NewService(r StoreRepository) *Service {
	return &Service{stores: r}
}

func (s *Service) CreateStore(ctx context.Context, st *Store) error {
	fe := apperr.FieldErrors{}
	if st.Medication == uuid.Nil {
		fe.Add("medication", "is required")
	}
	if strings.TrimSpace(st.LotNumber) == "" {
		fe.Add("lot_number", "is required")
	}
	if strings.TrimSpace(st.Unit) == "" {
		fe.Add("unit", "is required")
	}
	switch sign, ok := db.NumericSign(st.Quantity); {
	case !st.Quantity.Valid:
		fe.Add("quantity", "is required")
	case !ok:
		fe.Add("quantity", "must be a finite number")
	case sign < 0:
		fe.Add("quantity", "must not be negative")
	}
	if st.ExpirationDate != nil && !st.ProductionDate.IsZero() && st.ExpirationDate.Before(st.ProductionDate) {
		fe.Add("expiration_date", "must not be before production_date")
	}
	if err := fe.Err(); err != nil {
		return err
	}
	return s.stores.Create(ctx, st)
}

func (s *Service) GetStore(ctx context.Context, id uuid.UUID) (*Store, error) {
	return s.stores.GetByID(ctx, id)
}

func (s *Service) UpdateStore(ctx context.Context, id uuid.UUID, p *Patch) (*Store, error) {
	fe := apperr.FieldErrors{}
	if p.LotNumber != nil && strings.TrimSpace(*p.LotNumber) == "" {
		fe.Add("lot_number", "must not be blank")
	}
	if p.Unit != nil && strings.TrimSpace(*p.Unit) == "" {
		fe.Add("unit", "must not be blank")
	}
	if p.Quantity.Valid {
		if sign, ok := db.NumericSign(p.Quantity); !ok {
			fe.Add("quantity", "must be a finite number")
		} else if sign < 0 {
			fe.Add("quantity", "must not be negative")
		}
	}
	if err := fe.Err(); err != nil {
		return nil, err
	}
	return s.stores.Update(ctx, id, p)
}

func (s *Service) DeleteStore(ctx context.Context, id uuid.UUID) (*Store, error) {
	return s.stores.Delete(ctx, id)
}

func (s *Service) ListStores(ctx context.Context) ([]*Store, error) {
	return s.stores.List(ctx)
}

func (s *Service) DeactivateStore(ctx context.Context, req *DeactivateRequest) (*Store, error) {
	if req.ID == uuid.Nil {
		return nil, apperr.Validation("id", "is required")
	}
	return s.stores.Deactivate(ctx, req.ID, req.User)
}
