package service

import (
	"context"
	"database/sql"
	"errors"

	"campreserv-backend/internal/domain"
	"campreserv-backend/internal/repository"
)

type guestService struct {
	guestRepo repository.GuestRepository
}

func NewGuestService(guestRepo repository.GuestRepository) GuestService {
	return &guestService{guestRepo: guestRepo}
}

func (s *guestService) Create(ctx context.Context, guest *domain.Guest) error {
	return s.guestRepo.Create(ctx, guest)
}

func (s *guestService) Get(ctx context.Context, id string) (*domain.Guest, error) {
	guest, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return guest, nil
}

func (s *guestService) List(ctx context.Context, campgroundID string) ([]domain.Guest, error) {
	return s.guestRepo.ListByCampground(ctx, campgroundID)
}
