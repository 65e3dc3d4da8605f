package service

import (
	"context"
	"log/slog"

	"github.com/SergeyBogomolovv/cuidja-orders/internal/entities"
)

type ListingRepo interface {
	GetListing(ctx context.Context, listingID string) (entities.Listing, error)
	SetListingAvailability(ctx context.Context, listingID string, available bool) (entities.Listing, error)
}

type listingService struct {
	logger *slog.Logger
	repo   ListingRepo
	stores StoreFinder
}

func NewListingService(logger *slog.Logger, repo ListingRepo, stores StoreFinder) *listingService {
	return &listingService{
		logger: logger.With(slog.String("service", "listing")),
		repo:   repo,
		stores: stores,
	}
}

// SetAvailability включает или скрывает товар/услугу. Доступно только владельцу магазина.
func (s *listingService) SetAvailability(ctx context.Context, listingID, actorID string, available bool) (entities.Listing, error) {
	var listing entities.Listing
	fn := func() error {
		var err error
		listing, err = s.repo.GetListing(ctx, listingID)
		return err
	}
	if err := retry(ctx, fn); err != nil {
		return entities.Listing{}, err
	}

	store, err := s.stores.Store(ctx, listing.StoreID)
	if err != nil {
		return entities.Listing{}, classify(err)
	}
	if actorID == "" || store.OwnerID != actorID {
		return entities.Listing{}, permissionError("listing %s belongs to another store", listingID)
	}
	if listing.Available == available {
		return listing, nil
	}

	fn = func() error {
		var err error
		listing, err = s.repo.SetListingAvailability(ctx, listingID, available)
		return err
	}
	if err := retry(ctx, fn); err != nil {
		s.logger.Log(ctx, failureLevel(err), "failed to set availability", slog.String("listing_id", listingID), slog.Any("error", err))
		return entities.Listing{}, err
	}

	s.logger.DebugContext(ctx, "listing availability changed", slog.String("listing_id", listingID), slog.Bool("available", available))
	return listing, nil
}
