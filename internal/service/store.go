package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SergeyBogomolovv/cuidja-orders/internal/entities"

	"golang.org/x/sync/singleflight"
)

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	Delete(ctx context.Context, key string)
}

type StoreRepo interface {
	GetStore(ctx context.Context, storeID string) (entities.Store, error)
	StoreByOwner(ctx context.Context, ownerID string) (entities.Store, error)
}

// storeResolver отвечает на вопрос "чей это магазин" и "какой магазин у продавца".
// Магазины меняются редко, поэтому ответы кешируются.
type storeResolver struct {
	logger *slog.Logger
	repo   StoreRepo
	cache  Cache
	group  singleflight.Group
}

func NewStoreResolver(logger *slog.Logger, repo StoreRepo, cache Cache) *storeResolver {
	return &storeResolver{
		logger: logger.With(slog.String("service", "store")),
		repo:   repo,
		cache:  cache,
	}
}

func (s *storeResolver) Store(ctx context.Context, storeID string) (entities.Store, error) {
	return s.resolve(ctx, "store:"+storeID, func(ctx context.Context) (entities.Store, error) {
		return s.repo.GetStore(ctx, storeID)
	})
}

func (s *storeResolver) StoreOfSeller(ctx context.Context, sellerID string) (entities.Store, error) {
	return s.resolve(ctx, "owner:"+sellerID, func(ctx context.Context) (entities.Store, error) {
		return s.repo.StoreByOwner(ctx, sellerID)
	})
}

func (s *storeResolver) resolve(ctx context.Context, key string, load func(ctx context.Context) (entities.Store, error)) (entities.Store, error) {
	if data, ok := s.cache.Get(ctx, key); ok {
		var store entities.Store
		if err := store.Unmarshal(data); err == nil {
			return store, nil
		}
		s.logger.WarnContext(ctx, "invalid store in cache", slog.String("key", key))
		s.cache.Delete(ctx, key)
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		var store entities.Store
		fn := func() error {
			var err error
			store, err = load(ctx)
			return err
		}
		if err := retry(ctx, fn); err != nil {
			return entities.Store{}, err
		}

		if data, err := store.Marshal(); err == nil {
			s.cache.Set(ctx, key, data)
		} else {
			s.logger.WarnContext(ctx, "failed to marshal store", slog.String("store_id", store.ID), slog.Any("error", err))
		}
		return store, nil
	})
	if err != nil {
		if !errors.Is(err, entities.ErrNotFound) {
			s.logger.ErrorContext(ctx, "failed to resolve store", slog.String("key", key), slog.Any("error", err))
		}
		return entities.Store{}, err
	}
	return v.(entities.Store), nil
}
