package item

import (
	"context"
	"encoding/json"
	"time"

	itemRepo "teerenta/database/repository/item"
	"teerenta/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const listCacheTTL = 5 * time.Minute

// DefaultItemService is the ItemService backed by the item repository, with
// a Redis cache in front of the active-item listing.
type DefaultItemService struct {
	Repo   itemRepo.ItemRepository
	Cache  *redis.Client // nil disables caching
	Logger *zap.Logger
}

// Create registers a new bookable item.
func (s *DefaultItemService) Create(it *models.BookableItem) error {
	if !it.Kind.Valid() {
		return ErrInvalidKind
	}
	if it.ID == "" {
		it.ID = uuid.New().String()
	}
	it.IsActive = true
	if err := s.Repo.Create(it); err != nil {
		return err
	}
	s.invalidateListCache(it.Kind)
	return nil
}

// Get returns an active item by id.
func (s *DefaultItemService) Get(kind models.ItemKind, id string) (*models.BookableItem, error) {
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}
	it, err := s.Repo.GetActiveByID(kind, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, ErrNotFound
	}
	return it, nil
}

// ListActive returns every active item of the kind, served from cache when
// possible.
func (s *DefaultItemService) ListActive(kind models.ItemKind) ([]models.BookableItem, error) {
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}

	ctx := context.Background()
	key := listCacheKey(kind)
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var items []models.BookableItem
			if err := json.Unmarshal([]byte(cached), &items); err == nil {
				return items, nil
			}
		}
	}

	items, err := s.Repo.ListActive(kind)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(items); err == nil {
			if err := s.Cache.Set(ctx, key, data, listCacheTTL).Err(); err != nil {
				s.Logger.Warn("failed to cache item listing",
					zap.String("kind", string(kind)), zap.Error(err))
			}
		}
	}
	return items, nil
}

// ListUpcoming returns active items whose service date has not passed.
func (s *DefaultItemService) ListUpcoming(kind models.ItemKind) ([]models.BookableItem, error) {
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}
	return s.Repo.ListUpcoming(kind, time.Now())
}

// ListByCreator returns the provider's own items, active or not.
func (s *DefaultItemService) ListByCreator(kind models.ItemKind, creatorID string) ([]models.BookableItem, error) {
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}
	return s.Repo.ListByCreator(kind, creatorID)
}

// Update modifies an item and drops the stale listing cache.
func (s *DefaultItemService) Update(it *models.BookableItem) error {
	if !it.Kind.Valid() {
		return ErrInvalidKind
	}
	if err := s.Repo.Update(it); err != nil {
		return err
	}
	s.invalidateListCache(it.Kind)
	return nil
}

// Deactivate soft-deletes an item; existing bookings keep their records.
func (s *DefaultItemService) Deactivate(kind models.ItemKind, id string) error {
	if !kind.Valid() {
		return ErrInvalidKind
	}
	matched, err := s.Repo.Deactivate(kind, id)
	if err != nil {
		return err
	}
	if !matched {
		return ErrNotFound
	}
	s.invalidateListCache(kind)
	return nil
}

func (s *DefaultItemService) invalidateListCache(kind models.ItemKind) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(context.Background(), listCacheKey(kind)).Err(); err != nil {
		s.Logger.Warn("failed to invalidate item listing cache",
			zap.String("kind", string(kind)), zap.Error(err))
	}
}

func listCacheKey(kind models.ItemKind) string {
	return "items:active:" + string(kind)
}
