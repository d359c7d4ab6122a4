package itemRepo

import (
	"time"

	"teerenta/models"
)

// ItemRepository defines persistence for bookable inventory. Lookups that
// miss return (nil, nil); callers decide what absence means.
type ItemRepository interface {
	Create(item *models.BookableItem) error
	GetActiveByID(kind models.ItemKind, id string) (*models.BookableItem, error)
	ListActive(kind models.ItemKind) ([]models.BookableItem, error)
	ListUpcoming(kind models.ItemKind, from time.Time) ([]models.BookableItem, error)
	ListByCreator(kind models.ItemKind, creatorID string) ([]models.BookableItem, error)
	Update(item *models.BookableItem) error
	Deactivate(kind models.ItemKind, id string) (bool, error)
}
