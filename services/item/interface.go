package item

import (
	"errors"

	"teerenta/models"
)

// ErrNotFound means the item is absent or has been deactivated.
var ErrNotFound = errors.New("item not found or inactive")

// ErrInvalidKind means the request named an unknown inventory type.
var ErrInvalidKind = errors.New("unknown item kind")

// ItemService manages the bookable-item catalogue.
type ItemService interface {
	Create(it *models.BookableItem) error
	Get(kind models.ItemKind, id string) (*models.BookableItem, error)
	ListActive(kind models.ItemKind) ([]models.BookableItem, error)
	ListUpcoming(kind models.ItemKind) ([]models.BookableItem, error)
	ListByCreator(kind models.ItemKind, creatorID string) ([]models.BookableItem, error)
	Update(it *models.BookableItem) error
	Deactivate(kind models.ItemKind, id string) error
}
