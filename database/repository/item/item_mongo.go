package itemRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"teerenta/database"
	"teerenta/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collectionNames maps each item kind to its MongoDB collection.
var collectionNames = map[models.ItemKind]string{
	models.KindActivity:       "activities",
	models.KindItinerary:      "itineraries",
	models.KindTransportation: "transportations",
	models.KindFlight:         "flights",
	models.KindHotel:          "hotels",
}

// MongoItemRepo implements ItemRepository using MongoDB, one collection per kind.
type MongoItemRepo struct {
	db *mongo.Database
}

// NewMongoItemRepo creates a new instance of ItemRepository using MongoDB.
func NewMongoItemRepo() ItemRepository {
	repo := &MongoItemRepo{db: database.Database()}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoItemRepo) coll(kind models.ItemKind) *mongo.Collection {
	return r.db.Collection(collectionNames[kind])
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoItemRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	for _, kind := range models.AllKinds {
		indexModels := []mongo.IndexModel{
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "date", Value: 1}}},
			{Keys: bson.D{{Key: "created_by", Value: 1}}},
		}
		if _, err := r.coll(kind).Indexes().CreateMany(ctx, indexModels); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", kind, err)
		}
	}
	return nil
}

// Create inserts a new item document.
func (r *MongoItemRepo) Create(item *models.BookableItem) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	if _, err := r.coll(item.Kind).InsertOne(ctx, item); err != nil {
		return fmt.Errorf("failed to create %s: %w", item.Kind, err)
	}
	return nil
}

// GetActiveByID retrieves an active item by its unique ID.
func (r *MongoItemRepo) GetActiveByID(kind models.ItemKind, id string) (*models.BookableItem, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var item models.BookableItem
	filter := bson.M{"id": id, "is_active": true}
	err := r.coll(kind).FindOne(ctx, filter).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s %s: %w", kind, id, err)
	}
	return &item, nil
}

// ListActive returns every active item of the given kind.
func (r *MongoItemRepo) ListActive(kind models.ItemKind) ([]models.BookableItem, error) {
	return r.list(kind, bson.M{"is_active": true})
}

// ListUpcoming returns active items whose service date is not before from.
func (r *MongoItemRepo) ListUpcoming(kind models.ItemKind, from time.Time) ([]models.BookableItem, error) {
	return r.list(kind, bson.M{"is_active": true, "date": bson.M{"$gte": from}})
}

// ListByCreator returns items created by the given provider, active or not.
func (r *MongoItemRepo) ListByCreator(kind models.ItemKind, creatorID string) ([]models.BookableItem, error) {
	return r.list(kind, bson.M{"created_by": creatorID})
}

func (r *MongoItemRepo) list(kind models.ItemKind, filter bson.M) ([]models.BookableItem, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll(kind).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}
	defer cursor.Close(ctx)

	var items []models.BookableItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s list: %w", kind, err)
	}
	return items, nil
}

// Update modifies an existing item document.
func (r *MongoItemRepo) Update(item *models.BookableItem) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	item.UpdatedAt = time.Now()
	filter := bson.M{"id": item.ID}
	update := bson.M{"$set": item}

	result, err := r.coll(item.Kind).UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update %s %s: %w", item.Kind, item.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%s with id %s not found", item.Kind, item.ID)
	}
	return nil
}

// Deactivate soft-deletes an item. Returns false when no document matched.
func (r *MongoItemRepo) Deactivate(kind models.ItemKind, id string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"is_active": false, "updated_at": time.Now()}}

	result, err := r.coll(kind).UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to deactivate %s %s: %w", kind, id, err)
	}
	return result.MatchedCount > 0, nil
}
