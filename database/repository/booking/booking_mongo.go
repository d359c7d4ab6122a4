package bookingRepo

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

// collectionNames maps each item kind to its booking collection.
var collectionNames = map[models.ItemKind]string{
	models.KindActivity:       "booked_activities",
	models.KindItinerary:      "booked_itineraries",
	models.KindTransportation: "booked_transportations",
	models.KindFlight:         "booked_flights",
	models.KindHotel:          "booked_hotels",
}

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	db *mongo.Database
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	repo := &MongoBookingRepo{db: database.Database()}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBookingRepo) coll(kind models.ItemKind) *mongo.Collection {
	return r.db.Collection(collectionNames[kind])
}

// ensureIndexes creates indexes for the duplicate-booking lookup and the sweep.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	for _, kind := range models.AllKinds {
		indexModels := []mongo.IndexModel{
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "tourist_id", Value: 1}, {Key: "item_id", Value: 1}, {Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "date", Value: 1}}},
		}
		if _, err := r.coll(kind).Indexes().CreateMany(ctx, indexModels); err != nil {
			return fmt.Errorf("failed to create indexes for %s bookings: %w", kind, err)
		}
	}
	return nil
}

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(b *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	if _, err := r.coll(b.Kind).InsertOne(ctx, b); err != nil {
		return fmt.Errorf("failed to create %s booking: %w", b.Kind, err)
	}
	return nil
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(kind models.ItemKind, id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var b models.Booking
	err := r.coll(kind).FindOne(ctx, bson.M{"id": id}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s booking %s: %w", kind, id, err)
	}
	return &b, nil
}

// FindPendingByTouristAndItem returns the tourist's active Pending booking
// for the item, if any.
func (r *MongoBookingRepo) FindPendingByTouristAndItem(kind models.ItemKind, itemID, touristID string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"item_id":    itemID,
		"tourist_id": touristID,
		"status":     models.BookingPending,
		"is_active":  true,
	}
	var b models.Booking
	err := r.coll(kind).FindOne(ctx, filter).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up pending %s booking: %w", kind, err)
	}
	return &b, nil
}

// ListByTourist returns the tourist's active bookings of the given kind.
func (r *MongoBookingRepo) ListByTourist(kind models.ItemKind, touristID string) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"tourist_id": touristID, "is_active": true}
	cursor, err := r.coll(kind).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s bookings: %w", kind, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode %s bookings: %w", kind, err)
	}
	return bookings, nil
}

// TransitionStatus performs a conditional status update. The filter pins the
// current status, so backward transitions never match.
func (r *MongoBookingRepo) TransitionStatus(kind models.ItemKind, id string, from, to models.BookingStatus) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": from}
	update := bson.M{"$set": bson.M{"status": to, "updated_at": time.Now()}}

	result, err := r.coll(kind).UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to transition %s booking %s: %w", kind, id, err)
	}
	return result.MatchedCount > 0, nil
}

// CompletePastDue is the sweep update: one UpdateMany per kind over active
// Pending bookings dated strictly before the cutoff.
func (r *MongoBookingRepo) CompletePastDue(kind models.ItemKind, before time.Time) (int64, error) {
	ctx, cancel := newContext(30 * time.Second)
	defer cancel()

	filter := bson.M{
		"is_active": true,
		"status":    models.BookingPending,
		"date":      bson.M{"$lt": before},
	}
	update := bson.M{"$set": bson.M{"status": models.BookingCompleted, "updated_at": time.Now()}}

	result, err := r.coll(kind).UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to complete past-due %s bookings: %w", kind, err)
	}
	return result.ModifiedCount, nil
}
