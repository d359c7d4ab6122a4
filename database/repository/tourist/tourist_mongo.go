package touristRepo

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

// MongoTouristRepo implements TouristRepository using MongoDB.
type MongoTouristRepo struct {
	coll *mongo.Collection
}

// NewMongoTouristRepo creates a new instance of TouristRepository using MongoDB.
func NewMongoTouristRepo() TouristRepository {
	coll := database.Database().Collection("tourists")
	repo := &MongoTouristRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTouristRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create tourist indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a tourist by its unique ID.
func (r *MongoTouristRepo) GetByID(id string) (*models.Tourist, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var t models.Tourist
	err := r.coll.FindOne(ctx, bson.M{"id": id, "is_active": true}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tourist %s: %w", id, err)
	}
	return &t, nil
}

// Update modifies an existing tourist document.
func (r *MongoTouristRepo) Update(t *models.Tourist) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	t.UpdatedAt = time.Now()
	filter := bson.M{"id": t.ID}
	update := bson.M{"$set": t}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update tourist %s: %w", t.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("tourist with id %s not found", t.ID)
	}
	return nil
}

// DebitWallet performs the balance check and the debit as one UpdateOne, so
// the wallet can never go negative.
func (r *MongoTouristRepo) DebitWallet(id string, amount float64) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "wallet": bson.M{"$gte": amount}}
	update := bson.M{
		"$inc": bson.M{"wallet": -amount},
		"$set": bson.M{"updated_at": time.Now()},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to debit wallet for tourist %s: %w", id, err)
	}
	return result.MatchedCount > 0, nil
}

// CreditWallet adds amount to the tourist's wallet.
func (r *MongoTouristRepo) CreditWallet(id string, amount float64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$inc": bson.M{"wallet": amount},
		"$set": bson.M{"updated_at": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to credit wallet for tourist %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("tourist with id %s not found", id)
	}
	return nil
}

// AddLoyaltyPoints accrues points earned from a completed payment.
func (r *MongoTouristRepo) AddLoyaltyPoints(id string, points float64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$inc": bson.M{"loyalty_points": points},
		"$set": bson.M{"updated_at": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to add loyalty points for tourist %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("tourist with id %s not found", id)
	}
	return nil
}
