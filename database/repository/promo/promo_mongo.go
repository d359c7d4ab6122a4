package promoRepo

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

// MongoPromoRepo implements PromoRepository using MongoDB.
type MongoPromoRepo struct {
	coll *mongo.Collection
}

// NewMongoPromoRepo creates a new instance of PromoRepository using MongoDB.
func NewMongoPromoRepo() PromoRepository {
	coll := database.Database().Collection("promo_codes")
	repo := &MongoPromoRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPromoRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create promo indexes: %w", err)
	}
	return nil
}

// Create inserts a new promo code document.
func (r *MongoPromoRepo) Create(p *models.PromoCode) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to create promo code: %w", err)
	}
	return nil
}

// GetByCode retrieves a promo by its exact code.
func (r *MongoPromoRepo) GetByCode(code string) (*models.PromoCode, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.PromoCode
	err := r.coll.FindOne(ctx, bson.M{"code": code}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch promo code: %w", err)
	}
	return &p, nil
}

// ReserveUsage decrements the usage counter iff the code is unexpired and
// has uses left. The precondition and the decrement are a single UpdateOne,
// so two concurrent reservations cannot both take the last use.
func (r *MongoPromoRepo) ReserveUsage(code string, now time.Time) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"code":        code,
		"expiry_date": bson.M{"$gt": now},
		"usage_limit": bson.M{"$gt": 0},
	}
	update := bson.M{
		"$inc": bson.M{"usage_limit": -1},
		"$set": bson.M{"updated_at": now},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to reserve promo usage: %w", err)
	}
	return result.MatchedCount > 0, nil
}

// ReleaseUsage gives a reserved use back after a downstream failure.
func (r *MongoPromoRepo) ReleaseUsage(code string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$inc": bson.M{"usage_limit": 1},
		"$set": bson.M{"updated_at": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"code": code}, update)
	if err != nil {
		return fmt.Errorf("failed to release promo usage: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("promo code %s not found", code)
	}
	return nil
}
