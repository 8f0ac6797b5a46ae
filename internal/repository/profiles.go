// profiles.go
package repository

import (
	"context"
	"time"

	"aventura-gamer-service/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoProfileRepository struct {
	col *mongo.Collection
}

func NewMongoProfileRepository(db *mongo.Database) *MongoProfileRepository {
	return &MongoProfileRepository{col: db.Collection("user_profiles")}
}

func (m *MongoProfileRepository) FindByUserID(ctx context.Context, userID string) (*model.UserProfile, error) {
	var res model.UserProfile
	err := m.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &res, err
}

func (m *MongoProfileRepository) Save(ctx context.Context, p *model.UserProfile) error {
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	filter := bson.M{"user_id": p.UserID}
	update := bson.M{"$set": p}
	opts := options.Update().SetUpsert(true)
	_, err := m.col.UpdateOne(ctx, filter, update, opts)
	return err
}

// UpdatePoints persiste puntos y nivel calculados contra el snapshot leído.
func (m *MongoProfileRepository) UpdatePoints(ctx context.Context, userID string, points, level int) error {
	update := bson.M{"$set": bson.M{
		"points":     points,
		"level":      level,
		"updated_at": time.Now().UTC(),
	}}
	r, err := m.col.UpdateOne(ctx, bson.M{"user_id": userID}, update)
	if err != nil {
		return err
	}
	if r.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
