// achievements.go
package repository

import (
	"context"
	"time"

	"aventura-gamer-service/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoAchievementRepository struct {
	defs   *mongo.Collection
	claims *mongo.Collection
}

func NewMongoAchievementRepository(db *mongo.Database) *MongoAchievementRepository {
	return &MongoAchievementRepository{
		defs:   db.Collection("achievements"),
		claims: db.Collection("achievement_claims"),
	}
}

// EnsureIndexes crea el índice único (user, achievement) que respalda la
// garantía de reclamo único.
func (m *MongoAchievementRepository) EnsureIndexes(ctx context.Context) error {
	_, err := m.claims.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "achievement_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (m *MongoAchievementRepository) Save(ctx context.Context, a *model.Achievement) error {
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now

	filter := bson.M{"achievement_id": a.AchievementID}
	update := bson.M{"$set": a}
	opts := options.Update().SetUpsert(true)
	_, err := m.defs.UpdateOne(ctx, filter, update, opts)
	return err
}

func (m *MongoAchievementRepository) FindByID(ctx context.Context, id string) (*model.Achievement, error) {
	var res model.Achievement
	err := m.defs.FindOne(ctx, bson.M{"achievement_id": id}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &res, err
}

func (m *MongoAchievementRepository) FindAll(ctx context.Context) ([]*model.Achievement, error) {
	cur, err := m.defs.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*model.Achievement
	for cur.Next(ctx) {
		var v model.Achievement
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, cur.Err()
}

func (m *MongoAchievementRepository) Delete(ctx context.Context, id string) error {
	r, err := m.defs.DeleteOne(ctx, bson.M{"achievement_id": id})
	if err != nil {
		return err
	}
	if r.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// FindClaimedIDs devuelve el set de logros ya reclamados por el usuario.
func (m *MongoAchievementRepository) FindClaimedIDs(ctx context.Context, userID string) (map[string]bool, error) {
	cur, err := m.claims.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	claimed := map[string]bool{}
	for cur.Next(ctx) {
		var c model.AchievementClaim
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		claimed[c.AchievementID] = true
	}
	return claimed, cur.Err()
}

// InsertClaim inserta el reclamo; el índice único lo rechaza si ya existe.
func (m *MongoAchievementRepository) InsertClaim(ctx context.Context, claim model.AchievementClaim) error {
	_, err := m.claims.InsertOne(ctx, claim)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}
