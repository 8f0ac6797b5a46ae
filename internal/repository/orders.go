// orders.go
package repository

import (
	"context"
	"errors"
	"time"

	"aventura-gamer-service/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("documento no encontrado")

// Mongo implementation
type MongoOrderRepository struct {
	col *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{col: db.Collection("orders")}
}

func (m *MongoOrderRepository) Save(ctx context.Context, o *model.Order) error {
	now := time.Now().UTC()

	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
		// Primer estado en historial
		o.History = []model.StatusRecord{
			{
				Status:    o.ShippingStatus,
				Timestamp: now,
				UserID:    o.UserID,
				Reason:    "Orden creada",
			},
		}
	}
	o.UpdatedAt = now

	filter := bson.M{"order_id": o.OrderID}
	update := bson.M{"$set": o}
	opts := options.Update().SetUpsert(true)
	_, err := m.col.UpdateOne(ctx, filter, update, opts)
	return err
}

func (m *MongoOrderRepository) FindByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	var res model.Order
	err := m.col.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &res, err
}

// UpdateStatus fija el estado nuevo, pushea el registro al historial y
// estampa shipped_at / delivered_at cuando corresponde.
func (m *MongoOrderRepository) UpdateStatus(ctx context.Context, orderID, newStatus string, record model.StatusRecord, extra bson.M) error {
	set := bson.M{
		"shipping_status": newStatus,
		"updated_at":      time.Now().UTC(),
	}
	for k, v := range extra {
		set[k] = v
	}

	update := bson.M{
		"$set":  set,
		"$push": bson.M{"history": record},
	}

	r, err := m.col.UpdateOne(ctx, bson.M{"order_id": orderID}, update)
	if err != nil {
		return err
	}
	if r.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoOrderRepository) FindAll(ctx context.Context) ([]*model.Order, error) {
	return m.find(ctx, bson.M{})
}

func (m *MongoOrderRepository) FindByStatus(ctx context.Context, st string) ([]*model.Order, error) {
	return m.find(ctx, bson.M{"shipping_status": st})
}

func (m *MongoOrderRepository) FindByUserID(ctx context.Context, userID string) ([]*model.Order, error) {
	return m.find(ctx, bson.M{"user_id": userID})
}

func (m *MongoOrderRepository) CountByUserID(ctx context.Context, userID string) (int64, error) {
	return m.col.CountDocuments(ctx, bson.M{"user_id": userID})
}

func (m *MongoOrderRepository) find(ctx context.Context, filter bson.M) ([]*model.Order, error) {
	// Más recientes primero: el cliente particiona preservando este orden
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*model.Order
	for cur.Next(ctx) {
		var v model.Order
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, cur.Err()
}
