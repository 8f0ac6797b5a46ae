// payments.go
package repository

import (
	"context"
	"errors"

	"aventura-gamer-service/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicate indica que el documento ya existía (clave única violada).
var ErrDuplicate = errors.New("el documento ya existe")

type MongoPaymentRepository struct {
	col *mongo.Collection
}

func NewMongoPaymentRepository(db *mongo.Database) *MongoPaymentRepository {
	return &MongoPaymentRepository{col: db.Collection("payments")}
}

// InsertIfAbsent registra el pago usando el id externo como _id. Si el
// webhook se entrega dos veces, el segundo insert devuelve ErrDuplicate y el
// llamador sabe que la orden ya fue creada.
func (m *MongoPaymentRepository) InsertIfAbsent(ctx context.Context, rec model.PaymentRecord) error {
	_, err := m.col.InsertOne(ctx, rec)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

type MongoCheckoutRepository struct {
	col *mongo.Collection
}

func NewMongoCheckoutRepository(db *mongo.Database) *MongoCheckoutRepository {
	return &MongoCheckoutRepository{col: db.Collection("checkouts")}
}

func (m *MongoCheckoutRepository) Save(ctx context.Context, c *model.Checkout) error {
	_, err := m.col.InsertOne(ctx, c)
	return err
}

func (m *MongoCheckoutRepository) FindByCheckoutID(ctx context.Context, checkoutID string) (*model.Checkout, error) {
	var res model.Checkout
	err := m.col.FindOne(ctx, bson.M{"checkout_id": checkoutID}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &res, err
}
