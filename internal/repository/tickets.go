// tickets.go
package repository

import (
	"context"
	"time"

	"aventura-gamer-service/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoTicketRepository struct {
	col *mongo.Collection
}

func NewMongoTicketRepository(db *mongo.Database) *MongoTicketRepository {
	return &MongoTicketRepository{col: db.Collection("service_tickets")}
}

func (m *MongoTicketRepository) Save(ctx context.Context, t *model.ServiceTicket) error {
	now := time.Now().UTC()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now

	filter := bson.M{"ticket_id": t.TicketID}
	update := bson.M{"$set": t}
	opts := options.Update().SetUpsert(true)
	_, err := m.col.UpdateOne(ctx, filter, update, opts)
	return err
}

func (m *MongoTicketRepository) FindByTicketID(ctx context.Context, ticketID string) (*model.ServiceTicket, error) {
	var res model.ServiceTicket
	err := m.col.FindOne(ctx, bson.M{"ticket_id": ticketID}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &res, err
}

// UpdateEstado cambia el estado y pisa presupuesto/notas/fotos si vienen.
func (m *MongoTicketRepository) UpdateEstado(ctx context.Context, ticketID, estado string, quote *float64, adminNotes string, adminImages []string) error {
	set := bson.M{
		"estado":     estado,
		"updated_at": time.Now().UTC(),
	}
	if quote != nil {
		set["quote"] = *quote
	}
	if adminNotes != "" {
		set["admin_notes"] = adminNotes
	}
	if len(adminImages) > 0 {
		set["admin_images"] = adminImages
	}

	r, err := m.col.UpdateOne(ctx, bson.M{"ticket_id": ticketID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if r.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoTicketRepository) AppendComment(ctx context.Context, ticketID string, comment model.TicketComment) error {
	update := bson.M{
		"$push": bson.M{"comments": comment},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	r, err := m.col.UpdateOne(ctx, bson.M{"ticket_id": ticketID}, update)
	if err != nil {
		return err
	}
	if r.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoTicketRepository) FindAll(ctx context.Context) ([]*model.ServiceTicket, error) {
	return m.find(ctx, bson.M{})
}

func (m *MongoTicketRepository) FindByUserID(ctx context.Context, userID string) ([]*model.ServiceTicket, error) {
	return m.find(ctx, bson.M{"user_id": userID})
}

func (m *MongoTicketRepository) find(ctx context.Context, filter bson.M) ([]*model.ServiceTicket, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*model.ServiceTicket
	for cur.Next(ctx) {
		var v model.ServiceTicket
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, cur.Err()
}
