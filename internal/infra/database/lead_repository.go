package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/xavierca1/rock-bullion-api/internal/entity"
)

type MongoLeadRepository struct {
	Coll *mongo.Collection
}

func NewMongoLeadRepository(coll *mongo.Collection) *MongoLeadRepository {
	return &MongoLeadRepository{Coll: coll}
}

func (r *MongoLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	if _, err := r.Coll.InsertOne(ctx, lead); err != nil {
		return fmt.Errorf("failed to insert lead: %w", err)
	}
	return nil
}

// FindAll devolve na ordem natural da coleção (sem sort explícito).
func (r *MongoLeadRepository) FindAll(ctx context.Context) ([]*entity.Lead, error) {
	cursor, err := r.Coll.Find(ctx, bson.M{}, options.Find().SetProjection(withoutObjectID))
	if err != nil {
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}
	defer cursor.Close(ctx)

	var leads []*entity.Lead
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, fmt.Errorf("failed to decode leads: %w", err)
	}
	return leads, nil
}
