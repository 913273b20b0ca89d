package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/xavierca1/rock-bullion-api/internal/entity"
)

// O _id do Mongo nunca sai da API; o id público é o campo "id".
var withoutObjectID = bson.M{"_id": 0}

type MongoProductRepository struct {
	Coll *mongo.Collection
}

func NewMongoProductRepository(coll *mongo.Collection) *MongoProductRepository {
	return &MongoProductRepository{Coll: coll}
}

func (r *MongoProductRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	cursor, err := r.Coll.Find(ctx, bson.M{}, options.Find().SetProjection(withoutObjectID))
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []*entity.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

func (r *MongoProductRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	err := r.Coll.FindOne(ctx, bson.M{"id": id}, options.FindOne().SetProjection(withoutObjectID)).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return &product, nil
}

func (r *MongoProductRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.Coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

func (r *MongoProductRepository) CreateMany(ctx context.Context, products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(products))
	for _, p := range products {
		docs = append(docs, p)
	}

	if _, err := r.Coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert products: %w", err)
	}
	return nil
}
