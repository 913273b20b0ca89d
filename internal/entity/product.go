package entity

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrProductNotFound = errors.New("product not found")

// Product é um item do catálogo. Os registros são semeados uma única vez e nunca alterados.
type Product struct {
	ID            string `json:"id" bson:"id"`
	Name          string `json:"name" bson:"name"`
	Weight        string `json:"weight" bson:"weight"`
	WeightUnit    string `json:"weight_unit" bson:"weight_unit"`
	Purity        string `json:"purity" bson:"purity"`
	Certification string `json:"certification" bson:"certification"`
	Description   string `json:"description" bson:"description"`
	ImageURL      string `json:"image_url" bson:"image_url"`
	Category      string `json:"category" bson:"category"`
}

func NewProduct(name, weight, weightUnit, purity, certification, description, imageURL, category string) *Product {
	return &Product{
		ID:            uuid.New().String(),
		Name:          name,
		Weight:        weight,
		WeightUnit:    weightUnit,
		Purity:        purity,
		Certification: certification,
		Description:   description,
		ImageURL:      imageURL,
		Category:      category,
	}
}

type ProductRepositoryInterface interface {
	FindAll(ctx context.Context) ([]*Product, error)
	FindByID(ctx context.Context, id string) (*Product, error)
	Count(ctx context.Context) (int64, error)
	CreateMany(ctx context.Context, products []*Product) error
}
