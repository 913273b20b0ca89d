package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const LeadStatusNew = "new"

// Lead é um pedido de contato vindo do site. Append-only: nunca é atualizado nem removido.
type Lead struct {
	ID                 string    `json:"id" bson:"id"`
	FullName           string    `json:"full_name" bson:"full_name"`
	Email              string    `json:"email" bson:"email"`
	Phone              *string   `json:"phone" bson:"phone"`
	Country            *string   `json:"country" bson:"country"`
	ConsultationMethod *string   `json:"consultation_method" bson:"consultation_method"`
	Message            *string   `json:"message" bson:"message"`
	CreatedAt          time.Time `json:"created_at" bson:"created_at"`
	Status             string    `json:"status" bson:"status"`
}

// NewLead preenche os campos atribuídos pelo servidor (id, created_at em UTC, status "new").
func NewLead(fullName, email string, phone, country, consultationMethod, message *string) *Lead {
	return &Lead{
		ID:                 uuid.New().String(),
		FullName:           fullName,
		Email:              email,
		Phone:              phone,
		Country:            country,
		ConsultationMethod: consultationMethod,
		Message:            message,
		CreatedAt:          time.Now().UTC(),
		Status:             LeadStatusNew,
	}
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
	FindAll(ctx context.Context) ([]*Lead, error)
}
