package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/xavierca1/rock-bullion-api/internal/entity"
)

type CreateLeadInput struct {
	FullName           string  `json:"full_name"`
	Email              string  `json:"email"`
	Phone              *string `json:"phone"`
	Country            *string `json:"country"`
	ConsultationMethod *string `json:"consultation_method"`
	Message            *string `json:"message"`
}

type CreateLeadOutput struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type ListLeadsOutput struct {
	Leads []*entity.Lead `json:"leads"`
	Total int            `json:"total"`
}

type ListProductsOutput struct {
	Products []*entity.Product `json:"products"`
}

type SpotPriceOutput struct {
	GoldPriceUSD   decimal.Decimal `json:"gold_price_usd"`
	SilverPriceUSD decimal.Decimal `json:"silver_price_usd"`
	LastUpdated    string          `json:"last_updated"`
	Currency       string          `json:"currency"`
}
