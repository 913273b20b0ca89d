package usecase

import (
	"time"

	"github.com/shopspring/decimal"
)

// Placeholder: não há integração com feed de preço. Valores fixos.
var (
	goldPriceUSD   = decimal.RequireFromString("2650.50")
	silverPriceUSD = decimal.RequireFromString("31.25")
)

const spotPriceCurrency = "USD"

func init() {
	// Preço sai como número JSON (2650.5), não como string.
	decimal.MarshalJSONWithoutQuotes = true
}

type SpotPriceUseCase struct {
	Now func() time.Time
}

func NewSpotPriceUseCase() *SpotPriceUseCase {
	return &SpotPriceUseCase{Now: time.Now}
}

func (uc *SpotPriceUseCase) Execute() SpotPriceOutput {
	now := uc.Now
	if now == nil {
		now = time.Now
	}

	return SpotPriceOutput{
		GoldPriceUSD:   goldPriceUSD,
		SilverPriceUSD: silverPriceUSD,
		LastUpdated:    now().UTC().Format(time.RFC3339Nano),
		Currency:       spotPriceCurrency,
	}
}
