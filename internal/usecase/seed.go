package usecase

import "github.com/xavierca1/rock-bullion-api/internal/entity"

// SeedProducts gera o catálogo inicial com ids novos a cada chamada.
func SeedProducts() []*entity.Product {
	return []*entity.Product{
		entity.NewProduct(
			"1 Gram Gold Bar",
			"1",
			"gram",
			"999.9",
			"LBMA Certified",
			"Perfect entry point for new investors. LBMA-certified 1 gram fine gold bar with assay certificate.",
			"https://images.unsplash.com/photo-1755728806854-5f1bb4824174?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDQ2NDJ8MHwxfHNlYXJjaHwxfHxnb2xkJTIwYmFycyUyMGx1eHVyeXxlbnwwfHx8fDE3NjQ3ODU2ODh8MA&ixlib=rb-4.1.0&q=85&w=400",
			"small",
		),
		entity.NewProduct(
			"100 Gram Gold Bar",
			"100",
			"gram",
			"999.9",
			"LBMA Certified",
			"Popular choice for serious investors. Cast or minted 100g bar with full certification.",
			"https://images.unsplash.com/photo-1755728806777-25a38d3fa9a1?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDQ2NDJ8MHwxfHNlYXJjaHwyfHxnb2xkJTIwYmFycyUyMGx1eHVyeXxlbnwwfHx8fDE3NjQ3ODU2ODh8MA&ixlib=rb-4.1.0&q=85&w=400",
			"medium",
		),
		entity.NewProduct(
			"1 Kilogram Gold Bar",
			"1",
			"kilogram",
			"999.9",
			"LBMA Certified",
			"Premium investment bar for substantial holdings. Cast 1kg bar from accredited refinery.",
			"https://images.unsplash.com/photo-1755728806819-26a994fae81a?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDQ2NDJ8MHwxfHNlYXJjaHwzfHxnb2xkJTIwYmFycyUyMGx1eHVyeXxlbnwwfHx8fDE3NjQ3ODU2ODh8MA&ixlib=rb-4.1.0&q=85&w=400",
			"large",
		),
		entity.NewProduct(
			"400 oz Good Delivery Bar",
			"400",
			"troy oz",
			"995.0+",
			"LBMA Good Delivery",
			"Institutional-grade London Good Delivery bar. The gold standard for central banks and major investors.",
			"https://images.pexels.com/photos/8442328/pexels-photo-8442328.jpeg?auto=compress&cs=tinysrgb&w=400",
			"institutional",
		),
	}
}
