package dto

import (
	"time"

	"github.com/milsabores/bakery-api/internal/domain"
)

// ProductRequest payload for catalog create/update.
type ProductRequest struct {
	Code        string `json:"code" validate:"required,max=50"`
	Name        string `json:"name" validate:"required,max=255"`
	Category    string `json:"category" validate:"required,max=100"`
	PriceCLP    int    `json:"price_clp" validate:"required,gt=0"`
	Description string `json:"description"`
	Image       string `json:"image" validate:"max=500"`
	Featured    bool   `json:"featured"`
}

// ProductResponse catalog item view.
type ProductResponse struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	PriceCLP    int       `json:"price_clp"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewProductResponse maps a domain product.
func NewProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Category:    p.Category,
		PriceCLP:    p.PriceCLP,
		Description: p.Description,
		Image:       p.Image,
		Featured:    p.Featured,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
