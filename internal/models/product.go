package models

import "time"

// Product represents a product record as stored in the catalog.
// Description, Price, InStock, Image and Rating are pointers because a
// stored record may lack them; the response shape fills in the defaults.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title       string    `json:"title" validate:"required"`
	Description *string   `json:"description" validate:"omitempty,max=500"`
	Price       *float64  `json:"price" validate:"omitempty,gte=0"`
	Category    string    `json:"category"`
	InStock     *bool     `json:"in_stock"`
	Image       *string   `json:"image"`
	Rating      *float64  `json:"rating"`
	CreatedAt   time.Time `json:"-" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"-" gorm:"autoUpdateTime"`
}

// ProductResponse is the public shape returned by the catalog endpoint.
// A missing price coerces to 0 and a missing in_stock to true, while a
// missing rating stays null.
type ProductResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	InStock     bool     `json:"in_stock"`
	Image       *string  `json:"image"`
	Rating      *float64 `json:"rating"`
}

// Serialize maps a stored product into its public response shape.
func (p Product) Serialize() ProductResponse {
	resp := ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		InStock:     true,
		Image:       p.Image,
		Rating:      p.Rating,
	}
	if p.Price != nil {
		resp.Price = *p.Price
	}
	if p.InStock != nil {
		resp.InStock = *p.InStock
	}
	return resp
}
