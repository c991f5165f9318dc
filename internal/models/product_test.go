package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shopapi/internal/models"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func TestProductSerialize_Defaults(t *testing.T) {
	// A record lacking price, in_stock and rating: price coerces to 0,
	// in_stock to true, rating stays null.
	p := models.Product{
		ID:    "prod-1",
		Title: "Bare Product",
	}

	resp := p.Serialize()

	assert.Equal(t, "prod-1", resp.ID)
	assert.Equal(t, "Bare Product", resp.Title)
	assert.Nil(t, resp.Description)
	assert.Equal(t, 0.0, resp.Price)
	assert.Equal(t, "", resp.Category)
	assert.True(t, resp.InStock)
	assert.Nil(t, resp.Image)
	assert.Nil(t, resp.Rating)
}

func TestProductSerialize_AllFields(t *testing.T) {
	p := models.Product{
		ID:          "prod-2",
		Title:       "LumaGlow Desk Lamp",
		Description: strPtr("Minimal LED lamp with wireless charging base."),
		Price:       floatPtr(59.5),
		Category:    "Home",
		InStock:     boolPtr(false),
		Image:       strPtr("https://example.com/lamp.jpg"),
		Rating:      floatPtr(4.7),
	}

	resp := p.Serialize()

	assert.Equal(t, "prod-2", resp.ID)
	assert.Equal(t, "LumaGlow Desk Lamp", resp.Title)
	assert.Equal(t, "Minimal LED lamp with wireless charging base.", *resp.Description)
	assert.Equal(t, 59.5, resp.Price)
	assert.Equal(t, "Home", resp.Category)
	assert.False(t, resp.InStock)
	assert.Equal(t, "https://example.com/lamp.jpg", *resp.Image)
	assert.Equal(t, 4.7, *resp.Rating)
}
