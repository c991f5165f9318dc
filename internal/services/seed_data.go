package services

import "shopapi/internal/models"

// sampleProducts is the fixed seed set used to populate an empty catalog on
// first startup.
var sampleProducts = []models.Product{
	{
		Title:       "EchoWave Smart Speaker",
		Description: strPtr("Hands-free voice control with immersive 360° sound."),
		Price:       floatPtr(79.99),
		Category:    "Electronics",
		InStock:     boolPtr(true),
		Image:       strPtr("https://images.unsplash.com/photo-1518441902113-c1d4f5a9cfe0?q=80&w=1200&auto=format&fit=crop"),
		Rating:      floatPtr(4.6),
	},
	{
		Title:       "AeroFlex Running Shoes",
		Description: strPtr("Breathable, ultra-light performance running shoes."),
		Price:       floatPtr(129.0),
		Category:    "Fashion",
		InStock:     boolPtr(true),
		Image:       strPtr("https://images.unsplash.com/photo-1542291026-7eec264c27ff?q=80&w=1200&auto=format&fit=crop"),
		Rating:      floatPtr(4.4),
	},
	{
		Title:       "LumaGlow Desk Lamp",
		Description: strPtr("Minimal LED lamp with wireless charging base."),
		Price:       floatPtr(59.5),
		Category:    "Home",
		InStock:     boolPtr(true),
		Image:       strPtr("https://images.unsplash.com/photo-1507473885765-e6ed057f782c?q=80&w=1200&auto=format&fit=crop"),
		Rating:      floatPtr(4.7),
	},
	{
		Title:       "Nimbus Pro Backpack",
		Description: strPtr(`Water-resistant tech backpack with 16" laptop sleeve.`),
		Price:       floatPtr(98.0),
		Category:    "Accessories",
		InStock:     boolPtr(true),
		Image:       strPtr("https://images.unsplash.com/photo-1547949003-9792a18a2601?q=80&w=1200&auto=format&fit=crop"),
		Rating:      floatPtr(4.5),
	},
	{
		Title:       "BrewCraft Coffee Maker",
		Description: strPtr("Programmable pour-over style coffee maker."),
		Price:       floatPtr(149.99),
		Category:    "Kitchen",
		InStock:     boolPtr(true),
		Image:       strPtr("https://images.unsplash.com/photo-1509460913899-35e6c0abf9b0?q=80&w=1200&auto=format&fit=crop"),
		Rating:      floatPtr(4.3),
	},
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }
