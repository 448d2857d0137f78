package models

import "time"

// ProductImage is a hosted image reference with alt text for the storefront.
type ProductImage struct {
	URL     string `json:"url" bson:"url"`
	AltText string `json:"altText,omitempty" bson:"altText,omitempty"`
}

type Product struct {
	ProductID     string         `json:"productId" bson:"productId"`
	Name          string         `json:"name" bson:"name"`
	Description   string         `json:"description" bson:"description"`
	Price         float64        `json:"price" bson:"price"`
	DiscountPrice float64        `json:"discountPrice,omitempty" bson:"discountPrice,omitempty"`
	CountInStock  int            `json:"countInStock" bson:"countInStock"`
	SKU           string         `json:"sku,omitempty" bson:"sku,omitempty"`
	Category      string         `json:"category" bson:"category"`
	Brand         string         `json:"brand,omitempty" bson:"brand,omitempty"`
	Sizes         []string       `json:"sizes" bson:"sizes"`
	Colors        []string       `json:"colors" bson:"colors"`
	Collections   string         `json:"collections,omitempty" bson:"collections,omitempty"`
	Material      string         `json:"material,omitempty" bson:"material,omitempty"`
	Gender        string         `json:"gender,omitempty" bson:"gender,omitempty"`
	Images        []ProductImage `json:"images" bson:"images"`
	IsFeatured    bool           `json:"isFeatured" bson:"isFeatured"`
	IsPublished   bool           `json:"isPublished" bson:"isPublished"`
	Tags          []string       `json:"tags,omitempty" bson:"tags,omitempty"`
	Rating        float64        `json:"rating" bson:"rating"`
	NumReviews    int            `json:"numReviews" bson:"numReviews"`
	CreatedBy     string         `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedAt     time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt" bson:"updatedAt"`
}
