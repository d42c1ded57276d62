package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	NameTR        string             `bson:"nameTR" json:"nameTR"`
	NameAR        string             `bson:"nameAR" json:"nameAR"`
	DescriptionTR string             `bson:"descriptionTR" json:"descriptionTR"`
	DescriptionAR string             `bson:"descriptionAR" json:"descriptionAR"`
	Images        []Image            `bson:"images" json:"images"` // display order
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProductInput is the create payload.
type ProductInput struct {
	NameTR        string       `json:"nameTR" validate:"required"`
	NameAR        string       `json:"nameAR" validate:"required"`
	DescriptionTR string       `json:"descriptionTR" validate:"required"`
	DescriptionAR string       `json:"descriptionAR" validate:"required"`
	Images        []ImageInput `json:"images" validate:"omitempty,dive"`
}

// NewProduct builds an unsaved Product; every image gets a fresh id.
func (in ProductInput) NewProduct(now time.Time) Product {
	p := Product{
		NameTR:        in.NameTR,
		NameAR:        in.NameAR,
		DescriptionTR: in.DescriptionTR,
		DescriptionAR: in.DescriptionAR,
		Images:        make([]Image, 0, len(in.Images)),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, img := range in.Images {
		p.AppendImage(img, nil, now)
	}
	return p
}

// ProductUpdate is a partial $set over the text fields. Nil fields are left alone.
type ProductUpdate struct {
	NameTR        *string `json:"nameTR,omitempty" validate:"omitnil,min=1"`
	NameAR        *string `json:"nameAR,omitempty" validate:"omitnil,min=1"`
	DescriptionTR *string `json:"descriptionTR,omitempty" validate:"omitnil,min=1"`
	DescriptionAR *string `json:"descriptionAR,omitempty" validate:"omitnil,min=1"`
}

func (u ProductUpdate) IsEmpty() bool {
	return u.NameTR == nil && u.NameAR == nil && u.DescriptionTR == nil && u.DescriptionAR == nil
}

// SetDocument returns the $set document for u, stamping updatedAt.
func (u ProductUpdate) SetDocument(now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if u.NameTR != nil {
		set["nameTR"] = *u.NameTR
	}
	if u.NameAR != nil {
		set["nameAR"] = *u.NameAR
	}
	if u.DescriptionTR != nil {
		set["descriptionTR"] = *u.DescriptionTR
	}
	if u.DescriptionAR != nil {
		set["descriptionAR"] = *u.DescriptionAR
	}
	return set
}

// DeleteSummary is returned by the bulk delete.
type DeleteSummary struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// Normalize makes a decoded document safe to serialize: images is never null.
func (p *Product) Normalize() {
	if p.Images == nil {
		p.Images = []Image{}
	}
}
