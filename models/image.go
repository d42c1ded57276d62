package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Image is embedded in a Product and only addressable through it.
type Image struct {
	ID        primitive.ObjectID  `bson:"_id" json:"_id"`
	Image     string              `bson:"image" json:"image"`
	Width     int                 `bson:"width" json:"width"`
	Height    int                 `bson:"height" json:"height"`
	Author    *primitive.ObjectID `bson:"author,omitempty" json:"author,omitempty"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time           `bson:"updatedAt" json:"updatedAt"`
}

type ImageInput struct {
	Image  string `json:"image" validate:"required"`
	Width  int    `json:"width" validate:"required,gt=0"`
	Height int    `json:"height" validate:"required,gt=0"`
}

// ImagePatch only carries the reference; width and height cannot be changed after creation.
type ImagePatch struct {
	Image string `json:"image"`
}

// AppendImage adds a new image at the end of the display order and returns it.
func (p *Product) AppendImage(in ImageInput, author *primitive.ObjectID, now time.Time) Image {
	img := Image{
		ID:        primitive.NewObjectID(),
		Image:     in.Image,
		Width:     in.Width,
		Height:    in.Height,
		Author:    author,
		CreatedAt: now,
		UpdatedAt: now,
	}
	p.Images = append(p.Images, img)
	return img
}

// FindImage returns a pointer into p.Images, or nil when id does not resolve.
func (p *Product) FindImage(id string) *Image {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	for i := range p.Images {
		if p.Images[i].ID == oid {
			return &p.Images[i]
		}
	}
	return nil
}

func (p *Product) RemoveImage(id primitive.ObjectID) bool {
	for i := range p.Images {
		if p.Images[i].ID == id {
			p.Images = append(p.Images[:i], p.Images[i+1:]...)
			return true
		}
	}
	return false
}

// ClearImages removes every image, last first.
func (p *Product) ClearImages() {
	for i := len(p.Images) - 1; i >= 0; i-- {
		p.RemoveImage(p.Images[i].ID)
	}
	p.Normalize()
}

// Apply overwrites the reference when the patch carries one. It reports whether img changed.
func (img *Image) Apply(patch ImagePatch, now time.Time) bool {
	if patch.Image == "" || patch.Image == img.Image {
		return false
	}
	img.Image = patch.Image
	img.UpdatedAt = now
	return true
}
