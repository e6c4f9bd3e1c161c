package models

import "time"

// Image represents an uploaded image in the catalog.
type Image struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Src       string    `json:"src" gorm:"type:varchar(255)"`
	Name      string    `json:"name" gorm:"type:varchar(100)" validate:"required,max=100"`
	AuthorID  string    `json:"-" gorm:"index;type:varchar(100)"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// ImageAuthor is the identity facet denormalized into ImageView.
type ImageAuthor struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// ImageView is the author-joined projection served by the catalog API, so
// clients never need a second lookup to display who uploaded an image.
type ImageView struct {
	ID     string      `json:"id"`
	Src    string      `json:"src"`
	Name   string      `json:"name"`
	Author ImageAuthor `json:"author"`
}
