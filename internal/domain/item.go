package domain

import "time"

// Item is a collectable item row of the catalog.
type Item struct {
	ID        int       `db:"id" json:"id" yaml:"id"`
	Title     string    `db:"title" json:"title" yaml:"title"`
	Image     string    `db:"image" json:"image" yaml:"image"`
	CreatedAt time.Time `db:"created_at" json:"created_at" yaml:"-"`
}

// CatalogItem is the selectable view of an Item on the registration form.
type CatalogItem struct {
	ID      int
	Label   string
	IconRef string
}
