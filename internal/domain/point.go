package domain

import (
	"time"

	"github.com/google/uuid"
)

type Point struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Whatsapp  string    `db:"whatsapp"`
	UF        string    `db:"uf"`
	City      string    `db:"city"`
	Latitude  float64   `db:"latitude"`
	Longitude float64   `db:"longitude"`
	CreatedAt time.Time `db:"created_at"`

	Items []int `db:"-"`
}

func (p *Point) Coordinate() Coordinate {
	return Coordinate{Latitude: p.Latitude, Longitude: p.Longitude}
}

// PointPayload is the wire form of a collection point registration.
type PointPayload struct {
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Whatsapp  string  `json:"whatsapp" binding:"required,whatsapp"`
	UF        string  `json:"uf" binding:"required,len=2"`
	City      string  `json:"city" binding:"required"`
	Latitude  float64 `json:"latitude" binding:"latitude"`
	Longitude float64 `json:"longitude" binding:"longitude"`
	Items     []int   `json:"items" binding:"required,min=1,dive,gt=0"`
}

func NewPointFromPayload(id uuid.UUID, payload PointPayload, now time.Time) *Point {
	items := make([]int, len(payload.Items))
	copy(items, payload.Items)

	return &Point{
		ID:        id,
		Name:      payload.Name,
		Email:     payload.Email,
		Whatsapp:  payload.Whatsapp,
		UF:        payload.UF,
		City:      payload.City,
		Latitude:  payload.Latitude,
		Longitude: payload.Longitude,
		CreatedAt: now,
		Items:     items,
	}
}
