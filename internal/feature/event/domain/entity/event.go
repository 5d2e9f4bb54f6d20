// Package entity defines the domain entities for the event feature.
package entity

import "time"

// Event is a campus event created by an admin and listed publicly.
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `json:"description"`
	Date        time.Time `gorm:"index" json:"date"`
	Location    string    `gorm:"size:255" json:"location"`

	// CreatedBy is the email of the admin who created the event.
	CreatedBy string `gorm:"size:255" json:"createdBy"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
