// Package dto defines data transfer objects for the event feature's HTTP transport layer.
package dto

import "time"

// EventReq represents the request body for creating an event.
type EventReq struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" binding:"required"`
	Location    string    `json:"location"`
}
