// Package dto defines data transfer objects for the sync feature's HTTP transport layer.
package dto

// SyncReq represents the request body for the /student/sync-profile endpoint.
type SyncReq struct {
	Email string `json:"email" binding:"required,email"`
}
