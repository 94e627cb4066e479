package core

import (
	"context"
)

// DemoRequestInput is the request body posted by the landing pages.
type DemoRequestInput struct {
	FullName string `json:"fullName" binding:"required,notblank"`
	Email    string `json:"email" binding:"required,notblank"`
}

// DemoRequest is a captured lead asking for a product demo.
type DemoRequest struct {
	ID        string `db:"id" json:"id"`
	FullName  string `db:"full_name" json:"full_name"`
	Email     string `db:"email" json:"email"`
	CreatedAt string `db:"created_at" json:"created_at"`
}

// RemoteDemoStore defines the managed database that receives demo requests first.
type RemoteDemoStore interface {
	// Create inserts the demo request as a single row. ID and CreatedAt are set by the caller.
	Create(ctx context.Context, req *DemoRequest) error
}

// RemoteStoreProvider hands out the process-wide remote store.
type RemoteStoreProvider interface {
	// Client returns the remote store, or nil when it is not configured.
	Client() RemoteDemoStore
	// Status reports which remote settings are present.
	Status() RemoteStoreStatus
}

// LocalDemoStore defines the embedded fallback database.
type LocalDemoStore interface {
	// Save inserts one row and returns it with the store-assigned id and timestamp.
	Save(ctx context.Context, fullName, email string) (*DemoRequest, error)
}

// RemoteStoreStatus reports, without secrets, whether remote storage looks configured.
type RemoteStoreStatus struct {
	SupabaseConfigured bool `json:"supabaseConfigured"`
	HasURL             bool `json:"hasUrl"`
	HasServiceKey      bool `json:"hasServiceKey"`
}
