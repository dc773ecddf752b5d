package model

import "time"

// Document describes an object uploaded for an organization. It is built
// from the upload call itself; nothing is persisted locally — the backing
// store owns existence, size, and content.
type Document struct {
	OrgID       string    `json:"org_id"`
	Filename    string    `json:"filename"`
	Key         string    `json:"key"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// SignedLink is a time-limited, read-only download URL for one object.
// It is generated on demand, never cached, and cannot be revoked; it simply
// stops working at ExpiresAt.
type SignedLink struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
