package models

import (
	"io"
	"time"
)

// Media is the metadata record of a file stored at the media host.
// The file bytes themselves never touch the database.
type Media struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"userId"`

	// PublicID is the host-side identifier used to delete the object.
	PublicID string `json:"publicId"`

	// SecureURL is the HTTPS address the object is served from.
	SecureURL string `json:"secureUrl"`

	Format       string `json:"format"`
	ResourceType string `json:"resourceType"`
	Bytes        int64  `json:"bytes"`

	// Width and Height are reported for images and videos only.
	Width  *int `json:"width"`
	Height *int `json:"height"`

	OriginalName *string `json:"originalName"`
	Folder       *string `json:"folder"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Media model.
func (m Media) TableName() string {
	return "media"
}

// UploadedFile is a single file received from a multipart upload,
// ready to be forwarded to the media host.
type UploadedFile struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

// HostedObject describes an object after the media host accepted it.
type HostedObject struct {
	PublicID     string
	SecureURL    string
	Format       string
	ResourceType string
	Bytes        int64
	Width        *int
	Height       *int
	Folder       *string
}
