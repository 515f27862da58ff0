// Package storage abstracts the object-storage collaborator that holds
// uploaded profile photos, logos and résumé files.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Uploader stores a file and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, filename string) (string, error)
}

// CloudinaryUploader implements Uploader against Cloudinary.
type CloudinaryUploader struct {
	client *cloudinary.Cloudinary
}

// NewCloudinaryUploader builds a client from a cloudinary:// URL.
func NewCloudinaryUploader(url string) (*CloudinaryUploader, error) {
	client, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("configure cloudinary: %w", err)
	}
	return &CloudinaryUploader{client: client}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file io.Reader, filename string) (string, error) {
	res, err := u.client.Upload.Upload(ctx, file, uploader.UploadParams{
		// Let the service detect image vs raw document.
		ResourceType: "auto",
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", filename, err)
	}
	return res.SecureURL, nil
}
