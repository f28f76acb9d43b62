package storage

import "mime/multipart"

// Client abstracts the external object storage the catalog's image assets
// live in. Handlers depend on this interface so tests can swap in a mock.
type Client interface {
	UploadImage(file multipart.File, folder, filename, contentType string) (string, error)
	DeleteFile(objectPath string) error
}
