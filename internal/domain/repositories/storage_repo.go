package repositories

import "mime/multipart"

// StorageStrategy abstracts where uploaded media ends up (local disk or S3).
// Save and SavePath return the public URL path stored on the row.
type StorageStrategy interface {
	Save(file multipart.File, folder, filename string) (string, error)
	SavePath(localPath, folder, filename string) (string, error)
	Remove(publicPath string) error
	Exists(publicPath string) bool
	// Materialize yields a local filesystem path for the stored object so
	// ffmpeg can read it; cleanup must be called when done.
	Materialize(publicPath string) (localPath string, cleanup func(), err error)
}
