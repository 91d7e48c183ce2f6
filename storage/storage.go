package storage

import (
	"io"
	"net/http"

	"postline/config"
)

// API abstracts where uploaded media ends up. Paths are relative to the
// media root, e.g. "posts/<name>.jpg".
type API interface {
	Save(path string, reader io.Reader) (int64, error)
	Load(path string, writer io.Writer) (int64, error)
	Serve(path string, request *http.Request, writer http.ResponseWriter)
	Delete(path string) error
}

var instance API

func Init() {
	if config.S3_BUCKET != "" {
		instance = NewS3Storage()
	} else {
		instance = NewDiskStorage(config.MEDIA_DIR)
	}
}

func Get() API {
	return instance
}
