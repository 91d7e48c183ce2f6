package web

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"postline/logging"
	"postline/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const postImageDir = "posts"

// NotFound renders the site-wide 404 page; also wired as the NoRoute handler
func NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.tmpl", gin.H{})
}

func serverError(c *gin.Context, err error) {
	logging.Logger.Errorf("server error: %v", err)
	c.String(http.StatusInternalServerError, "server error")
}

// savePostImage stores an uploaded image and returns its media path.
// A missing file is not an error; a file that does not decode as an image is.
func savePostImage(c *gin.Context) (string, string) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return "", ""
	}
	file, err := fileHeader.Open()
	if err != nil {
		return "", "Не удалось прочитать файл."
	}
	_, _, err = image.DecodeConfig(file)
	file.Close()
	if err != nil {
		return "", "Загруженный файл не является изображением."
	}
	file, err = fileHeader.Open()
	if err != nil {
		return "", "Не удалось прочитать файл."
	}
	defer file.Close()
	mediaPath := postImageDir + "/" + uuid.NewString() + imageExt(fileHeader)
	if _, err = storage.Get().Save(mediaPath, file); err != nil {
		logging.Logger.Errorf("saving image %s: %v", mediaPath, err)
		return "", "Не удалось сохранить файл."
	}
	return mediaPath, ""
}

func imageExt(fileHeader *multipart.FileHeader) string {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif":
		return ext
	}
	return ".img"
}

// ServeMedia streams stored media (post images) back to the client
func ServeMedia(c *gin.Context) {
	mediaPath := strings.TrimPrefix(c.Param("path"), "/")
	if strings.Contains(mediaPath, "..") {
		NotFound(c)
		return
	}
	storage.Get().Serve(mediaPath, c.Request, c.Writer)
}
