package controllers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/PatrimonioSaude/Patrimonio-Backend/src/dtos"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var fotoContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
}

// UploadDir returns where uploaded photos live on disk.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "uploads"
}

// savePhotos stores every "photos" file of a multipart form under the
// upload dir with a generated filename and returns the saved metadata.
func savePhotos(form *multipart.Form) ([]dtos.FotoUploadDTO, error) {
	files := form.File["photos"]
	if len(files) == 0 {
		return nil, nil
	}

	uploadDir := UploadDir()
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return nil, fmt.Errorf("não foi possível criar o diretório de uploads: %w", err)
	}

	saved := make([]dtos.FotoUploadDTO, 0, len(files))
	for _, header := range files {
		ext := filepath.Ext(header.Filename)
		if _, ok := fotoContentTypes[ext]; !ok {
			return nil, fmt.Errorf("apenas imagens são permitidas")
		}

		filename := uuid.NewString() + ext
		src, err := header.Open()
		if err != nil {
			return nil, err
		}

		dst, err := os.Create(filepath.Join(uploadDir, filename))
		if err != nil {
			src.Close()
			return nil, err
		}

		_, err = io.Copy(dst, src)
		src.Close()
		dst.Close()
		if err != nil {
			return nil, err
		}

		saved = append(saved, dtos.FotoUploadDTO{
			Filename:     filename,
			OriginalName: header.Filename,
			Mimetype:     header.Header.Get("Content-Type"),
			Size:         header.Size,
		})
	}
	return saved, nil
}

type UploadController struct{}

func NewUploadController() *UploadController {
	return &UploadController{}
}

// ServeFoto streams a previously uploaded photo with the content type
// derived from its extension.
func (c *UploadController) ServeFoto(ctx *gin.Context) {
	filename := filepath.Base(ctx.Param("filename"))
	path := filepath.Join(UploadDir(), filename)

	if _, err := os.Stat(path); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Imagem não encontrada"})
		return
	}

	contentType, ok := fotoContentTypes[filepath.Ext(filename)]
	if !ok {
		contentType = "application/octet-stream"
	}

	ctx.Header("Content-Type", contentType)
	ctx.Header("Cache-Control", "public, max-age=31536000")
	ctx.File(path)
}
