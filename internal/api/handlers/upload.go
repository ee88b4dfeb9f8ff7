package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
)

const uploadField = "file"

// Upload файл из multipart формы. Body закрывается вызывающим
type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Body        multipart.File
}

// ReadUpload читает поле "file" multipart формы не больше maxBytes
func ReadUpload(w http.ResponseWriter, r *http.Request, maxBytes int64) (*Upload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+(1<<20))
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		return nil, fmt.Errorf("parse multipart form: %w", err)
	}

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, errors.New("file field is required")
		}
		return nil, fmt.Errorf("read form file: %w", err)
	}

	return &Upload{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}, nil
}
