package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UploadedFile struct {
	Filename string
	Data     []byte
}

// ReadFormFile reads the file sent in the multipart field. An absent field,
// or a request that is not multipart at all, yields nil without error.
func ReadFormFile(c *gin.Context, field string) (*UploadedFile, error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", field, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", field, err)
	}

	return &UploadedFile{Filename: header.Filename, Data: data}, nil
}
