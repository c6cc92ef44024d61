package upstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/dkcommerce/storefront-gateway/internal/core/domain"
	"github.com/dkcommerce/storefront-gateway/internal/core/ports"
)

// UploadImage streams a file to POST /Blob/UploadImage and normalises the
// response. The upstream has been observed returning several shapes
// ({url}, {data:{url}}, {fileUrl}, a bare string); all collapse to
// {fileName, url} with the url made absolute.
func (c *Client) UploadImage(ctx context.Context, file ports.File) (*domain.Upload, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", file.Name)
	if err != nil {
		return nil, fmt.Errorf("encode upload: %w", err)
	}
	if _, err := io.Copy(part, file.Content); err != nil {
		return nil, fmt.Errorf("encode upload: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("encode upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/Blob/UploadImage"), &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var raw any
	if err := c.do(req, &raw); err != nil {
		return nil, err
	}

	upload := normalizeUpload(raw)
	if upload.FileName == "" {
		upload.FileName = file.Name
	}
	upload.URL = c.AbsoluteURL(upload.URL)
	return &upload, nil
}

func normalizeUpload(raw any) domain.Upload {
	switch v := raw.(type) {
	case string:
		return domain.Upload{URL: v}
	case map[string]any:
		u := domain.Upload{FileName: stringAt(v, "fileName")}
		for _, key := range []string{"url", "fileUrl"} {
			if s := stringAt(v, key); s != "" {
				u.URL = s
				return u
			}
		}
		if data, ok := v["data"].(map[string]any); ok {
			u.URL = stringAt(data, "url")
		}
		return u
	default:
		return domain.Upload{}
	}
}

func stringAt(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
