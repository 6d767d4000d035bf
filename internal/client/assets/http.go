package assets

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/tidechat/internal/client/api"
)

// uploadResponse is the files service's success payload.
type uploadResponse struct {
	ID string `json:"id"`
}

// FilesClient uploads assets to the hosted files service over HTTP
// multipart. The service shares the backend's envelope protocol: an
// error-shaped body can come back on the same channel as a success.
type FilesClient struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewFilesClient constructs a FilesClient for the files host base URL.
func NewFilesClient(baseURL, token string) *FilesClient {
	return &FilesClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 2 * time.Minute},
	}
}

// Upload POSTs the staged file to /{tag} as a multipart form and returns
// the asset id. Progress is measured over the encoded request body, so the
// final callback reports soFar == outOf exactly when the body has been
// fully written to the wire.
func (c *FilesClient) Upload(ctx context.Context, localPath, filename, tag, mimeType string, onProgress ProgressFunc) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("opening staged file: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	hdr.Set("Content-Type", mimeType)

	part, err := w.CreatePart(hdr)
	if err != nil {
		return "", fmt.Errorf("creating form part: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("encoding form body: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalizing form body: %w", err)
	}

	total := int64(buf.Len())
	body := newProgressReader(&buf, total, onProgress)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+tag, body)
	if err != nil {
		return "", fmt.Errorf("building upload request: %w", err)
	}
	req.ContentLength = total
	req.Header.Set("Content-Type", w.FormDataContentType())
	if c.token != "" {
		req.Header.Set("x-session-token", c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("uploading asset: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading upload response: %w", err)
	}

	out, err := api.Decode[uploadResponse](respBody)
	if err != nil {
		return "", err
	}
	return out.ID, nil
}
