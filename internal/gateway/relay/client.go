package relay

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net"
	"net/http"
	"net/textproto"
	"strings"
	"time"
)

const DefaultTimeout = 60 * time.Second

// Client relays an image to the background-removal backend and classifies the
// response. It keeps no state between calls.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint: strings.TrimSpace(endpoint),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// RemoveBackground issues one multipart POST carrying the payload as
// clothes_image and the name as clothes_filename. Every upstream signal maps
// to exactly one terminal Outcome; there are no retries.
func (c *Client) RemoveBackground(ctx context.Context, filename string, payload []byte) Outcome {
	body, contentType, err := encodeRequest(filename, payload)
	if err != nil {
		return serverError(http.StatusInternalServerError, fmt.Sprintf("encode upstream request: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return serverError(http.StatusInternalServerError, fmt.Sprintf("build upstream request: %v", err))
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		image, err := decodeSuccessBody(resp)
		if err != nil {
			log.Printf("relay: upstream returned %d but body was unusable: %v", resp.StatusCode, err)
			return serverError(http.StatusInternalServerError, "upstream returned an empty image")
		}
		return success(image)
	}
	return classifyFailureStatus(resp.StatusCode)
}

func encodeRequest(filename string, payload []byte) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="clothes_image"; filename="%s"`, filename))
	header.Set("Content-Type", http.DetectContentType(payload))
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(payload); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("clothes_filename", filename); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return body, w.FormDataContentType(), nil
}

// decodeSuccessBody accepts the two encodings the backend is known to emit:
// a JSON document with a base64 image embedded, or the raw image stream.
// Both yield the same byte slice for the publisher.
func decodeSuccessBody(resp *http.Response) ([]byte, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read upstream body: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("empty upstream body")
	}

	contentType := resp.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		return decodeEmbeddedImage(raw)
	}
	return raw, nil
}

func decodeEmbeddedImage(raw []byte) ([]byte, error) {
	var doc struct {
		Image     string `json:"image"`
		ImageData string `json:"image_data"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse upstream json: %w", err)
	}
	encoded := doc.Image
	if encoded == "" {
		encoded = doc.ImageData
	}
	if encoded == "" {
		return nil, errors.New("upstream json carries no image field")
	}
	image, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode embedded image: %w", err)
	}
	if len(image) == 0 {
		return nil, errors.New("embedded image is empty")
	}
	return image, nil
}

func classifyTransportError(err error) Outcome {
	if errors.Is(err, context.DeadlineExceeded) {
		return timeout()
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return timeout()
	}
	// Connection refused, DNS failure, reset: the backend is not reachable.
	return unavailable()
}

func classifyFailureStatus(code int) Outcome {
	switch code {
	case http.StatusUnsupportedMediaType:
		return clientError(code, "unsupported file type")
	case http.StatusUnprocessableEntity:
		return clientError(code, "image unprocessable / too blurry")
	case http.StatusInternalServerError:
		return serverError(code, "upstream model failure")
	}
	if code >= 400 && code < 500 {
		return clientError(code, fmt.Sprintf("unexpected upstream status %d", code))
	}
	return serverError(code, fmt.Sprintf("unexpected upstream status %d", code))
}
