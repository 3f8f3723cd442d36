package assets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"time"

	_ "golang.org/x/image/webp"
)

// ErrNoImageURL is returned when the sprite API answers without an image URL.
var ErrNoImageURL = errors.New("sprite api response has no image url")

const maxImageBytes = 8 << 20

// RemoteSprite is an image fetched from a sprite API.
type RemoteSprite struct {
	URL   string
	Image image.Image
}

type spriteResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"` // Some public image APIs return the URL here
}

// RemoteClient fetches projectile sprites from a JSON image API.
type RemoteClient struct {
	httpClient *http.Client
}

// NewRemoteClient creates a client whose requests time out after timeout.
func NewRemoteClient(timeout time.Duration) *RemoteClient {
	return &RemoteClient{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchSprite asks api for an image URL, then downloads and decodes it.
func (c *RemoteClient) FetchSprite(ctx context.Context, api string) (*RemoteSprite, error) {
	var body spriteResponse
	if err := c.getJSON(ctx, api, &body); err != nil {
		return nil, err
	}

	url := body.URL
	if url == "" {
		url = body.Message
	}
	if url == "" {
		return nil, ErrNoImageURL
	}

	img, err := c.getImage(ctx, url)
	if err != nil {
		return nil, err
	}
	return &RemoteSprite{URL: url, Image: img}, nil
}

func (c *RemoteClient) getJSON(ctx context.Context, url string, out any) error {
	resp, err := c.get(ctx, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode sprite api response: %w", err)
	}
	return nil
}

func (c *RemoteClient) getImage(ctx context.Context, url string) (image.Image, error) {
	resp, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	img, _, err := image.Decode(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decode sprite image %s: %w", url, err)
	}
	return img, nil
}

func (c *RemoteClient) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s failed: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("request %s returned status %d", url, resp.StatusCode)
	}
	return resp, nil
}
