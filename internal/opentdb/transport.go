package opentdb

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Response is the part of an HTTP response the client looks at.
type Response struct {
	StatusCode int
	Body       []byte
}

// Getter fetches a URL and reports its status code and body.
type Getter interface {
	Get(ctx context.Context, url string) (Response, error)
}

type HTTPGetter struct {
	client *http.Client
}

func NewHTTPGetter(client *http.Client) *HTTPGetter {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPGetter{client: client}
}

func (g *HTTPGetter) Get(ctx context.Context, url string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Response{}, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("read body: %w", err)
	}

	return Response{StatusCode: resp.StatusCode, Body: body}, nil
}
