package http

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"
)

// Response is a fully read upstream reply. Non-2xx statuses are not errors
// here; callers decide what a failed status means.
type Response struct {
	StatusCode int
	Body       []byte
}

func (r Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (hc *Client) Post(ctx context.Context, url string, body io.Reader, opts ...RequestOption) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return Response{}, fmt.Errorf("building request: %w", err)
	}

	hc.applyDefaultHeaders(req)

	for _, opt := range opts {
		opt(req)
	}

	resp, err := hc.client.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("closing upstream response body")
		}
	}(resp.Body)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{StatusCode: resp.StatusCode}, fmt.Errorf("reading response body: %w", err)
	}

	return Response{StatusCode: resp.StatusCode, Body: respBody}, nil
}
