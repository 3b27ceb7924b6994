package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Response is the raw upstream reply. Non-2xx statuses are not turned into
// errors here; callers need the status and body to decide what to surface.
type Response struct {
	StatusCode int
	Body       []byte
}

func (r *Response) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// PostForm sends a single url-encoded POST.
func (hc *Client) PostForm(ctx context.Context, endpoint string, form url.Values, opts ...RequestOption) (*Response, error) {
	return hc.Post(ctx, endpoint, strings.NewReader(form.Encode()), opts...)
}

func (hc *Client) Post(ctx context.Context, endpoint string, body io.Reader, opts ...RequestOption) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, err
	}

	hc.applyDefaultHeaders(req)

	for _, opt := range opts {
		opt(req)
	}

	resp, err := hc.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			fmt.Println("Something went wrong while closing response")
		}
	}(resp.Body)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{StatusCode: resp.StatusCode, Body: respBody}, nil
}
