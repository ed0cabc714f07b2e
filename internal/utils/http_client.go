package utils

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultClientTimeout = 15 * time.Second
	defaultRetryCount    = 2
	defaultRetryWait     = 200 * time.Millisecond
)

// HTTPClient is a resty client preconfigured for the passcheck JSON API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client rooted at baseURL. A non-positive timeout
// selects 15s. Idempotent requests are retried on transport errors and 5xx
// responses.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultClientTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(defaultRetryCount).
		SetRetryWaitTime(defaultRetryWait).
		AddRetryCondition(retryIdempotent)

	return &HTTPClient{Client: cli}
}

func retryIdempotent(resp *resty.Response, err error) bool {
	if resp == nil || resp.Request == nil {
		return err != nil
	}
	switch resp.Request.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return err != nil || resp.StatusCode() >= http.StatusInternalServerError
	default:
		return false
	}
}
