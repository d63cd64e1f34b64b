package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	httpClientRetryCount   = 2
	httpClientRetryWait    = 200 * time.Millisecond
	httpClientRetryMaxWait = 2 * time.Second
	httpClientUserAgent    = "go-contacts-client"
)

// HTTPClient embeds *resty.Client so the whole resty API is available.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().SetResult(&contacts).Get("http://localhost:8080/api/contacts")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a resty client that retries failed GET requests on
// transport errors and 502/503/504 responses. Writes are never retried:
// repeating a create would produce a duplicate record.
//
// Each call returns an independent client with its own connection pool.
//
// Returns:
//
//	*HTTPClient - a client with retry policy, User-Agent and no base URL
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	client.SetBaseURL("http://localhost:8080").SetTimeout(5 * time.Second)
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", httpClientUserAgent).
		SetRetryCount(httpClientRetryCount).
		SetRetryWaitTime(httpClientRetryWait).
		SetRetryMaxWaitTime(httpClientRetryMaxWait).
		AddRetryCondition(retryIdempotentReads)

	return &HTTPClient{Client: client}
}

func retryIdempotentReads(resp *resty.Response, err error) bool {
	if resp == nil || resp.Request == nil || resp.Request.Method != http.MethodGet {
		return false
	}
	if err != nil {
		return true
	}

	switch resp.StatusCode() {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}
