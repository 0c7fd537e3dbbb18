package util

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// MaxBodyBytes caps how much of a response GetBytes will read.
var MaxBodyBytes int64 = 32 << 20

// GetBytes fetches url and returns the body of a 2xx response. Bodies larger
// than MaxBodyBytes are rejected.
func GetBytes(url string, timeout time.Duration) ([]byte, error) {
	client := http.Client{Timeout: timeout}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("get %s: unexpected status %s", url, resp.Status)
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > MaxBodyBytes {
		return nil, fmt.Errorf("get %s: body exceeds %d bytes", url, MaxBodyBytes)
	}
	return b, nil
}
