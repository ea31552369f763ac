package util

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// GetBytes fetches a URL and returns the response body. Non-2xx
// responses are errors.
func GetBytes(url string) ([]byte, error) {
	client := http.Client{Timeout: 12 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
