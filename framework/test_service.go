package framework

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// TestServiceInfo is status information from the initial status query.
type TestServiceInfo struct {
	StatusURL    string
	StatusCode   int
	Server       string
	ResponseTime time.Duration
}

func queryTestServiceInfo(url string, timeout time.Duration, output io.Writer) (TestServiceInfo, error) {
	fmt.Fprintf(output, "Connecting to service at %s", url)

	client := &http.Client{Timeout: timeout}
	deadline := time.Now().Add(timeout)
	for {
		fmt.Fprintf(output, ".")
		started := time.Now()
		resp, err := client.Get(url)
		if err == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			// A 5xx here usually means a hosted service that is still starting up
			if resp.StatusCode < 500 || !time.Now().Before(deadline) {
				fmt.Fprintln(output)
				fmt.Fprintf(output, "Status query returned HTTP %d\n", resp.StatusCode)
				return TestServiceInfo{
					StatusURL:    url,
					StatusCode:   resp.StatusCode,
					Server:       resp.Header.Get("Server"),
					ResponseTime: time.Since(started),
				}, nil
			}
		} else if !time.Now().Before(deadline) {
			fmt.Fprintln(output)
			return TestServiceInfo{}, fmt.Errorf("timed out, result of last query was: %w", err)
		}
		time.Sleep(time.Millisecond * 100)
	}
}
