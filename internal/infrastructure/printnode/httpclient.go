package printnode

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/printhub/backend/internal/domain/printing"
)

const (
	connectTimeout = 10 * time.Second
	requestTimeout = 20 * time.Second

	// maxResponseSize is the maximum allowed response size from the remote
	// print API (10MB)
	maxResponseSize = 10 * 1024 * 1024

	errorBodyLimit  = 500
	previewLimit    = 200
	contentTypeJSON = "application/json"
)

// newHTTPClient builds the client used for all remote print API calls.
// Connection establishment and the overall request carry separate
// deadlines.
func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: requestTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: connectTimeout,
			}).DialContext,
			TLSHandshakeTimeout: connectTimeout,
		},
	}
}

// buildBasicAuth encodes the API key as an HTTP basic auth header value
// with an empty password.
func buildBasicAuth(apiKey string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(apiKey+":"))
}

// doJSON performs one authenticated request and returns the response body.
// A non-2xx status maps to a ProviderError carrying the status code and a
// truncated body excerpt.
func doJSON(ctx context.Context, client *http.Client, method, url, apiKey string, payload io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return nil, printing.WrapProviderError("build request", err)
	}
	req.Header.Set("Authorization", buildBasicAuth(apiKey))
	req.Header.Set("Accept", contentTypeJSON)
	if payload != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, printing.WrapProviderError(fmt.Sprintf("%s %s", method, url), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, printing.WrapProviderError("read response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, printing.NewProviderErrorf("remote print service returned HTTP %d: %s",
			resp.StatusCode, truncate(string(body), errorBodyLimit))
	}
	return body, nil
}

// extractJobID pulls a job reference out of a submission response. A bare
// numeric body is the reference itself; otherwise the well-known JSON keys
// are probed; failing both, a truncated preview of the body is returned so
// operators still see what came back. A blank body yields "-".
func extractJobID(body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return "-"
	}
	if _, err := strconv.ParseInt(text, 10, 64); err == nil {
		return text
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, key := range []string{"id", "jobId", "printJobId"} {
			if v, ok := payload[key]; ok {
				switch id := v.(type) {
				case string:
					if strings.TrimSpace(id) != "" {
						return id
					}
				case float64:
					return strconv.FormatInt(int64(id), 10)
				}
			}
		}
	}
	return truncate(text, previewLimit)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
