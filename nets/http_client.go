package nets

import (
	"net/http"
	"time"
)

// HTTPClient fetches remote machine descriptions.
type HTTPClient = *http.Client

func (Module) HTTPClient(
	dialer Dialer,
) HTTPClient {
	return &http.Client{
		Transport: &http.Transport{
			DialContext:         dialer.DialContext,
			TLSHandshakeTimeout: 10 * time.Second,
		},
		Timeout: time.Minute,
	}
}
