package descs

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/nets"
)

// Load reads a description from a file path or an http(s) URL.
type Load func(ctx context.Context, location string) (Description, error)

var ErrFetch = errors.New("fetch description")

func (Module) Load(
	client nets.HTTPClient,
	logger logs.Logger,
) Load {
	return func(ctx context.Context, location string) (desc Description, err error) {
		defer func() {
			if err != nil {
				err = logs.WrapSpan(ctx, fmt.Errorf("load %s: %w", location, err))
			}
		}()

		format, err := FormatOf(location)
		if err != nil {
			return
		}

		if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
			if err != nil {
				return desc, wrap(err)
			}
			resp, err := client.Do(req)
			if err != nil {
				return desc, wrap(err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return desc, fmt.Errorf("%w: status %s", ErrFetch, resp.Status)
			}
			logger.DebugContext(ctx, "fetched description",
				"url", location,
			)
			return Decode(resp.Body, format)
		}

		f, err := os.Open(location)
		if err != nil {
			return desc, wrap(err)
		}
		defer f.Close()
		return Decode(f, format)
	}
}
