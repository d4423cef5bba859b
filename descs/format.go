package descs

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCUE  Format = "cue"
)

var ErrUnknownFormat = errors.New("unknown description format")

// FormatOf picks a format by file extension. Locations may be file paths or URLs.
func FormatOf(location string) (Format, error) {
	p := location
	if u, err := url.Parse(location); err == nil && u.Scheme != "" && u.Host != "" {
		p = u.Path
	}
	switch strings.ToLower(path.Ext(p)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".cue":
		return FormatCUE, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, location)
}
