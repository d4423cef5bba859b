package descs

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/reusee/turing/configs"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var Schema string

// Decode reads one description. Unknown fields are rejected in every format.
func Decode(r io.Reader, format Format) (desc Description, err error) {
	switch format {

	case FormatJSON:
		decoder := json.NewDecoder(r)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&desc); err != nil {
			return desc, errors.Join(ErrInvalidDescription, wrap(err))
		}

	case FormatYAML:
		decoder := yaml.NewDecoder(r)
		decoder.KnownFields(true)
		if err := decoder.Decode(&desc); err != nil {
			return desc, errors.Join(ErrInvalidDescription, wrap(err))
		}

	case FormatCUE:
		content, err := io.ReadAll(r)
		if err != nil {
			return desc, wrap(err)
		}
		value, err := configs.Compile("description.cue", content, Schema)
		if err != nil {
			return desc, errors.Join(ErrInvalidDescription, wrap(err))
		}
		if err := value.Decode(&desc); err != nil {
			return desc, errors.Join(ErrInvalidDescription, wrap(err))
		}

	default:
		return desc, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return desc, nil
}

// Encode writes desc. CUE output is JSON, which every CUE parser accepts.
func Encode(w io.Writer, desc Description, format Format) error {
	switch format {

	case FormatJSON, FormatCUE:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)
		return encoder.Encode(desc)

	case FormatYAML:
		buf := new(bytes.Buffer)
		encoder := yaml.NewEncoder(buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(desc); err != nil {
			return wrap(err)
		}
		if err := encoder.Close(); err != nil {
			return wrap(err)
		}
		_, err := w.Write(buf.Bytes())
		return err

	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
