package profile

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed profile.yaml
var embedded []byte

// Default decodes the profile compiled into the binary.
func Default() (*Profile, error) {
	p, err := Parse(embedded)
	if err != nil {
		return nil, fmt.Errorf("embedded profile: %w", err)
	}
	return p, nil
}

// Parse decodes and validates a YAML profile document. Unknown keys are
// rejected so typos do not silently drop data.
func Parse(data []byte) (*Profile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Profile
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("profile document is empty")
		}
		return nil, fmt.Errorf("failed to parse profile yaml: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	return &p, nil
}
