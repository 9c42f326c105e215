package profile

import (
	"encoding/json"
	"fmt"
	"net/url"

	"go.uber.org/multierr"
)

// LinkEntry is a single link of the hub.
type LinkEntry struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// Links is the ordered link collection. Display order is slice order.
type Links []LinkEntry

// Profile holds the personal data rendered into the page.
// It is built once at start-up and never mutated afterwards.
type Profile struct {
	DisplayName string `yaml:"display_name"`
	Email       string `yaml:"email"`
	AvatarURL   string `yaml:"avatar_url"`
	SocialURL   string `yaml:"social_url"`
	Links       Links  `yaml:"links"`
}

// LinksJSON encodes the link collection the way the /links route serves it:
// two-space indentation, declared order, "[]" when empty.
func (p *Profile) LinksJSON() ([]byte, error) {
	links := p.Links
	if links == nil {
		links = Links{}
	}
	data, err := json.MarshalIndent(links, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode links: %w", err)
	}
	return data, nil
}

// Validate reports every problem found in the profile at once.
func (p *Profile) Validate() error {
	var err error

	if p.DisplayName == "" {
		err = multierr.Append(err, fmt.Errorf("display_name is required"))
	}
	if p.AvatarURL != "" {
		err = multierr.Append(err, checkURL("avatar_url", p.AvatarURL))
	}
	if p.SocialURL != "" {
		err = multierr.Append(err, checkURL("social_url", p.SocialURL))
	}

	for i, l := range p.Links {
		if l.Name == "" {
			err = multierr.Append(err, fmt.Errorf("links[%d]: name is required", i))
		}
		err = multierr.Append(err, checkURL(fmt.Sprintf("links[%d].url", i), l.URL))
	}

	return err
}

func checkURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s: %q is not an absolute http(s) URL", field, raw)
	}
	return nil
}
