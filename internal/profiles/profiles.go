// Package profiles reads lists of password profiles exported from another
// LessPass client so they can be regenerated by site name. Profiles are only
// read; nothing here writes them back.
package profiles

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/stanley-fork/lesspass/internal/common"
	"github.com/stanley-fork/lesspass/internal/lesspass"
	"gopkg.in/yaml.v3"
)

// record is the on-disk shape of a profile. Pointer fields tell a missing
// option (default on) from an explicit false.
type record struct {
	ID        *uuid.UUID `json:"id" yaml:"id"`
	Site      string     `json:"site" yaml:"site"`
	Login     string     `json:"login" yaml:"login"`
	Lowercase *bool      `json:"lowercase" yaml:"lowercase"`
	Uppercase *bool      `json:"uppercase" yaml:"uppercase"`
	Digits    *bool      `json:"digits" yaml:"digits"`
	Symbols   *bool      `json:"symbols" yaml:"symbols"`
	Length    int        `json:"length" yaml:"length"`
	Counter   int        `json:"counter" yaml:"counter"`
}

// envelope matches a paginated API dump: {"results": [...]}.
type envelope struct {
	Results []record `json:"results" yaml:"results"`
}

func (r record) profile() lesspass.Profile {
	p := lesspass.NewProfile(r.Site, r.Login)
	p.ID = r.ID
	flag(&p.Lowercase, r.Lowercase)
	flag(&p.Uppercase, r.Uppercase)
	flag(&p.Digits, r.Digits)
	flag(&p.Symbols, r.Symbols)
	if r.Length != 0 {
		p.Length = r.Length
	}
	if r.Counter != 0 {
		p.Counter = r.Counter
	}
	return p
}

func flag(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

// Load reads the profiles in path. Files ending in .yaml or .yml are YAML;
// anything else is JSON. The document is either a list of profiles or an
// object with a "results" list. Every profile must pass validation.
func Load(path string) ([]lesspass.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}

	var records []record
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		records, err = decodeYAML(data)
	default:
		records, err = decodeJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parse profiles %s: %w", path, err)
	}

	out := make([]lesspass.Profile, 0, len(records))
	for i, r := range records {
		p := r.profile()
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("profile %d (%q): %w", i, r.Site, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func decodeJSON(data []byte) ([]record, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var env envelope
		err := json.Unmarshal(data, &env)
		return env.Results, err
	}
	var records []record
	err := json.Unmarshal(data, &records)
	return records, err
}

func decodeYAML(data []byte) ([]record, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil
	}
	if node.Content[0].Kind == yaml.MappingNode {
		var env envelope
		err := node.Decode(&env)
		return env.Results, err
	}
	var records []record
	err := node.Decode(&records)
	return records, err
}

// Find returns the profile for site. When login is not empty it must match
// too; otherwise the first profile for site wins.
func Find(list []lesspass.Profile, site, login string) (lesspass.Profile, error) {
	for _, p := range list {
		if p.Site != site {
			continue
		}
		if login == "" || p.Login == login {
			return p, nil
		}
	}
	return lesspass.Profile{}, fmt.Errorf("profile for %q: %w", site, common.ErrorNotFound)
}
