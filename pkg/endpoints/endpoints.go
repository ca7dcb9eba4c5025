package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Package endpoints names the API routes the client calls, relative to the base URL.

const (
	// NameGetMe is the registry key of the current-user route.
	NameGetMe = "get_me"
	// GetMe is the default current-user route.
	GetMe = "auth/me"
)

var defaults = map[string]string{
	NameGetMe: GetMe,
}

type configFile struct {
	Endpoints map[string]string `json:"endpoints" yaml:"endpoints"`
}

// Registry resolves route names to relative paths. It is read-only once built.
type Registry struct {
	paths map[string]string
}

// Default returns a registry holding only the built-in routes.
func Default() *Registry {
	paths := make(map[string]string, len(defaults))
	for k, v := range defaults {
		paths[k] = v
	}
	return &Registry{paths: paths}
}

// LoadRegistry reads a YAML/JSON file and overlays its routes on the defaults.
// An empty path yields Default().
func LoadRegistry(path string) (*Registry, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open endpoints file: %w", err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read endpoints file: %w", err)
	}

	cfg, err := parseEndpoints(raw, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	if len(cfg.Endpoints) == 0 {
		return nil, errors.New("endpoints file contains no endpoints entries")
	}

	reg := Default()
	for name, p := range cfg.Endpoints {
		name = strings.ToLower(strings.TrimSpace(name))
		p = strings.TrimSpace(p)
		if err := validateEndpoint(name, p); err != nil {
			return nil, err
		}
		reg.paths[name] = p
	}
	return reg, nil
}

func parseEndpoints(data []byte, ext string) (configFile, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))

	decoders := []struct {
		name string
		ext  string
		fn   func([]byte, any) error
	}{
		{name: "yaml", ext: ".yaml", fn: yaml.Unmarshal},
		{name: "yaml", ext: ".yml", fn: yaml.Unmarshal},
		{name: "json", ext: ".json", fn: json.Unmarshal},
	}

	for _, d := range decoders {
		if ext != "" && ext != d.ext {
			continue
		}
		var cfg configFile
		if err := d.fn(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	return configFile{}, errors.New("endpoints file format not recognized (expected YAML or JSON)")
}

func validateEndpoint(name, path string) error {
	if name == "" {
		return errors.New("endpoint name is required")
	}
	if path == "" {
		return fmt.Errorf("path is required for endpoint %q", name)
	}
	u, err := url.Parse(path)
	if err != nil {
		return fmt.Errorf("endpoint %q: %w", name, err)
	}
	if u.IsAbs() || u.Host != "" {
		return fmt.Errorf("endpoint %q must be relative to the api base, got %q", name, path)
	}
	return nil
}

// Path returns the route registered under name.
func (r *Registry) Path(name string) (string, bool) {
	if r == nil {
		return "", false
	}
	p, ok := r.paths[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// GetMe returns the current-user route.
func (r *Registry) GetMe() string {
	if p, ok := r.Path(NameGetMe); ok {
		return p
	}
	return GetMe
}

// Names lists the registered route names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.paths))
	for k := range r.paths {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
