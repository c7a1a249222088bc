// Package filestore loads a user directory from a JSON or YAML fixture file.
//
// Both formats share one document shape:
//
//	{"users": [{"id": 1, "username": "alice", "email": "a@x.com", ...}]}
package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/CameronXie/storefront-auth/internal/authn"
	"github.com/CameronXie/storefront-auth/internal/directory"
)

type document struct {
	Users []authn.User `json:"users" yaml:"users"`
}

// loader implements directory.Loader over a single file.
type loader struct {
	path string
}

// New creates a Loader reading the file at path. The format is chosen by the
// file extension: .json, .yaml or .yml.
func New(path string) directory.Loader {
	return &loader{path: path}
}

// Load reads and decodes the file.
func (l *loader) Load(ctx context.Context) ([]authn.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	unmarshal, err := unmarshalerFor(l.path)
	if err != nil {
		return nil, err
	}

	fileInfo, err := os.Stat(l.path)
	if err != nil {
		return nil, fmt.Errorf("directory file not found: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("directory path %s is a directory, not a file", l.path)
	}

	content, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory file: %w", err)
	}

	doc := new(document)
	if err := unmarshal(content, doc); err != nil {
		return nil, fmt.Errorf("failed to decode directory file %s: %w", l.path, err)
	}

	return doc.Users, nil
}

func unmarshalerFor(path string) (func([]byte, any) error, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return json.Unmarshal, nil
	case ".yaml", ".yml":
		return func(data []byte, v any) error {
			return yaml.Unmarshal(data, v)
		}, nil
	default:
		return nil, fmt.Errorf("unsupported directory file extension %q", ext)
	}
}
