package seedfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/splitbill/splitbill/internal/model"
	"github.com/splitbill/splitbill/internal/roster"
)

// Seed rosters are read once at startup; nothing is ever written back.
// YAML decoding covers JSON files too.

type seedFriend struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Image   string `yaml:"image"`
	Balance string `yaml:"balance"`
}

type seedDoc struct {
	Friends []seedFriend `yaml:"friends"`
}

// Load reads a roster from path. An empty path yields the built-in seed;
// a path that was given must exist.
func Load(path string) ([]model.Friend, error) {
	if strings.TrimSpace(path) == "" {
		return roster.DefaultSeed(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("seed %s: %w", path, os.ErrNotExist)
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Parse(b)
}

// Parse accepts either a bare list of friends or a document with a
// top-level "friends" key.
func Parse(b []byte) ([]model.Friend, error) {
	var raw []seedFriend
	if err := yaml.Unmarshal(b, &raw); err != nil {
		var doc seedDoc
		if err2 := yaml.Unmarshal(b, &doc); err2 != nil {
			return nil, fmt.Errorf("yaml unmarshal: %w", err2)
		}
		raw = doc.Friends
	}

	out := make([]model.Friend, 0, len(raw))
	for i, r := range raw {
		name := strings.TrimSpace(r.Name)
		if r.ID == "" || name == "" {
			return nil, fmt.Errorf("friend %d: id and name are required", i+1)
		}
		bal := decimal.Zero
		if s := strings.TrimSpace(r.Balance); s != "" {
			v, err := decimal.NewFromString(s)
			if err != nil {
				return nil, fmt.Errorf("friend %d (%s): balance %q: %w", i+1, name, s, err)
			}
			bal = v
		}
		out = append(out, model.Friend{ID: r.ID, Name: name, Image: r.Image, Balance: bal})
	}
	return out, nil
}

type exportDoc struct {
	View    string         `json:"view"`
	Friends []model.Friend `json:"friends"`
}

// Export writes snap as indented JSON. The output is a valid seed file.
func Export(w io.Writer, snap roster.Snapshot) error {
	b, err := json.MarshalIndent(exportDoc{View: snap.View.String(), Friends: snap.Roster}, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// ExportFile writes snap to path.
func ExportFile(path string, snap roster.Snapshot) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	if err := Export(f, snap); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	return nil
}
