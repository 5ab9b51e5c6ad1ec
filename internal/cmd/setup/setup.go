// Package setup resolves the shared command inputs: the merged cable and
// tray catalogue and the optional project file, both taken from viper.
package setup

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/ashpursglove/traycalc/internal/library"
	"github.com/ashpursglove/traycalc/internal/models"
	"github.com/ashpursglove/traycalc/internal/project"
)

// Catalogue loads the presets plus any --library files.
func Catalogue() (*library.Catalogue, error) {
	return library.Load(viper.GetStringSlice("library")...)
}

// Project loads the --project file, or returns a fresh project when the
// flag is unset. The second return value is the path (empty when unset).
func Project() (*project.Project, string, error) {
	path := viper.GetString("project")
	if path == "" {
		return project.New(), "", nil
	}
	p, err := project.Load(path)
	return p, path, err
}

// AdhocEntries resolves --cable NAME:QTY specs against the catalogue.
// The quantity defaults to 1 when omitted. Cable names may themselves
// contain colons, so the quantity is split off the last one.
func AdhocEntries(c *library.Catalogue, specs []string) ([]models.CableEntry, error) {
	entries := make([]models.CableEntry, 0, len(specs))

	for _, spec := range specs {
		name := spec
		qty := 1

		if i := strings.LastIndex(spec, ":"); i >= 0 {
			n, err := strconv.Atoi(strings.TrimSpace(spec[i+1:]))
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("invalid cable spec %q: quantity must be a positive integer", spec)
			}
			name = spec[:i]
			qty = n
		}

		name = strings.TrimSpace(name)
		cable, ok := c.FindCable(name)
		if !ok {
			return nil, fmt.Errorf("unknown cable %q: see `traycalc library cables`", name)
		}
		entries = append(entries, models.CableEntry{Cable: cable, Quantity: qty})
	}

	return entries, nil
}
