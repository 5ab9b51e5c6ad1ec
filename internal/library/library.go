// Package library provides the merged cable and tray catalogue: the
// built-in presets layered with optional user-supplied YAML files.
//
// A library file holds `cables:` and/or `trays:` lists. User entries
// whose name matches a preset replace it; new names are appended, so a
// site-specific catalogue can both extend and correct the defaults.
package library

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ashpursglove/traycalc/internal/models"
)

// Catalogue is the merged set of cable and tray types available for
// lookup by name.
type Catalogue struct {
	Cables []models.Cable
	Trays  []models.Tray
}

// file mirrors the YAML structure of a user library file.
type file struct {
	Cables []models.Cable `yaml:"cables"`
	Trays  []models.Tray  `yaml:"trays"`
}

// Load builds a catalogue from the built-in presets plus zero or more
// user library files, applied in order.
func Load(paths ...string) (*Catalogue, error) {
	c := &Catalogue{
		Cables: models.DefaultCables(),
		Trays:  models.DefaultTrays(),
	}

	for _, path := range paths {
		if err := c.mergeFile(path); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *Catalogue) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading library file: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing library file %s: %w", path, err)
	}

	for _, cable := range f.Cables {
		if cable.Name == "" || !cable.Valid() {
			return fmt.Errorf("library file %s: invalid cable %q (diameter and weight must be > 0)", path, cable.Name)
		}
		c.upsertCable(cable)
	}

	for _, tray := range f.Trays {
		if tray.Name == "" || !tray.Valid() {
			return fmt.Errorf("library file %s: invalid tray %q (dimensions, load, self-weight must be > 0 and fill ratio in (0,1])", path, tray.Name)
		}
		c.upsertTray(tray)
	}

	return nil
}

func (c *Catalogue) upsertCable(cable models.Cable) {
	for i, existing := range c.Cables {
		if existing.Name == cable.Name {
			c.Cables[i] = cable
			return
		}
	}
	c.Cables = append(c.Cables, cable)
}

func (c *Catalogue) upsertTray(tray models.Tray) {
	for i, existing := range c.Trays {
		if existing.Name == tray.Name {
			c.Trays[i] = tray
			return
		}
	}
	c.Trays = append(c.Trays, tray)
}

// FindCable looks up a cable type by exact name.
func (c *Catalogue) FindCable(name string) (models.Cable, bool) {
	for _, cable := range c.Cables {
		if cable.Name == name {
			return cable, true
		}
	}
	return models.Cable{}, false
}

// FindTray looks up a tray type by exact name.
func (c *Catalogue) FindTray(name string) (models.Tray, bool) {
	for _, tray := range c.Trays {
		if tray.Name == name {
			return tray, true
		}
	}
	return models.Tray{}, false
}
