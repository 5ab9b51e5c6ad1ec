// Package project persists a tray configuration and cable schedule as a
// versioned JSON document.
//
// The on-disk format is version 1:
//
//	{
//	  "version": 1,
//	  "cables": [
//	    {"name": "...", "diameter_mm": 11.0, "weight_kg_per_m": 0.3, "qty": 4}
//	  ],
//	  "tray": {
//	    "name": "...", "width_mm": 300, "height_mm": 100,
//	    "max_load_kg_per_m": 140, "self_weight_kg_per_m": 6.0,
//	    "max_fill_ratio": 0.6
//	  }
//	}
//
// Files are read through github.com/tidwall/jsonc first, so hand-edited
// project files may carry // and /* */ comments.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"

	"github.com/ashpursglove/traycalc/internal/models"
)

// Version is the current project file format version.
const Version = 1

// Project is a tray definition together with its cable schedule.
type Project struct {
	Tray    models.Tray
	Entries []models.CableEntry
}

// New returns an empty project on the baseline custom tray.
func New() *Project {
	return &Project{Tray: models.DefaultTray()}
}

type document struct {
	Version int        `json:"version"`
	Cables  []cableRow `json:"cables"`
	Tray    trayConfig `json:"tray"`
}

type cableRow struct {
	Name       string  `json:"name"`
	DiameterMM float64 `json:"diameter_mm"`
	WeightKgM  float64 `json:"weight_kg_per_m"`
	Qty        int     `json:"qty"`
}

type trayConfig struct {
	Name          string  `json:"name"`
	WidthMM       float64 `json:"width_mm"`
	HeightMM      float64 `json:"height_mm"`
	MaxLoadKgM    float64 `json:"max_load_kg_per_m"`
	SelfWeightKgM float64 `json:"self_weight_kg_per_m"`
	MaxFillRatio  float64 `json:"max_fill_ratio"`
}

// Load reads a project file. Cable rows with non-positive diameter,
// weight or quantity are skipped silently; missing tray fields fall back
// to the baseline custom tray. An unknown version is an error.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}

	var doc document
	if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		return nil, fmt.Errorf("parsing project file %s: %w", path, err)
	}

	if doc.Version != Version {
		return nil, fmt.Errorf("project file %s: unsupported version %d (want %d)", path, doc.Version, Version)
	}

	p := &Project{Tray: trayFromConfig(doc.Tray)}
	for _, row := range doc.Cables {
		entry := models.CableEntry{
			Cable: models.Cable{
				Name:       row.Name,
				DiameterMM: row.DiameterMM,
				WeightKgM:  row.WeightKgM,
			},
			Quantity: row.Qty,
		}
		if !entry.Valid() {
			continue
		}
		if entry.Cable.Name == "" {
			entry.Cable.Name = "Cable"
		}
		p.Entries = append(p.Entries, entry)
	}

	return p, nil
}

func trayFromConfig(cfg trayConfig) models.Tray {
	tray := models.DefaultTray()
	if cfg.Name != "" {
		tray.Name = cfg.Name
	}
	if cfg.WidthMM > 0 {
		tray.WidthMM = cfg.WidthMM
	}
	if cfg.HeightMM > 0 {
		tray.HeightMM = cfg.HeightMM
	}
	if cfg.MaxLoadKgM > 0 {
		tray.MaxLoadKgM = cfg.MaxLoadKgM
	}
	if cfg.SelfWeightKgM > 0 {
		tray.SelfWeightKgM = cfg.SelfWeightKgM
	}
	if cfg.MaxFillRatio > 0 && cfg.MaxFillRatio <= 1 {
		tray.MaxFillRatio = cfg.MaxFillRatio
	}
	return tray
}

// Save writes the project as indented JSON. When the path has no
// extension, ".json" is appended. The final path is returned.
func (p *Project) Save(path string) (string, error) {
	if filepath.Ext(path) == "" {
		path += ".json"
	}

	doc := document{
		Version: Version,
		Cables:  make([]cableRow, 0, len(p.Entries)),
		Tray: trayConfig{
			Name:          p.Tray.Name,
			WidthMM:       p.Tray.WidthMM,
			HeightMM:      p.Tray.HeightMM,
			MaxLoadKgM:    p.Tray.MaxLoadKgM,
			SelfWeightKgM: p.Tray.SelfWeightKgM,
			MaxFillRatio:  p.Tray.MaxFillRatio,
		},
	}

	for _, entry := range p.Entries {
		if !entry.Valid() {
			continue
		}
		doc.Cables = append(doc.Cables, cableRow{
			Name:       entry.Cable.Name,
			DiameterMM: entry.Cable.DiameterMM,
			WeightKgM:  entry.Cable.WeightKgM,
			Qty:        entry.Quantity,
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding project: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("writing project file: %w", err)
	}

	return path, nil
}
