package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aeromesh/skyroute/topology"
)

// Load reads the YAML topology document at path, translates it into a
// topology.Topology, and runs topology.Topology.Validate before returning
// it. Logging follows the teacher's key/value slog convention rather than
// formatted prose.
func Load(path string) (*topology.Topology, error) {
	slog.Debug("config: loading topology", slog.String("path", path))

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	var doc Document
	if err := yaml.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	top, err := build(doc)
	if err != nil {
		return nil, err
	}

	slog.Info("config: topology loaded",
		slog.Int("hubs", len(doc.Hubs)),
		slog.Int("connections", len(doc.Connections)),
		slog.Int("nb_drones", doc.NbDrones),
	)
	return top, nil
}

func build(doc Document) (*topology.Topology, error) {
	top := topology.NewTopology(doc.NbDrones)

	var startCount, endCount int
	for _, h := range doc.Hubs {
		category, err := parseCategory(h.Category)
		if err != nil {
			return nil, fmt.Errorf("config: hub %q: %w", h.Name, err)
		}
		zone, err := parseZone(h.Zone)
		if err != nil {
			return nil, fmt.Errorf("config: hub %q: %w", h.Name, err)
		}
		switch category {
		case topology.CategoryStart:
			startCount++
		case topology.CategoryEnd:
			endCount++
		}

		if err := top.AddHub(topology.Hub{
			Name:        h.Name,
			Category:    category,
			Zone:        zone,
			Coordinates: topology.Coordinates{X: h.X, Y: h.Y},
			MaxDrones:   h.MaxDrones,
		}); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTopology, err)
		}
	}

	if startCount != 1 || endCount != 1 {
		return nil, ErrMissingEndpoint
	}

	for _, c := range doc.Connections {
		if err := top.AddConnection(c.A, c.B, c.Capacity); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTopology, err)
		}
	}

	if err := top.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTopology, err)
	}

	return top, nil
}

func parseCategory(s string) (topology.Category, error) {
	switch strings.ToUpper(s) {
	case "", "INTERMEDIATE":
		return topology.CategoryIntermediate, nil
	case "START":
		return topology.CategoryStart, nil
	case "END":
		return topology.CategoryEnd, nil
	default:
		return 0, fmt.Errorf("unknown category %q", s)
	}
}

func parseZone(s string) (topology.Zone, error) {
	switch strings.ToUpper(s) {
	case "", "NORMAL":
		return topology.ZoneNormal, nil
	case "BLOCKED":
		return topology.ZoneBlocked, nil
	case "RESTRICTED":
		return topology.ZoneRestricted, nil
	case "PRIORITY":
		return topology.ZonePriority, nil
	default:
		return 0, fmt.Errorf("unknown zone %q", s)
	}
}
