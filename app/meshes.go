package app

import (
	"orrery/config"
	"orrery/mesh"
	"orrery/sim"
)

// LoadMeshes loads the body mesh and, when the ship is enabled, the ship mesh.
// Any failure is fatal for startup.
func LoadMeshes(cfg config.Config) (sim.Meshes, error) {
	var (
		m   sim.Meshes
		err error
	)
	if m.Body, err = mesh.Load(cfg.Meshes.Body); err != nil {
		return m, err
	}
	if cfg.Ship.Enabled {
		if m.Ship, err = mesh.Load(cfg.Meshes.Ship); err != nil {
			return m, err
		}
	}
	return m, nil
}
