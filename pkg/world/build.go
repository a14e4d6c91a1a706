package world

import (
	"regexp"

	"github.com/arcwell-robotics/planeval/pkg/models"
)

// AgentMeta describes one agent entry of a build Metadata document.
type AgentMeta struct {
	Type string
	Pos  string
}

// AssetMeta describes one asset entry of a build Metadata document.
// IsContainer, when nil, is inferred from the asset's base type name against
// models.ContainerAssetNames. Isolated, when nil, is inferred from
// models.InitiallyIsolatedContainers.
type AssetMeta struct {
	Pos         string
	IsContainer *bool
	Isolated    *bool
}

// Metadata is the scene description World.Build consumes: named agents and
// assets with their starting positions.
type Metadata struct {
	Agents map[string]AgentMeta
	Assets map[string]AssetMeta
}

var instanceSuffix = regexp.MustCompile(`_\d+$`)

// AssetTypeName strips a trailing "_<n>" instance suffix, e.g. "apple_2" ->
// "apple". Used to look an asset's base type up in the container tables.
func AssetTypeName(name string) string {
	return instanceSuffix.ReplaceAllString(name, "")
}

// Build constructs a World from a Metadata document: agents and assets are
// created once, container assets get a synthesized ContainerPosition, and
// any asset whose starting position names a container asset is re-homed to
// alias that container's ContainerPosition.
func Build(meta *Metadata) *World {
	w := New()

	for name, am := range meta.Agents {
		pos := &models.Position{Name: am.Pos}
		w.Agents[name] = models.NewAgentFromType(name, am.Type, pos)
	}

	for name, asm := range meta.Assets {
		pos := &models.Position{Name: asm.Pos}
		isContainer := models.ContainerAssetNames[AssetTypeName(name)]
		if asm.IsContainer != nil {
			isContainer = *asm.IsContainer
		}
		asset := &models.Asset{Name: name, Pos: pos, IsContainer: isContainer}
		if isContainer {
			isolated := models.InitiallyIsolatedContainers[AssetTypeName(name)]
			if asm.Isolated != nil {
				isolated = *asm.Isolated
			}
			asset.ContainerPosition = &models.Position{Name: name, Isolated: isolated}
		}
		w.Assets[name] = asset
	}

	for _, asset := range w.Assets {
		if container, ok := w.Assets[asset.Pos.Name]; ok && container.IsContainer && container != asset {
			asset.Pos = container.ContainerPosition
		}
	}

	return w
}
