package installer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stow/internal/adapters/archive"
	"go.trai.ch/stow/internal/adapters/logger"
	"go.trai.ch/stow/internal/adapters/telemetry"
	"go.trai.ch/stow/internal/core/ports"
)

// NodeID is the unique identifier for the Installer Graft node.
const NodeID graft.ID = "engine.installer"

func init() {
	graft.Register(graft.Node[*Installer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			archive.StoreNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Installer, error) {
			store, err := graft.Dep[ports.ArchiveStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return New(store, log, tracer), nil
		},
	})
}
