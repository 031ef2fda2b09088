package reconciler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stow/internal/adapters/archive"
	"go.trai.ch/stow/internal/adapters/fs"
	"go.trai.ch/stow/internal/adapters/logger"
	"go.trai.ch/stow/internal/adapters/telemetry"
	"go.trai.ch/stow/internal/core/ports"
)

// NodeID is the unique identifier for the Reconciler Graft node.
const NodeID graft.ID = "engine.reconciler"

func init() {
	graft.Register(graft.Node[*Reconciler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ResolverNodeID,
			fs.ScannerNodeID,
			archive.StoreNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Reconciler, error) {
			resolver, err := graft.Dep[ports.PathResolver](ctx)
			if err != nil {
				return nil, err
			}
			scanner, err := graft.Dep[ports.InstalledScanner](ctx)
			if err != nil {
				return nil, err
			}
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
			return New(resolver, scanner, store, log, tracer), nil
		},
	})
}
