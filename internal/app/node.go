package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stow/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/stow/internal/adapters/manifest" //nolint:depguard // Wired in app layer
	"go.trai.ch/stow/internal/core/ports"
	"go.trai.ch/stow/internal/engine/installer"
	"go.trai.ch/stow/internal/engine/reconciler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			manifest.NodeID,
			reconciler.NodeID,
			installer.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			manifests, err := graft.Dep[ports.ManifestLoader](ctx)
			if err != nil {
				return nil, err
			}
			rec, err := graft.Dep[*reconciler.Reconciler](ctx)
			if err != nil {
				return nil, err
			}
			inst, err := graft.Dep[*installer.Installer](ctx)
			if err != nil {
				return nil, err
			}
			return New(manifests, rec, inst), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(application, log), nil
		},
	})
}
