package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stow/internal/core/ports"
)

const (
	ResolverNodeID graft.ID = "adapter.fs.resolver"
	ScannerNodeID  graft.ID = "adapter.fs.scanner"
)

func init() {
	// Resolver Node (concrete implementation also needed by the Scanner)
	graft.Register(graft.Node[ports.PathResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PathResolver, error) {
			return NewResolver(), nil
		},
	})

	// Scanner Node
	graft.Register(graft.Node[ports.InstalledScanner]{
		ID:        ScannerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ResolverNodeID},
		Run: func(ctx context.Context) (ports.InstalledScanner, error) {
			resolver, err := graft.Dep[ports.PathResolver](ctx)
			if err != nil {
				return nil, err
			}
			return NewScanner(resolver), nil
		},
	})
}
