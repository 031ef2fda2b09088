package archive

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stow/internal/core/ports"
)

const (
	CodecNodeID graft.ID = "adapter.archive.codec"
	StoreNodeID graft.ID = "adapter.archive.store"
)

func init() {
	// Codec Node
	graft.Register(graft.Node[ports.ArchiveCodec]{
		ID:        CodecNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArchiveCodec, error) {
			return NewCodec(), nil
		},
	})

	// Store Node
	graft.Register(graft.Node[ports.ArchiveStore]{
		ID:        StoreNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{CodecNodeID},
		Run: func(ctx context.Context) (ports.ArchiveStore, error) {
			codec, err := graft.Dep[ports.ArchiveCodec](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(codec), nil
		},
	})
}
