package target

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/aot/internal/adapters/logger"
	"go.trai.ch/aot/internal/adapters/manifest"
	"go.trai.ch/aot/internal/core/ports"
)

// NodeID is the unique identifier for the target resolver Graft node.
const NodeID graft.ID = "adapter.target_resolver"

func init() {
	graft.Register(graft.Node[ports.TargetResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			manifest.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.TargetResolver, error) {
			loader, err := graft.Dep[ports.ManifestLoader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewResolver(loader, log), nil
		},
	})
}
