package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/aot/internal/adapters/config"
	"go.trai.ch/aot/internal/adapters/logger"
	"go.trai.ch/aot/internal/adapters/manifest"
	"go.trai.ch/aot/internal/adapters/target"
	"go.trai.ch/aot/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the application Graft node.
	NodeID graft.ID = "app"

	// ComponentsNodeID is the unique identifier for the components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			manifest.NodeID,
			target.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			manifestLoader, err := graft.Dep[ports.ManifestLoader](ctx)
			if err != nil {
				return nil, err
			}

			targetResolver, err := graft.Dep[ports.TargetResolver](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(configLoader, manifestLoader, targetResolver, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    a,
				Logger: log,
			}, nil
		},
	})
}
