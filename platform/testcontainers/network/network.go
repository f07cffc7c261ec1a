package network

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go"
	tcnetwork "github.com/testcontainers/testcontainers-go/network"
)

// Network is an attachable bridge network shared by the containers of one
// test suite.
type Network struct {
	network *testcontainers.DockerNetwork
}

func NewNetwork(ctx context.Context, projectName string) (*Network, error) {
	nw, err := tcnetwork.New(ctx,
		tcnetwork.WithDriver(testcontainers.Bridge),
		tcnetwork.WithAttachable(),
		tcnetwork.WithLabels(map[string]string{
			"project": projectName,
			"purpose": "e2e",
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create docker network for %s: %w", projectName, err)
	}

	return &Network{network: nw}, nil
}

func (n *Network) Name() string {
	return n.network.Name
}

func (n *Network) Remove(ctx context.Context) error {
	if n == nil || n.network == nil {
		return nil
	}
	return n.network.Remove(ctx)
}
