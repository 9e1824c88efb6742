package postgres

import (
	"fmt"

	"github.com/bwmarrin/snowflake"

	"github.com/heartmarshall/qa-moderation/internal/domain"
)

// IDGenerator hands out opaque ids for new rows. Ids from one node are
// unique and roughly time-ordered; nothing else about them is promised.
type IDGenerator struct {
	node *snowflake.Node
}

// NewIDGenerator creates a generator for the given node (0..1023). Each
// running instance sharing a database must use a distinct node id.
func NewIDGenerator(nodeID int64) (*IDGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("snowflake node %d: %w", nodeID, err)
	}
	return &IDGenerator{node: node}, nil
}

// Next returns a fresh id.
func (g *IDGenerator) Next() domain.ID {
	return domain.ID(g.node.Generate().Int64())
}
