// Package idgen issues time-ordered order identifiers.
package idgen

import (
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"

	"github.com/polkiloo/pricecompare/internal/config"
)

// Generator returns a new unique identifier on every call.
type Generator interface {
	NewID() string
}

// Snowflake derives ids from the current time, a node number and a sequence,
// so ids from one node sort in creation order.
type Snowflake struct {
	node *snowflake.Node
}

func NewSnowflake(nodeID int64) (*Snowflake, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("create id node: %w", err)
	}
	return &Snowflake{node: node}, nil
}

func (s *Snowflake) NewID() string {
	return s.node.Generate().String()
}

// Time extracts the creation time embedded in an id produced by NewID.
func Time(id string) (time.Time, error) {
	parsed, err := snowflake.ParseString(id)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(parsed.Time()), nil
}

// Module provides the order id generator.
var Module = fx.Provide(func(cfg *config.Config) (Generator, error) {
	return NewSnowflake(cfg.NodeID)
})
