package nodeid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gopcua/opcua/ua"
)

// ErrEmptyIdentifier is returned when an identifier is empty or whitespace.
var ErrEmptyIdentifier = errors.New("empty node identifier")

// Resolver maps a textual identifier to a structured node address.
type Resolver interface {
	Parse(identifier string) (*ua.NodeID, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(identifier string) (*ua.NodeID, error)

// Parse calls f(identifier).
func (f ResolverFunc) Parse(identifier string) (*ua.NodeID, error) {
	return f(identifier)
}

// Parser is the default Resolver.
// The zero value parses full notation and maps bare identifiers into namespace 0.
type Parser struct {
	// DefaultNamespace is used for bare identifiers without "ns=".
	DefaultNamespace uint16
}

// Parse resolves identifier into a node ID.
func (p Parser) Parse(identifier string) (*ua.NodeID, error) {
	id := strings.TrimSpace(identifier)
	if id == "" {
		return nil, ErrEmptyIdentifier
	}

	if !strings.Contains(id, "=") {
		return ua.NewStringNodeID(p.DefaultNamespace, id), nil
	}

	nodeID, err := ua.ParseNodeID(id)
	if err != nil {
		return nil, fmt.Errorf("parse node id %q: %w", identifier, err)
	}
	return nodeID, nil
}

// Compile-time interface satisfaction check.
var _ Resolver = Parser{}
