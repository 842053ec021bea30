// Package cluster parses cluster node specifications used to bootstrap
// partition sessions.
//
// The proxy client itself never touches this package: it receives
// already-resolved session capabilities at construction. Node parsing
// belongs to process entry points (see cmd/atomixctl) that turn
// "NAME:HOST:PORT" bootstrap flags into transport configuration.
package cluster

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Defaults applied when a node spec omits components.
const (
	// DefaultID is the node id used when none can be derived.
	DefaultID = "local"

	// DefaultHost is the loopback address used when no host is given.
	DefaultHost = "127.0.0.1"

	// DefaultPort is the cluster messaging port.
	DefaultPort = 5679
)

// Node identifies a cluster member.
type Node struct {
	// ID is the symbolic node name.
	ID string

	// Host is the node's address.
	Host string

	// Port is the node's messaging port.
	Port int
}

// Address returns the host:port form of the node's endpoint.
func (n Node) Address() string {
	return net.JoinHostPort(n.Host, strconv.Itoa(n.Port))
}

// String returns the canonical NAME:HOST:PORT form.
func (n Node) String() string {
	return fmt.Sprintf("%s:%s:%d", n.ID, n.Host, n.Port)
}

// ParseNode parses a node specification.
//
// Accepted forms:
//
//	NAME:HOST:PORT — fully specified
//	HOST:PORT      — id derived from the endpoint
//	NAME:HOST      — when the second component is not a port number
//	HOST           — default port
//	""             — fully defaulted local node
//
// Parameters:
//   - spec: Node specification string
//
// Returns:
//   - Node: Parsed node with defaults applied
//   - error: Malformed spec (more than three components, bad port)
func ParseNode(spec string) (Node, error) {
	if spec == "" {
		return Node{ID: DefaultID, Host: DefaultHost, Port: DefaultPort}, nil
	}

	parts := strings.Split(spec, ":")
	switch len(parts) {
	case 1:
		return Node{ID: parts[0], Host: parts[0], Port: DefaultPort}, nil

	case 2:
		// HOST:PORT when the second component is numeric, NAME:HOST otherwise.
		if port, err := strconv.Atoi(parts[1]); err == nil {
			if err := validatePort(port); err != nil {
				return Node{}, fmt.Errorf("malformed node spec %q: %w", spec, err)
			}
			host := parts[0]

			return Node{ID: net.JoinHostPort(host, parts[1]), Host: host, Port: port}, nil
		}

		return Node{ID: parts[0], Host: parts[1], Port: DefaultPort}, nil

	case 3:
		port, err := strconv.Atoi(parts[2])
		if err != nil {
			return Node{}, fmt.Errorf("malformed node spec %q: invalid port %q", spec, parts[2])
		}
		if err := validatePort(port); err != nil {
			return Node{}, fmt.Errorf("malformed node spec %q: %w", spec, err)
		}

		return Node{ID: parts[0], Host: parts[1], Port: port}, nil

	default:
		return Node{}, fmt.Errorf("malformed node spec %q: expected at most NAME:HOST:PORT", spec)
	}
}

// ParseNodes parses a list of node specifications.
//
// An empty list resolves to the single fully-defaulted local node, matching
// the bootstrap behavior of a standalone server.
//
// Parameters:
//   - specs: Node specification strings
//
// Returns:
//   - []Node: Parsed nodes
//   - error: First malformed spec encountered
func ParseNodes(specs []string) ([]Node, error) {
	if len(specs) == 0 {
		local, _ := ParseNode("")
		return []Node{local}, nil
	}

	nodes := make([]Node, 0, len(specs))
	for _, spec := range specs {
		node, err := ParseNode(spec)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}

	return nodes, nil
}

func validatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("port %d out of range", port)
	}

	return nil
}
