// Package network loads named road networks (nodes with coordinates plus
// undirected links) from YAML and turns them into frozen graphs through
// route.BuildGraph.
//
// Document layout:
//
//	name: peru
//	nodes:
//	  - {id: "Nodo Lima 1", lon: -76.92003, lat: -12.01971}
//	links:
//	  - ["Nodo Lima 1", "Nodo Lima 2"]
//
// Peru returns the embedded reference network.
package network

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/georoute/core"
	"github.com/katalvlaran/georoute/geo"
	"github.com/katalvlaran/georoute/route"
)

// Sentinel errors for network documents.
var (
	// ErrEmptyNodeID indicates a node entry without an id.
	ErrEmptyNodeID = errors.New("network: node id is empty")

	// ErrDuplicateNode indicates two node entries with the same id.
	ErrDuplicateNode = errors.New("network: duplicate node id")

	// ErrBadCoordinate indicates a latitude outside [-90, 90] or a longitude outside [-180, 180].
	ErrBadCoordinate = errors.New("network: coordinate out of range")

	// ErrBadLink indicates a link entry that is not a pair of node ids.
	ErrBadLink = errors.New("network: link must name exactly two nodes")

	// ErrUnknownNode indicates a link endpoint missing from the node list.
	ErrUnknownNode = errors.New("network: link references unknown node")
)

//go:embed peru.yaml
var peruYAML []byte

// Node is a named point of the network.
type Node struct {
	ID  string  `yaml:"id"`
	Lon float64 `yaml:"lon"`
	Lat float64 `yaml:"lat"`
}

// Network is a decoded, validated network document.
type Network struct {
	Name  string     `yaml:"name"`
	Nodes []Node     `yaml:"nodes"`
	Links [][]string `yaml:"links"`

	byID map[string]int // node id → position in Nodes, filled by Validate
}

// Decode reads one YAML document from r and validates it.
// Unknown keys are rejected.
func Decode(r io.Reader) (*Network, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var n Network
	if err := dec.Decode(&n); err != nil {
		return nil, fmt.Errorf("network: decode: %w", err)
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}

	return &n, nil
}

// LoadFile decodes the network stored at path.
func LoadFile(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("network: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Peru returns a fresh copy of the embedded reference network.
func Peru() (*Network, error) {
	var n Network
	if err := yaml.Unmarshal(peruYAML, &n); err != nil {
		return nil, fmt.Errorf("network: decode embedded peru: %w", err)
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}

	return &n, nil
}

// Validate checks node ids, coordinate ranges and link references, and
// builds the id index used by Lookup.
func (n *Network) Validate() error {
	byID := make(map[string]int, len(n.Nodes))
	for i, node := range n.Nodes {
		if node.ID == "" {
			return fmt.Errorf("%w: entry %d", ErrEmptyNodeID, i)
		}
		if _, dup := byID[node.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateNode, node.ID)
		}
		if node.Lat < -90 || node.Lat > 90 || node.Lon < -180 || node.Lon > 180 {
			return fmt.Errorf("%w: %q lon=%v lat=%v", ErrBadCoordinate, node.ID, node.Lon, node.Lat)
		}
		byID[node.ID] = i
	}
	for i, l := range n.Links {
		if len(l) != 2 {
			return fmt.Errorf("%w: entry %d has %d", ErrBadLink, i, len(l))
		}
		for _, id := range l {
			if _, ok := byID[id]; !ok {
				return fmt.Errorf("%w: %q in link %d", ErrUnknownNode, id, i)
			}
		}
	}
	n.byID = byID

	return nil
}

// NodeIDs returns node ids in document order.
func (n *Network) NodeIDs() []string {
	out := make([]string, len(n.Nodes))
	for i, node := range n.Nodes {
		out[i] = node.ID
	}

	return out
}

// Lookup returns the (longitude, latitude) of id. It satisfies route.CoordinateLookup.
func (n *Network) Lookup(id string) (lon, lat float64, ok bool) {
	i, ok := n.byID[id]
	if !ok {
		return 0, 0, false
	}

	return n.Nodes[i].Lon, n.Nodes[i].Lat, true
}

// Coordinate returns the position of id as a geo.Coordinate.
func (n *Network) Coordinate(id string) (geo.Coordinate, bool) {
	lon, lat, ok := n.Lookup(id)

	return geo.Coordinate{Lat: lat, Lon: lon}, ok
}

// RouteLinks converts the link list into route.Link values.
func (n *Network) RouteLinks() []route.Link {
	out := make([]route.Link, len(n.Links))
	for i, l := range n.Links {
		out[i] = route.Link{From: l[0], To: l[1]}
	}

	return out
}

// Graph builds the frozen, haversine-weighted graph of the network.
func (n *Network) Graph() (*core.Graph, error) {
	if n.byID == nil {
		if err := n.Validate(); err != nil {
			return nil, err
		}
	}

	return route.BuildGraph(n.NodeIDs(), n.RouteLinks(), n.Lookup)
}
