package scoap

import (
	"sort"

	"github.com/pkg/errors"
)

// NetView is a flattened, read-only snapshot of one net's SCOAP metrics,
// suitable for printing or serializing. Infinity renders as -1.
type NetView struct {
	Name             string
	Role             NetRole
	DrivenByFlipFlop bool
	Level            int
	CC0, CC1         int
	SC0, SC1         int
	CO, SO           int
}

func netView(n *Net) NetView {
	return NetView{
		Name:             n.Name,
		Role:             n.Role,
		DrivenByFlipFlop: n.DrivenByFlipFlop,
		Level:            n.Level,
		CC0:              n.CC0.Int(),
		CC1:              n.CC1.Int(),
		SC0:              n.SC0.Int(),
		SC1:              n.SC1.Int(),
		CO:               n.CO.Int(),
		SO:               n.SO.Int(),
	}
}

// Nets returns a NetView for every net in the circuit, ordered by name.
func (c *Circuit) Nets() []NetView {
	views := make([]NetView, len(c.nets))
	for i := range c.nets {
		views[i] = netView(&c.nets[i])
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Name < views[j].Name })
	return views
}

// NetByName returns the NetView for the named net, and whether it exists.
func (c *Circuit) NetByName(name string) (NetView, bool) {
	id, ok := c.netIndex[name]
	if !ok {
		return NetView{}, false
	}
	return netView(&c.nets[id]), true
}

// LookupNet returns the net named name, or a wrapped ErrUnknownNet if
// it was never declared. Unlike NetByName, this is meant for callers
// that build net names programmatically and want to distinguish "typo"
// from "legitimately absent" via errors.Is.
func (c *Circuit) LookupNet(name string) (*Net, error) {
	id, ok := c.netIndex[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownNet, "net %q", name)
	}
	return &c.nets[id], nil
}
