package keymap

// Merge folds override into base and returns the result. Neither argument
// is modified.
//
// When both are nodes, children merge key by key: a node under a node
// recurses, anything else replaces the base child. When either side is
// not a node the override replaces base wholesale. A nil override returns
// a copy of base.
func Merge(base, override Trie) Trie {
	if override == nil {
		return Clone(base)
	}
	bn, ok := base.(*Node)
	if !ok {
		return Clone(override)
	}
	on, ok := override.(*Node)
	if !ok {
		return Clone(override)
	}
	merged := bn.Clone()
	merged.merge(on)
	return merged
}

// merge folds other into n in place.
func (n *Node) merge(other *Node) {
	for _, ev := range other.order {
		incoming := other.edges[ev]
		if existing, ok := n.edges[ev].(*Node); ok {
			if in, ok := incoming.(*Node); ok {
				existing.merge(in)
				continue
			}
		}
		n.Insert(ev, Clone(incoming))
	}
}
