package datagrid

import "hash/fnv"

// ID identifies a grid instance across frames.
type ID uint64

// GetID returns the ID of the next grid labeled label. The same label drawn
// in the same order every frame yields the same ID; a per-frame call count
// keeps two grids sharing a label apart.
func (ctx *Context) GetID(label string) ID {
	ctx.idCounter++
	h := fnv.New32a()
	h.Write([]byte(label))
	return ID(uint64(ctx.idCounter)<<32 | uint64(h.Sum32()))
}
