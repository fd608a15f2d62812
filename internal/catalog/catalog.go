package catalog

// Catalog is an ordered, read-only collection of locations. The load order
// ("catalog order") is preserved and used as the tie-break order for ranked
// queries and as the result order for unranked ones.
type Catalog struct {
	locations []Location
	byID      map[string]int
}

// New builds a catalog from the given locations, preserving their order.
// Later duplicates of an already-seen ID are dropped.
func New(locations []Location) *Catalog {
	c := &Catalog{
		locations: make([]Location, 0, len(locations)),
		byID:      make(map[string]int, len(locations)),
	}
	for _, l := range locations {
		if _, ok := c.byID[l.ID]; ok {
			continue
		}
		c.byID[l.ID] = len(c.locations)
		c.locations = append(c.locations, l)
	}
	return c
}

// All returns every location in catalog order. The returned slice is a copy;
// mutating it does not affect the catalog.
func (c *Catalog) All() []Location {
	out := make([]Location, len(c.locations))
	copy(out, c.locations)
	return out
}

// ByID returns the location with the given id, or nil if it is not present.
// Absence is not an error.
func (c *Catalog) ByID(id string) *Location {
	i, ok := c.byID[id]
	if !ok {
		return nil
	}
	l := c.locations[i]
	return &l
}

// Categories returns the distinct categories present in the catalog, in
// first-seen catalog order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{}, len(c.locations))
	out := make([]string, 0, len(c.locations))
	for _, l := range c.locations {
		if _, ok := seen[l.Category]; ok {
			continue
		}
		seen[l.Category] = struct{}{}
		out = append(out, l.Category)
	}
	return out
}

// Len returns the number of locations in the catalog.
func (c *Catalog) Len() int {
	return len(c.locations)
}
