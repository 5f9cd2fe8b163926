package entity

import "sort"

// ItemID identifies a catalog item. Zero means an empty slot.
type ItemID int

// ItemDef is a catalog item definition
type ItemDef struct {
	ID            ItemID
	Name          string
	Type          string
	Weight        float64
	Value         int
	AttackDamage  int
	ArmorRating   int
	Tier          int
	RequiredSkill string
	RequiredLevel int
	Image         string
	Slot          string
}

// ItemCatalog indexes item definitions by id
type ItemCatalog struct {
	items map[ItemID]ItemDef
}

// NewItemCatalog builds a catalog. Later duplicates replace earlier ones.
func NewItemCatalog(defs []ItemDef) *ItemCatalog {
	c := &ItemCatalog{items: make(map[ItemID]ItemDef, len(defs))}
	for _, d := range defs {
		c.items[d.ID] = d
	}
	return c
}

// ByID looks an item up by id
func (c *ItemCatalog) ByID(id ItemID) (ItemDef, bool) {
	d, ok := c.items[id]
	return d, ok
}

// ByName returns the lowest-id item with the given name
func (c *ItemCatalog) ByName(name string) (ItemDef, bool) {
	for _, d := range c.All() {
		if d.Name == name {
			return d, true
		}
	}
	return ItemDef{}, false
}

// All returns every item ordered by id
func (c *ItemCatalog) All() []ItemDef {
	out := make([]ItemDef, 0, len(c.items))
	for _, d := range c.items {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of items
func (c *ItemCatalog) Len() int {
	return len(c.items)
}

// Inventory is an ordered bag of item ids
type Inventory struct {
	Items []ItemID
}

// NewInventory creates an inventory holding a copy of items
func NewInventory(items []ItemID) *Inventory {
	return &Inventory{Items: append([]ItemID(nil), items...)}
}

// Add appends an item
func (inv *Inventory) Add(id ItemID) {
	inv.Items = append(inv.Items, id)
}

// Remove removes the first occurrence of id. Returns false if absent.
func (inv *Inventory) Remove(id ItemID) bool {
	for i, it := range inv.Items {
		if it == id {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether id is held
func (inv *Inventory) Contains(id ItemID) bool {
	for _, it := range inv.Items {
		if it == id {
			return true
		}
	}
	return false
}

// DefaultSlots are the equipment slots of a fresh character
var DefaultSlots = []string{"head", "body", "legs"}

// Equipped maps slot names to item ids (0 = empty)
type Equipped struct {
	Slots map[string]ItemID
}

// NewEquipped creates the slot map; missing default slots start empty.
func NewEquipped(slots map[string]ItemID) *Equipped {
	e := &Equipped{Slots: make(map[string]ItemID, len(DefaultSlots))}
	for _, s := range DefaultSlots {
		e.Slots[s] = 0
	}
	for s, id := range slots {
		e.Slots[s] = id
	}
	return e
}

// Equip puts id into slot. An item already in the slot goes back to inv.
// Returns false for an unknown slot.
func (e *Equipped) Equip(slot string, id ItemID, inv *Inventory) bool {
	current, ok := e.Slots[slot]
	if !ok {
		return false
	}
	if current != 0 && inv != nil {
		inv.Add(current)
	}
	e.Slots[slot] = id
	return true
}

// SlotNames returns slot names in stable order: defaults first, then extras sorted.
func (e *Equipped) SlotNames() []string {
	names := make([]string, 0, len(e.Slots))
	seen := make(map[string]bool, len(DefaultSlots))
	for _, s := range DefaultSlots {
		if _, ok := e.Slots[s]; ok {
			names = append(names, s)
			seen[s] = true
		}
	}
	var extra []string
	for s := range e.Slots {
		if !seen[s] {
			extra = append(extra, s)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}
