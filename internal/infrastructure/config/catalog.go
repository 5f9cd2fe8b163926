package config

import (
	"fmt"

	"github.com/younwookim/spellsword/internal/domain/entity"
)

// Ability defaults applied when a field is omitted
const (
	DefaultCastTime = 2.0
	DefaultMelee    = true
	DefaultRange    = 0.0
)

// AbilitiesFile is the root of abilities.json
type AbilitiesFile struct {
	Abilities []AbilityConfig `json:"abilities"`
}

// AbilityConfig is one ability entry. Optional fields are pointers so that
// omitted values can fall back to defaults.
type AbilityConfig struct {
	Name     string   `json:"name"`
	Damage   int      `json:"damage"`
	ManaCost int      `json:"mana_cost"`
	Cooldown float64  `json:"cooldown"`
	CastTime *float64 `json:"cast_time,omitempty"`
	Melee    *bool    `json:"melee,omitempty"`
	Range    *float64 `json:"range,omitempty"`
	Icon     string   `json:"icon,omitempty"`
}

// Def converts the entry into a domain definition with defaults applied
func (c AbilityConfig) Def() entity.AbilityDef {
	def := entity.AbilityDef{
		Name:     c.Name,
		Damage:   c.Damage,
		ManaCost: c.ManaCost,
		Cooldown: c.Cooldown,
		CastTime: DefaultCastTime,
		Melee:    DefaultMelee,
		Range:    DefaultRange,
		Icon:     c.Icon,
	}
	if c.CastTime != nil {
		def.CastTime = *c.CastTime
	}
	if c.Melee != nil {
		def.Melee = *c.Melee
	}
	if c.Range != nil {
		def.Range = *c.Range
	}
	return def
}

// Catalog indexes ability definitions by name
type Catalog struct {
	defs  map[string]entity.AbilityDef
	order []string
}

// NewCatalog builds a catalog from loaded entries
func NewCatalog(entries []AbilityConfig) *Catalog {
	c := &Catalog{defs: make(map[string]entity.AbilityDef, len(entries))}
	for _, e := range entries {
		if _, dup := c.defs[e.Name]; !dup {
			c.order = append(c.order, e.Name)
		}
		c.defs[e.Name] = e.Def()
	}
	return c
}

// Def returns the definition for name
func (c *Catalog) Def(name string) (entity.AbilityDef, bool) {
	d, ok := c.defs[name]
	return d, ok
}

// Names returns ability names in file order
func (c *Catalog) Names() []string {
	return append([]string(nil), c.order...)
}

// Abilities instantiates fresh abilities for names, failing on the first unknown name.
func (c *Catalog) Abilities(names ...string) ([]*entity.Ability, error) {
	out := make([]*entity.Ability, 0, len(names))
	for _, n := range names {
		d, ok := c.defs[n]
		if !ok {
			return nil, fmt.Errorf("unknown ability %q", n)
		}
		out = append(out, entity.NewAbility(d))
	}
	return out, nil
}

// ItemsFile is the root of items.json
type ItemsFile struct {
	Items []ItemConfig `json:"items"`
}

// ItemConfig is one item entry
type ItemConfig struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Weight        float64 `json:"weight"`
	Value         int     `json:"value"`
	AttackDamage  int     `json:"attack_damage,omitempty"`
	ArmorRating   int     `json:"armor_rating,omitempty"`
	Tier          int     `json:"tier,omitempty"`
	RequiredSkill []any   `json:"required_skill,omitempty"` // [skill, level]
	Src           string  `json:"src,omitempty"`
	Slot          string  `json:"slot,omitempty"`
}

// Def converts the entry into a domain item
func (c ItemConfig) Def() entity.ItemDef {
	def := entity.ItemDef{
		ID:           entity.ItemID(c.ID),
		Name:         c.Name,
		Type:         c.Type,
		Weight:       c.Weight,
		Value:        c.Value,
		AttackDamage: c.AttackDamage,
		ArmorRating:  c.ArmorRating,
		Tier:         c.Tier,
		Image:        c.Src,
		Slot:         c.Slot,
	}
	if len(c.RequiredSkill) == 2 {
		if s, ok := c.RequiredSkill[0].(string); ok {
			def.RequiredSkill = s
		}
		if lvl, ok := c.RequiredSkill[1].(float64); ok {
			def.RequiredLevel = int(lvl)
		}
	}
	return def
}

// ItemCatalog converts loaded items into a domain catalog
func (f *ItemsFile) ItemCatalog() *entity.ItemCatalog {
	defs := make([]entity.ItemDef, 0, len(f.Items))
	for _, it := range f.Items {
		defs = append(defs, it.Def())
	}
	return entity.NewItemCatalog(defs)
}

// LoadoutConfig is the root of player.json: carried and equipped item ids
type LoadoutConfig struct {
	Inventory []int          `json:"inventory"`
	Equipped  map[string]int `json:"equipped"`
}

// Apply fills the player's inventory and equipment slots
func (c *LoadoutConfig) Apply(p *entity.Player) {
	items := make([]entity.ItemID, 0, len(c.Inventory))
	for _, id := range c.Inventory {
		items = append(items, entity.ItemID(id))
	}
	slots := make(map[string]entity.ItemID, len(c.Equipped))
	for s, id := range c.Equipped {
		slots[s] = entity.ItemID(id)
	}
	p.Inventory = entity.NewInventory(items)
	p.Equipped = entity.NewEquipped(slots)
}
