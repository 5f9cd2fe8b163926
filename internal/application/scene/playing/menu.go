package playing

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/spellsword/internal/application/world"
	"github.com/younwookim/spellsword/internal/domain/entity"
)

// MenuTab is a page of the character menu
type MenuTab int

const (
	TabQuests MenuTab = iota
	TabInventory
	TabEquipment
	tabCount
)

func (t MenuTab) String() string {
	switch t {
	case TabQuests:
		return "Quests"
	case TabInventory:
		return "Inventory"
	case TabEquipment:
		return "Equipment"
	default:
		return "Unknown"
	}
}

// InventoryFilters are the inventory sub-tabs. Each filter but "All"
// matches one item type.
var InventoryFilters = []string{"All", "Weapons", "Armor", "Consumable", "Valuables"}

var filterTypes = map[string]string{
	"Weapons":    "Weapon",
	"Armor":      "Armor",
	"Consumable": "Consumable",
	"Valuables":  "Valuables",
}

var quests = []string{
	"Clear the goblins from the east hall",
	"Open the sealed crypt door",
	"Return the silver ring to its owner",
}

var (
	colorMenuBG     = color.RGBA{30, 30, 30, 255}
	colorMenuBorder = color.RGBA{255, 255, 255, 255}
	colorMenuTab    = color.RGBA{70, 70, 70, 255}
	colorMenuLine   = color.RGBA{200, 200, 200, 255}
	colorMenuPick   = color.RGBA{255, 215, 0, 255}
)

// CharacterMenu is the selection state of the character menu
type CharacterMenu struct {
	Tab      MenuTab
	Filter   int
	Selected int
}

// NewCharacterMenu creates a menu on the quests tab
func NewCharacterMenu() *CharacterMenu {
	return &CharacterMenu{Tab: TabQuests}
}

// Open resets the item cursor; the last tab is kept
func (m *CharacterMenu) Open() {
	m.Selected = 0
}

func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// Handle applies one frame of menu keys. Returns true if an item was equipped.
func (m *CharacterMenu) Handle(in MenuInput, p *entity.Player, items *entity.ItemCatalog) bool {
	if in.PrevTab {
		m.Tab = MenuTab(wrap(int(m.Tab)-1, int(tabCount)))
	}
	if in.NextTab {
		m.Tab = MenuTab(wrap(int(m.Tab)+1, int(tabCount)))
	}
	if m.Tab != TabInventory || p == nil {
		return false
	}

	if in.PrevFilter || in.NextFilter {
		step := 1
		if in.PrevFilter {
			step = -1
		}
		m.Filter = wrap(m.Filter+step, len(InventoryFilters))
		m.Selected = 0
	}

	n := len(m.Visible(p.Inventory, items))
	if in.Up {
		m.Selected = wrap(m.Selected-1, n)
	}
	if in.Down {
		m.Selected = wrap(m.Selected+1, n)
	}
	if in.Equip {
		return m.EquipSelected(p, items)
	}
	return false
}

// Visible returns the inventory ids shown under the current filter, in carry order.
func (m *CharacterMenu) Visible(inv *entity.Inventory, items *entity.ItemCatalog) []entity.ItemID {
	if inv == nil {
		return nil
	}
	want := filterTypes[InventoryFilters[m.Filter]]
	out := make([]entity.ItemID, 0, len(inv.Items))
	for _, id := range inv.Items {
		if want == "" {
			out = append(out, id)
			continue
		}
		if items == nil {
			continue
		}
		if def, ok := items.ByID(id); ok && def.Type == want {
			out = append(out, id)
		}
	}
	return out
}

// EquipSelected moves the selected item into its slot. The previous
// occupant goes back to the inventory.
func (m *CharacterMenu) EquipSelected(p *entity.Player, items *entity.ItemCatalog) bool {
	if items == nil || p.Equipped == nil {
		return false
	}
	ids := m.Visible(p.Inventory, items)
	if m.Selected < 0 || m.Selected >= len(ids) {
		return false
	}
	id := ids[m.Selected]
	def, ok := items.ByID(id)
	if !ok || def.Slot == "" {
		return false
	}
	if !p.Equipped.Equip(def.Slot, id, p.Inventory) {
		return false
	}
	p.Inventory.Remove(id)

	if n := len(m.Visible(p.Inventory, items)); m.Selected >= n {
		m.Selected = max(n-1, 0)
	}
	return true
}

func itemName(items *entity.ItemCatalog, id entity.ItemID) string {
	if id == 0 {
		return "None"
	}
	if items != nil {
		if def, ok := items.ByID(id); ok {
			return def.Name
		}
	}
	return fmt.Sprintf("Item #%d", id)
}

func slotLabel(slot string) string {
	words := strings.Split(slot, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// Draw renders the menu panel centered on a screenW x screenH screen
func (m *CharacterMenu) Draw(screen *ebiten.Image, face text.Face, snap world.Snapshot, items *entity.ItemCatalog, screenW, screenH int) {
	w, h := float32(screenW)*0.75, float32(screenH)*0.75
	x, y := (float32(screenW)-w)/2, (float32(screenH)-h)/2
	vector.FillRect(screen, x, y, w, h, colorMenuBG, false)
	vector.StrokeRect(screen, x, y, w, h, 3, colorMenuBorder, false)

	const tabH = 40
	tabW := w / float32(tabCount)
	for t := MenuTab(0); t < tabCount; t++ {
		tx := x + float32(t)*tabW
		if t == m.Tab {
			vector.FillRect(screen, tx, y, tabW, tabH, colorMenuTab, false)
		}
		vector.StrokeRect(screen, tx, y, tabW, tabH, 2, colorMenuLine, false)
		drawText(screen, face, t.String(), float64(tx)+10, float64(y)+10, colorMenuBorder)
	}

	cx, cy := float64(x)+20, float64(y)+tabH+20
	switch m.Tab {
	case TabQuests:
		for i, q := range quests {
			drawText(screen, face, fmt.Sprintf("%d. %s", i+1, q), cx, cy+float64(i)*30, colorMenuBorder)
		}
	case TabInventory:
		for i, f := range InventoryFilters {
			c := color.Color(colorMenuLine)
			if i == m.Filter {
				c = colorMenuPick
			}
			drawText(screen, face, f, cx+float64(i)*110, cy, c)
		}
		for i, id := range m.Visible(&entity.Inventory{Items: snap.Inventory}, items) {
			c := color.Color(colorMenuBorder)
			prefix := "  "
			if i == m.Selected {
				c, prefix = colorMenuPick, "> "
			}
			drawText(screen, face, prefix+itemName(items, id), cx, cy+40+float64(i)*26, c)
		}
	case TabEquipment:
		for i, slot := range snap.SlotNames {
			line := fmt.Sprintf("%s: %s", slotLabel(slot), itemName(items, snap.Equipped[slot]))
			drawText(screen, face, line, cx, cy+float64(i)*30, colorMenuBorder)
		}
	}
}
