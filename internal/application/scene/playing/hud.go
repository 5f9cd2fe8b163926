package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/spellsword/internal/application/world"
	"github.com/younwookim/spellsword/internal/domain/entity"
	"github.com/younwookim/spellsword/internal/infrastructure/assets"
	"github.com/younwookim/spellsword/internal/infrastructure/config"
)

// HUD layout defaults
const (
	hudPadding     = 20
	xpBarHeight    = 25
	portraitSize   = 64
	slotSize       = 48
	damageRisePxPS = 30 // damage numbers float up this fast
)

var (
	colorXP       = color.RGBA{128, 0, 128, 255}
	colorXPBG     = color.RGBA{80, 0, 80, 255}
	colorHealth   = color.RGBA{200, 30, 30, 255}
	colorHealthBG = color.RGBA{90, 10, 10, 255}
	colorMana     = color.RGBA{30, 80, 220, 255}
	colorManaBG   = color.RGBA{10, 30, 90, 255}
	colorStamina  = color.RGBA{30, 180, 60, 255}
	colorStamBG   = color.RGBA{10, 70, 20, 255}
	colorCast     = color.RGBA{0, 255, 0, 255}
	colorCastBG   = color.RGBA{50, 50, 50, 255}
	colorBorder   = color.RGBA{255, 255, 255, 255}
	colorDamage   = color.RGBA{255, 0, 0, 255}
	colorCooldown = color.RGBA{0, 0, 0, 160}
)

// HUD draws status bars, the cast bar, the ability bar and damage numbers
type HUD struct {
	face    text.Face
	cfg     config.HUDConfig
	assets  *assets.Resolver
	screenW int
	screenH int
	window  float64
}

// NewHUD creates a HUD for a screenW x screenH screen
func NewHUD(cfg config.HUDConfig, damageWindow float64, resolver *assets.Resolver, screenW, screenH int) (*HUD, error) {
	face, err := newFace(cfg.FontSize)
	if err != nil {
		return nil, err
	}
	if cfg.BarWidth <= 0 {
		cfg.BarWidth = 200
	}
	if cfg.BarHeight <= 0 {
		cfg.BarHeight = 18
	}
	if damageWindow <= 0 {
		damageWindow = world.DefaultDamageLogWindow
	}
	return &HUD{
		face:    face,
		cfg:     cfg,
		assets:  resolver,
		screenW: screenW,
		screenH: screenH,
		window:  damageWindow,
	}, nil
}

// Face returns the HUD font face
func (h *HUD) Face() text.Face {
	return h.face
}

// fillWidth returns the filled part of a bar of width w
func fillWidth(value, max int, w float64) float64 {
	return entity.Ratio(value, max) * w
}

// damagePopup returns how far a damage number has risen and its opacity
func damagePopup(e entity.DamageEntry, now, window float64) (rise float64, alpha float32) {
	age := now - e.At
	if age < 0 {
		age = 0
	}
	if window <= 0 || age > window {
		return age * damageRisePxPS, 0
	}
	return age * damageRisePxPS, float32(1 - age/window)
}

func drawText(screen *ebiten.Image, face text.Face, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

func drawBar(screen *ebiten.Image, value, max int, x, y, w, h float64, fg, bg color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), bg, false)
	vector.FillRect(screen, float32(x), float32(y), float32(fillWidth(value, max, w)), float32(h), fg, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, colorBorder, false)
}

func drawProgress(screen *ebiten.Image, progress, x, y, w, h float64) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), colorCastBG, false)
	vector.FillRect(screen, float32(x), float32(y), float32(w*progress), float32(h), colorCast, false)
}

// Draw renders the HUD for one snapshot
func (h *HUD) Draw(screen *ebiten.Image, snap world.Snapshot) {
	stats := snap.Player.Stats
	sw, sh := float64(h.screenW), float64(h.screenH)

	drawBar(screen, stats.XP, stats.MaxXP, hudPadding, hudPadding, sw-2*hudPadding, xpBarHeight, colorXP, colorXPBG)

	py := float64(hudPadding + xpBarHeight + 10)
	portrait := h.assets.Resolve(snap.Portrait)
	op := &ebiten.DrawImageOptions{}
	b := portrait.Bounds()
	op.GeoM.Scale(portraitSize/float64(b.Dx()), portraitSize/float64(b.Dy()))
	op.GeoM.Translate(hudPadding, py)
	screen.DrawImage(portrait, op)

	bx := float64(hudPadding + portraitSize + 10)
	bw, bh := float64(h.cfg.BarWidth), float64(h.cfg.BarHeight)
	bars := []struct {
		value, max int
		fg, bg     color.Color
	}{
		{stats.Health, stats.MaxHealth, colorHealth, colorHealthBG},
		{stats.Mana, stats.MaxMana, colorMana, colorManaBG},
		{stats.Stamina, stats.MaxStamina, colorStamina, colorStamBG},
	}
	for i, bar := range bars {
		drawBar(screen, bar.value, bar.max, bx, py+float64(i)*(bh+4), bw, bh, bar.fg, bar.bg)
	}

	h.drawAbilityBar(screen, snap)

	if snap.Player.Casting != "" {
		cy := sh - slotSize - 2*hudPadding - 20
		drawText(screen, h.face, "Casting: "+snap.Player.Casting, hudPadding+5, cy-25, colorBorder)
		drawProgress(screen, snap.Player.CastProgress, hudPadding, cy, sw-2*hudPadding, 20)
	}

	h.drawDamage(screen, snap)

	if h.cfg.ShowDebug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("t=%.2f enemies=%d projectiles=%d", snap.Now, len(snap.Enemies), len(snap.Projectiles)), int(sw)-220, hudPadding+xpBarHeight+10)
	}
}

func (h *HUD) drawAbilityBar(screen *ebiten.Image, snap world.Snapshot) {
	y := float64(h.screenH) - slotSize - hudPadding
	for i, a := range snap.Abilities {
		x := float64(hudPadding + i*(slotSize+8))
		icon := h.assets.Resolve(a.Icon)
		op := &ebiten.DrawImageOptions{}
		b := icon.Bounds()
		op.GeoM.Scale(slotSize/float64(b.Dx()), slotSize/float64(b.Dy()))
		op.GeoM.Translate(x, y)
		screen.DrawImage(icon, op)

		if !a.Ready {
			vector.FillRect(screen, float32(x), float32(y), slotSize, slotSize, colorCooldown, false)
			drawText(screen, h.face, fmt.Sprintf("%.1f", a.CooldownRemaining), x+8, y+16, colorBorder)
		}
		vector.StrokeRect(screen, float32(x), float32(y), slotSize, slotSize, 2, colorBorder, false)
		drawText(screen, h.face, fmt.Sprintf("%d", i+1), x+2, y+2, colorBorder)
	}
}

// drawDamage floats recent hits above the player, who is always screen-centered
func (h *HUD) drawDamage(screen *ebiten.Image, snap world.Snapshot) {
	cx := float64(h.screenW) / 2
	top := float64(h.screenH)/2 - snap.Player.Rect.H/2
	for i, e := range snap.Damage {
		rise, alpha := damagePopup(e, snap.Now, h.window)
		if alpha <= 0 {
			continue
		}
		label := fmt.Sprintf("-%d", e.Amount)
		w, _ := text.Measure(label, h.face, 0)
		op := &text.DrawOptions{}
		op.GeoM.Translate(cx-w/2, top-20-rise-float64(i)*4)
		op.ColorScale.ScaleWithColor(colorDamage)
		op.ColorScale.ScaleAlpha(alpha)
		text.Draw(screen, label, h.face, op)
	}
}
