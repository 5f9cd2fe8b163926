package playing

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/spellsword/internal/application/system"
	"github.com/younwookim/spellsword/internal/application/world"
	"github.com/younwookim/spellsword/internal/domain/geom"
	"github.com/younwookim/spellsword/internal/infrastructure/assets"
)

var (
	colorBG          = color.RGBA{26, 26, 46, 255}
	colorTarget      = color.RGBA{255, 215, 0, 255}
	colorOverlay     = color.RGBA{0, 0, 0, 150}
	projectileSize   = 16.0
	enemyBarHeight   = 5.0
	enemyBarSpacing  = 2.0
	enemyCastBarSize = 4.0
)

// worldRenderer draws tiles, actors and projectiles around the player
type worldRenderer struct {
	camera  system.Camera
	assets  *assets.Resolver
	screenW float64
	screenH float64
}

func newWorldRenderer(resolver *assets.Resolver, screenW, screenH int) *worldRenderer {
	return &worldRenderer{
		camera:  system.NewCamera(screenW, screenH),
		assets:  resolver,
		screenW: float64(screenW),
		screenH: float64(screenH),
	}
}

// onScreen reports whether a screen-space rect overlaps the viewport
func (r *worldRenderer) onScreen(rect geom.Rect) bool {
	return rect.Right() > 0 && rect.X < r.screenW && rect.Bottom() > 0 && rect.Y < r.screenH
}

// drawImage stretches img over rect
func drawImage(screen, img *ebiten.Image, rect geom.Rect) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(rect.W/float64(b.Dx()), rect.H/float64(b.Dy()))
	op.GeoM.Translate(rect.X, rect.Y)
	screen.DrawImage(img, op)
}

func (r *worldRenderer) Draw(screen *ebiten.Image, snap world.Snapshot) {
	focus := snap.Player.Rect

	for _, t := range snap.Tiles {
		rect := r.camera.ToScreen(t.Rect, focus)
		if !r.onScreen(rect) {
			continue
		}
		drawImage(screen, r.assets.Resolve(t.Image), rect)
	}

	for _, e := range snap.Enemies {
		rect := r.camera.ToScreen(e.Rect, focus)
		if !r.onScreen(rect) {
			continue
		}
		drawImage(screen, r.assets.Resolve(e.Image), rect)
		if e.Targeted {
			vector.StrokeRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), 2, colorTarget, false)
		}
		r.drawEnemyBars(screen, e, rect)
	}

	for i := range snap.Projectiles {
		p := &snap.Projectiles[i]
		if !p.Active {
			continue
		}
		center := p.Position()
		rect := r.camera.ToScreen(geom.Rect{
			X: center.X - projectileSize/2,
			Y: center.Y - projectileSize/2,
			W: projectileSize,
			H: projectileSize,
		}, focus)
		if !r.onScreen(rect) {
			continue
		}
		r.drawProjectile(screen, r.assets.Resolve(p.Icon), rect, p.Rotation())
	}

	if snap.PlayerAlive {
		drawImage(screen, r.assets.Resolve(snap.Player.Image), r.camera.ToScreen(focus, focus))
	}
}

// drawEnemyBars draws health below the enemy and the cast bar below that
func (r *worldRenderer) drawEnemyBars(screen *ebiten.Image, e world.ActorView, rect geom.Rect) {
	y := rect.Bottom() + enemyBarSpacing
	vector.FillRect(screen, float32(rect.X), float32(y), float32(rect.W), float32(enemyBarHeight), colorHealthBG, false)
	vector.FillRect(screen, float32(rect.X), float32(y),
		float32(fillWidth(e.Stats.Health, e.Stats.MaxHealth, rect.W)), float32(enemyBarHeight), colorHealth, false)

	if e.Casting == "" {
		return
	}
	y += enemyBarHeight + enemyBarSpacing
	vector.FillRect(screen, float32(rect.X), float32(y), float32(rect.W), float32(enemyCastBarSize), colorCastBG, false)
	vector.FillRect(screen, float32(rect.X), float32(y), float32(rect.W*e.CastProgress), float32(enemyCastBarSize), colorCast, false)
}

func (r *worldRenderer) drawProjectile(screen, img *ebiten.Image, rect geom.Rect, angle float64) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(rect.W/float64(b.Dx()), rect.H/float64(b.Dy()))
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(rect.X+rect.W/2, rect.Y+rect.H/2)
	screen.DrawImage(img, op)
}

// drawOverlay dims the screen and prints a centered title with a hint below
func drawOverlay(screen *ebiten.Image, h *HUD, title, hint string, screenW, screenH int) {
	vector.FillRect(screen, 0, 0, float32(screenW), float32(screenH), colorOverlay, false)
	cx, cy := float64(screenW)/2, float64(screenH)/2
	drawText(screen, h.Face(), title, cx-float64(len(title))*4, cy-20, colorBorder)
	if hint != "" {
		drawText(screen, h.Face(), hint, cx-float64(len(hint))*4, cy+10, colorBorder)
	}
}
