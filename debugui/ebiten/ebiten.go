// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend and the overlay it draws.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
	Overlay *debugui.Overlay
}

// NewImguiBackend creates the backend. The caller creates the window through the
// embedded backend before running the game.
func NewImguiBackend(overlay *debugui.Overlay) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	return &ImguiBackend{
		EbitenBackend: backend,
		Overlay:       overlay,
	}
}

// DisableIniFile stops Dear ImGui from persisting window layout to imgui.ini.
func DisableIniFile() {
	imgui.CurrentIO().SetIniFilename("")
}

// Frame draws the overlay as one Dear ImGui frame. Call it from ebiten's Update.
func (b *ImguiBackend) Frame() {
	b.BeginFrame()
	b.Overlay.Render()
	b.EndFrame()
}
