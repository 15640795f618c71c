// Package debugui provides Dear ImGui debug windows for a running session.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// Overlay holds the windows drawn each frame and the input capture state
// reported by Dear ImGui.
type Overlay struct {
	items []func()

	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Add registers a render function, called once per frame in registration order.
func (o *Overlay) Add(render func()) {
	o.items = append(o.items, render)
}

// Render updates the capture state and draws every registered window. It must be
// called between the backend's BeginFrame and EndFrame.
func (o *Overlay) Render() {
	io := imgui.CurrentIO()
	o.WantCaptureMouse = io.WantCaptureMouse()
	o.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, render := range o.items {
		render()
	}
}
