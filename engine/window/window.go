package window

import (
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
)

// Window provides platform windowing and input event handling.
// Wraps platform-specific window implementations with a common interface.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer is
	// resized. Reports pixel dimensions, not screen coordinates.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetScrollCallback sets the callback for mouse scroll wheel events.
	//
	// Parameters:
	//   - callback: function receiving scroll delta (positive = up, negative = down)
	SetScrollCallback(callback func(delta float32))

	// SetKeyCallback sets the callback for key press and release events.
	//
	// Parameters:
	//   - callback: function receiving the key code and whether the key is down
	SetKeyCallback(callback func(key int, pressed bool))

	// SetMouseButtonCallback sets the callback for mouse button events.
	// Button codes match the common.MouseButton* constants.
	//
	// Parameters:
	//   - callback: function receiving the button code and whether it is down
	SetMouseButtonCallback(callback func(button int, pressed bool))

	// SetMouseMoveCallback sets the callback for cursor movement.
	//
	// Parameters:
	//   - callback: function receiving the cursor position in screen coordinates
	SetMouseMoveCallback(callback func(x, y float64))

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating
	// a WebGPU surface. The descriptor is platform-appropriate (Windows HWND,
	// X11 Xlib, Wayland, macOS Metal, etc.).
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls the update callback each iteration.
	ProcessMessages()

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// width is the current framebuffer width in pixels.
	width int

	// height is the current framebuffer height in pixels.
	height int

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// onUpdate is called each iteration of the message loop (if set).
	onUpdate func()

	// onResize is called when the framebuffer is resized.
	onResize func(width, height int)

	// onScroll is called for mouse wheel events.
	onScroll func(delta float32)

	// onKey is called for key press and release events.
	onKey func(key int, pressed bool)

	// onMouseButton is called for mouse button press and release events.
	onMouseButton func(button int, pressed bool)

	// onMouseMove is called when the cursor moves within the window.
	onMouseMove func(x, y float64)
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:  "Scene",
		width:  1280,
		height: 720,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetScrollCallback(callback func(delta float32)) {
	w.onScroll = callback
}

func (w *engineWindow) SetKeyCallback(callback func(key int, pressed bool)) {
	w.onKey = callback
}

func (w *engineWindow) SetMouseButtonCallback(callback func(button int, pressed bool)) {
	w.onMouseButton = callback
}

func (w *engineWindow) SetMouseMoveCallback(callback func(x, y float64)) {
	w.onMouseMove = callback
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}
