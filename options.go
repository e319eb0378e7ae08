package dock

// Option configures a Context.
type Option func(*config)

// config collects construction-time settings for a Context.
type config struct {
	style     Style
	windowing Windowing
	main      NativeWindow
	mainPos   Vec2
	font      Font
}

// WithStyle sets the context style.
func WithStyle(style Style) Option {
	return func(c *config) { c.style = style }
}

// WithWindowing attaches the native windowing capability. Without it every
// viewport stays virtual: it has a position and size but no OS window.
func WithWindowing(w Windowing) Option {
	return func(c *config) { c.windowing = w }
}

// WithMainWindow backs the main viewport with an existing native window.
func WithMainWindow(w NativeWindow) Option {
	return func(c *config) { c.main = w }
}

// WithMainPos sets the screen position of a virtual main viewport.
func WithMainPos(pos Vec2) Option {
	return func(c *config) { c.mainPos = pos }
}

// WithFont attaches the text-metrics capability used to size and label
// widgets.
func WithFont(f Font) Option {
	return func(c *config) { c.font = f }
}

// WidgetOption configures a single widget call.
type WidgetOption func(*widgetOptions)

// widgetOptions holds all widget configuration via the extensions map.
type widgetOptions struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
//
// Example:
//
//	var OptTint = dock.NewOptKey("tint", dock.ColorWhite)
//	ctx.Image(tex, size, dock.WithOpt(OptTint, color))
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) WidgetOption {
	return func(o *widgetOptions) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o widgetOptions, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []WidgetOption) widgetOptions {
	var o widgetOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// UVRect holds the texture coordinates of an image's corners.
type UVRect struct {
	U0, V0 float32
	U1, V1 float32
}

// Built-in option keys.
var (
	OptID     = NewOptKey("id", "")
	OptWidth  = NewOptKey[float32]("width", 0)
	OptHeight = NewOptKey[float32]("height", 0)
	OptUV     = NewOptKey("uv", UVRect{U0: 0, V0: 0, U1: 1, V1: 1})
	OptTint   = NewOptKey("tint", ColorWhite)
)

// WithID keys the widget state by id instead of by label.
func WithID(id string) WidgetOption { return WithOpt(OptID, id) }

// WithWidth sets a specific width for the widget.
func WithWidth(width float32) WidgetOption { return WithOpt(OptWidth, width) }

// WithHeight sets a specific height for the widget.
func WithHeight(height float32) WidgetOption { return WithOpt(OptHeight, height) }

// WithUV sets the texture coordinates sampled by Image.
func WithUV(u0, v0, u1, v1 float32) WidgetOption {
	return WithOpt(OptUV, UVRect{U0: u0, V0: v0, U1: u1, V1: v1})
}

// WithTint multiplies an image by a color.
func WithTint(color uint32) WidgetOption { return WithOpt(OptTint, color) }
