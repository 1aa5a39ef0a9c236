package colors

// Color is an RGBA color with components in [0,1].
type Color [4]float32

var (
	White = Color{1, 1, 1, 1}
	Black = Color{0, 0, 0, 1}
	Red   = Color{1, 0, 0, 1}
	Green = Color{0, 1, 0, 1}
	Blue  = Color{0, 0, 1, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}
