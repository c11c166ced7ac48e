// component/render.go
package component

import "image/color"

// Renderable holds the draw parameters of an entity.
type Renderable struct {
	Color     color.RGBA
	Radius    float32
	HasStroke bool
}
