package component

import "image/color"

// Tint is the flat color an entity's box is drawn with.
type Tint struct {
	Color color.Color
}

var TintComponent = NewComponent[Tint]()
