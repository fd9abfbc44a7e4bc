package models

import "fmt"

// Rect is the inclusive city rectangle a country occupies.
// Coordinates range over [0, constants.MaxCoordinate].
// (XL, YL) is the lower-left city and (XH, YH) the upper-right one.
type Rect struct {
	XL int `json:"xl" yaml:"xl" validate:"min=0,max=10000"`
	YL int `json:"yl" yaml:"yl" validate:"min=0,max=10000"`
	XH int `json:"xh" yaml:"xh" validate:"min=0,max=10000,gtefield=XL"`
	YH int `json:"yh" yaml:"yh" validate:"min=0,max=10000,gtefield=YL"`
}

// Area returns the number of cities inside the rectangle.
func (r Rect) Area() int { return (r.XH - r.XL + 1) * (r.YH - r.YL + 1) }

// Overlaps reports whether the two rectangles share at least one city.
func (r Rect) Overlaps(o Rect) bool {
	return r.XL <= o.XH && o.XL <= r.XH && r.YL <= o.YH && o.YL <= r.YH
}

// String returns the rectangle as "(xl,yl)-(xh,yh)".
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.XL, r.YL, r.XH, r.YH)
}

// Country is a named rectangle of cities sharing one home currency.
type Country struct {
	Name string `json:"name" yaml:"name"`
	Rect Rect   `json:"rect" yaml:"rect"`
}
