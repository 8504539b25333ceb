package game

// Logical field size. Every game position is stored in these units.
const (
	BaseWidth  = 800
	BaseHeight = 600

	targetOffset = 100
)

// Viewport maps the logical field onto a screen of some size.
type Viewport struct {
	Width, Height  int     // Screen size in screen units
	ScaleX, ScaleY float64 // Screen units per logical unit
}

func NewViewport(width, height int) Viewport {
	if width <= 0 {
		width = BaseWidth
	}
	if height <= 0 {
		height = BaseHeight
	}
	return Viewport{
		Width:  width,
		Height: height,
		ScaleX: float64(width) / BaseWidth,
		ScaleY: float64(height) / BaseHeight,
	}
}

// TargetY is the logical position of the target line.
func (v Viewport) TargetY() float64 {
	return BaseHeight - targetOffset
}

// LaneWidth is the logical width of one lane.
func (v Viewport) LaneWidth() float64 {
	return float64(BaseWidth) / float64(Lanes+1)
}

// LaneX is the logical centre of a lane.
func (v Viewport) LaneX(lane int) float64 {
	w := v.LaneWidth()
	return float64(lane+1)*w - w/2
}

// Project converts a logical point into screen units.
func (v Viewport) Project(x, y float64) (float64, float64) {
	return x * v.ScaleX, y * v.ScaleY
}
