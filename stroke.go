package kinema

// Cap specifies the shape of stroke endpoints.
type Cap int

const (
	// CapButt specifies a flat line cap.
	CapButt Cap = iota
	// CapRound specifies a rounded line cap.
	CapRound
	// CapSquare specifies a square line cap.
	CapSquare
)

// Join specifies the shape of stroke joins.
type Join int

const (
	// JoinMiter specifies a sharp (mitered) join.
	JoinMiter Join = iota
	// JoinRound specifies a rounded join.
	JoinRound
	// JoinBevel specifies a beveled join.
	JoinBevel
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleWinding uses the non-zero winding rule.
	FillRuleWinding FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// StrokeStyle describes how a path is stroked.
// Dash holds alternating draw/gap lengths along the stroke's arc length;
// nil or empty means a solid line.
type StrokeStyle struct {
	Width      float32
	Cap        Cap
	Join       Join
	MiterLimit float32
	Dash       []float32
	DashOffset float32
}

// DefaultStrokeStyle returns a solid 1-pixel stroke with butt caps and
// miter joins.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{
		Width:      1,
		Cap:        CapButt,
		Join:       JoinMiter,
		MiterLimit: 4,
	}
}
