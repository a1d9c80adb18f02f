package viewer

import (
	"github.com/chewxy/math32"

	"github.com/Echtzeit-Computergrafik-WS23/glance/pkg/geo"
	"github.com/Echtzeit-Computergrafik-WS23/glance/pkg/math"
)

// PlatformSize is the extent of the table the scene stands on.
var PlatformSize = math.Vec3{X: 2.5, Y: 0.2, Z: 2.5}

const (
	gearScale  = 0.1
	axleOffset = 0.4
)

// Placement is where the gear currently is.
type Placement int

const (
	OnTable Placement = iota
	Held              // follows the pointer above the cube
	OnLeftAxle
	OnRightAxle
)

func (p Placement) String() string {
	switch p {
	case OnTable:
		return "table"
	case Held:
		return "held"
	case OnLeftAxle:
		return "left axle"
	case OnRightAxle:
		return "right axle"
	}
	return "unknown"
}

// Action is a user command acting on the gear.
type Action int

const (
	ActionNone Action = iota
	ActionToggleHold
	ActionPlace
	ActionReset
)

// Apply returns the placement after the action. cursorX is the pointer
// position in [-1, 1] and picks the axle when placing.
func (p Placement) Apply(a Action, cursorX float32) Placement {
	switch a {
	case ActionToggleHold:
		switch p {
		case OnTable:
			return Held
		case Held:
			return OnTable
		}
	case ActionPlace:
		if p == Held {
			if cursorX >= 0 {
				return OnRightAxle
			}
			return OnLeftAxle
		}
	case ActionReset:
		return OnTable
	}
	return p
}

// GearModel returns the gear's model matrix. Gears on an axle spin with
// one radian per second of elapsed time.
func GearModel(p Placement, cursorX, seconds float32) math.Mat4 {
	scale := math.Scale(gearScale, gearScale, gearScale)
	spin := math.RotateY(seconds)
	switch p {
	case Held:
		return math.Translate(cursorX, 0.8, 0).Mul(scale)
	case OnLeftAxle:
		return math.Translate(-axleOffset, 0.45, 0).Mul(spin).Mul(scale)
	case OnRightAxle:
		return math.Translate(axleOffset, 0.45, 0).Mul(spin).Mul(scale)
	}
	return math.Translate(1, -0.6, 1).Mul(scale)
}

// PlatformModel places the table below the cube.
func PlatformModel() math.Mat4 {
	return math.Translate(0, -0.75, 0)
}

// CubeModel turns the cube by 45 degrees and rests it on the platform.
func CubeModel() math.Mat4 {
	return math.RotateY(math32.Pi / 4).Mul(math.Translate(0, -0.15, 0))
}

// AxleModel places an axle on top of the cube; side is -1 or 1.
func AxleModel(side float32) math.Mat4 {
	return math.Translate(side*axleOffset, 0.4, 0)
}

// SphereModel floats the sphere above the front corner of the platform.
func SphereModel(seconds float32) math.Mat4 {
	bob := 0.05 * math32.Sin(seconds*2)
	return math.Translate(-0.9, -0.45+bob, 0.9).Mul(math.Scale(0.15, 0.15, 0.15))
}

// CursorX maps a window x coordinate to [-1, 1].
func CursorX(x, width int) float32 {
	if width <= 1 {
		return 0
	}
	c := 2*float32(x)/float32(width-1) - 1
	if c < -1 {
		return -1
	}
	if c > 1 {
		return 1
	}
	return c
}

// FallbackGear stands in for the gear model when none is configured:
// a flat disc with the gear's footprint.
func FallbackGear() *geo.Mesh {
	opts := geo.DefaultCylinderOptions()
	opts.Radius = 1.2
	opts.Height = 0.4
	opts.RadialSegments = 24
	return geo.Cylinder(opts)
}

// deliver hands path to the render loop, or reports false once done is
// closed and nobody will read it.
func deliver(picked chan<- string, done <-chan struct{}, path string) bool {
	select {
	case picked <- path:
		return true
	case <-done:
		return false
	}
}
