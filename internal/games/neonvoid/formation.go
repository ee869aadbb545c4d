package neonvoid

import (
	"math"

	"github.com/vovakirdan/neon-void/internal/config"
	"github.com/vovakirdan/neon-void/internal/core"
)

// Pattern names a formation rule.
type Pattern uint8

const (
	PatternLine Pattern = iota
	PatternV
	PatternSwoop
)

// String returns the pattern name as used in configuration files.
func (p Pattern) String() string {
	switch p {
	case PatternLine:
		return "line"
	case PatternV:
		return "v"
	case PatternSwoop:
		return "swoop"
	default:
		return "?"
	}
}

// ParsePattern converts a configuration name into a Pattern.
func ParsePattern(name string) (Pattern, bool) {
	switch name {
	case "line":
		return PatternLine, true
	case "v":
		return PatternV, true
	case "swoop":
		return PatternSwoop, true
	default:
		return 0, false
	}
}

// FormationShape holds the geometric constants of the formation rules.
type FormationShape struct {
	Spacing float64 // Horizontal gap between neighbours (line, v)
	VStep   float64 // Vertical drop per step away from the center (v)
	RadiusX float64 // Half-ellipse horizontal radius (swoop)
	RadiusY float64 // Half-ellipse vertical radius (swoop)
}

// DefaultFormationShape returns the stock spacing of 80 and the matching radii.
func DefaultFormationShape() FormationShape {
	return FormationShape{Spacing: 80, VStep: 40, RadiusX: 240, RadiusY: 140}
}

// shapeFromConfig extracts the formation constants from the wave settings.
func shapeFromConfig(cfg config.WavesConfig) FormationShape {
	return FormationShape{
		Spacing: cfg.Spacing,
		VStep:   cfg.VStep,
		RadiusX: cfg.SwoopRadiusX,
		RadiusY: cfg.SwoopRadiusY,
	}
}

// Formation returns count spawn points for the pattern around anchor.
// It is pure: the same arguments always give the same points, in order.
//
// For line and v the i-th point sits (i - (count+1)/2) spacings from the
// anchor, so odd counts lean one slot to the left.
func Formation(anchor core.Vec2, p Pattern, count int, shape FormationShape) []core.Vec2 {
	if count <= 0 {
		return nil
	}

	points := make([]core.Vec2, 0, count)
	half := (count + 1) / 2

	switch p {
	case PatternLine:
		for i := range count {
			offset := float64(i - half)
			points = append(points, core.V(anchor.X+offset*shape.Spacing, anchor.Y))
		}

	case PatternV:
		for i := range count {
			offset := float64(i - half)
			points = append(points, core.V(
				anchor.X+offset*shape.Spacing,
				anchor.Y+math.Abs(offset)*shape.VStep,
			))
		}

	case PatternSwoop:
		// A single point would divide by zero; it gets angle 0.
		denom := float64(count - 1)
		if count <= 1 {
			denom = 1
		}
		step := math.Pi / denom
		for i := range count {
			angle := float64(i) * step
			points = append(points, core.V(
				anchor.X+shape.RadiusX*math.Cos(angle),
				anchor.Y+shape.RadiusY*math.Sin(angle),
			))
		}
	}

	return points
}
