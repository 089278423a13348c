package distribute

import (
	"fmt"

	"github.com/hay-kot/colsize/internal/core/viewdoc"
)

// Behavior selects how a single configured number becomes column widths.
type Behavior string

const (
	BehaviorDisabled   Behavior = "disabled"
	BehaviorMinWidth   Behavior = "min-width"
	BehaviorMaxWidth   Behavior = "max-width"
	BehaviorFitContent Behavior = "fit-content"
	BehaviorCustom     Behavior = "custom"
	BehaviorEven       Behavior = "even"
)

// Behaviors lists every supported behavior.
func Behaviors() []Behavior {
	return []Behavior{
		BehaviorDisabled,
		BehaviorMinWidth,
		BehaviorMaxWidth,
		BehaviorFitContent,
		BehaviorCustom,
		BehaviorEven,
	}
}

// IsValid reports whether b is a supported behavior.
func (b Behavior) IsValid() bool {
	for _, v := range Behaviors() {
		if b == v {
			return true
		}
	}
	return false
}

// ParseBehavior converts s to a Behavior.
func ParseBehavior(s string) (Behavior, error) {
	b := Behavior(s)
	if !b.IsValid() {
		return "", fmt.Errorf("unknown behavior %q", s)
	}
	return b, nil
}

// Params holds the numbers the behaviors draw from.
type Params struct {
	Min    int
	Max    int
	Custom int
	Total  int // total width shared by BehaviorEven
	Metrics
}

// Apply computes the widths for keys under behavior b. Disabled yields
// empty sizes, which leaves a document untouched when patched. Fit-content
// and even results are clamped to [Min, Max].
func Apply(b Behavior, keys []string, p Params) (viewdoc.Sizes, error) {
	switch b {
	case BehaviorDisabled:
		return viewdoc.Sizes{}, nil
	case BehaviorMinWidth:
		return Uniform(keys, p.Min), nil
	case BehaviorMaxWidth:
		return Uniform(keys, p.Max), nil
	case BehaviorCustom:
		return Uniform(keys, p.Custom), nil
	case BehaviorFitContent:
		return Clamp(FitContent(keys, p.Metrics), p.Min, p.Max), nil
	case BehaviorEven:
		return Clamp(Even(p.Total, keys), p.Min, p.Max), nil
	default:
		return nil, fmt.Errorf("unknown behavior %q", b)
	}
}
