package domain

// FilterAxis is one of the independent filter dimensions exposed on collection pages.
type FilterAxis string

func (a FilterAxis) String() string {
	return string(a)
}

const (
	FilterAxisPattern  FilterAxis = "pattern"
	FilterAxisColor    FilterAxis = "color"
	FilterAxisWindow   FilterAxis = "window"
	FilterAxisRoom     FilterAxis = "room"
	FilterAxisSolution FilterAxis = "solution"
)

// FilterAxes lists every axis in the order tags are resolved.
var FilterAxes = []FilterAxis{
	FilterAxisPattern,
	FilterAxisColor,
	FilterAxisWindow,
	FilterAxisRoom,
	FilterAxisSolution,
}

func (a FilterAxis) Label() string {
	switch a {
	case FilterAxisPattern:
		return "Pattern"
	case FilterAxisColor:
		return "Color"
	case FilterAxisWindow:
		return "Window"
	case FilterAxisRoom:
		return "Room"
	case FilterAxisSolution:
		return "Solution"
	default:
		return "Unknown"
	}
}

// Filters holds at most one selected value per axis.
type Filters map[FilterAxis]string

func (f Filters) Get(axis FilterAxis) string {
	if f == nil {
		return ""
	}
	return f[axis]
}

// Active reports whether any axis has a selected value.
func (f Filters) Active() bool {
	for _, v := range f {
		if v != "" {
			return true
		}
	}
	return false
}
