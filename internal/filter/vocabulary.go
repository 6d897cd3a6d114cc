package filter

import "blinds/storefront/internal/domain"

// Option is one UI-facing value of a filter axis.
type Option struct {
	Label string
	Value string
	Hex   string
	Tags  []string
}

// Vocabulary is the closed set of values accepted for one axis.
type Vocabulary struct {
	Axis    domain.FilterAxis
	Options []Option
	// Displayed axes get a section in the filter panel.
	Displayed bool
}

// Vocabularies holds every axis, in domain.FilterAxes order. Only pattern and color
// currently resolve to backend tags.
var Vocabularies = []Vocabulary{
	{
		Axis:      domain.FilterAxisPattern,
		Displayed: true,
		Options: []Option{
			{Label: "Abstract", Value: "abstract", Tags: []string{"abstract"}},
			{Label: "Animal", Value: "animal", Tags: []string{"animal", "animal-print"}},
			{Label: "Geometric", Value: "geometric", Tags: []string{"geometric"}},
			{Label: "Striped", Value: "striped", Tags: []string{"striped", "stripes"}},
			{Label: "Medium Wood", Value: "medium-wood", Tags: []string{"medium-wood", "wood-effect"}},
			{Label: "Light Wood", Value: "light-wood", Tags: []string{"light-wood", "wood-effect"}},
		},
	},
	{
		Axis:      domain.FilterAxisColor,
		Displayed: true,
		Options: []Option{
			{Label: "Black", Value: "black", Hex: "#000000", Tags: []string{"black"}},
			{Label: "White", Value: "white", Hex: "#FFFFFF", Tags: []string{"white", "off-white"}},
			{Label: "Blue", Value: "blue", Hex: "#3B82F6", Tags: []string{"blue", "navy"}},
			{Label: "Yellow", Value: "yellow", Hex: "#FCD34D", Tags: []string{"yellow"}},
			{Label: "Gold", Value: "gold", Hex: "#D97706", Tags: []string{"gold", "mustard"}},
			{Label: "Grey", Value: "grey", Hex: "#6B7280", Tags: []string{"grey", "gray", "silver"}},
			{Label: "Green", Value: "green", Hex: "#10B981", Tags: []string{"green"}},
			{Label: "Orange", Value: "orange", Hex: "#F97316", Tags: []string{"orange"}},
			{Label: "Red", Value: "red", Hex: "#EF4444", Tags: []string{"red"}},
			{Label: "Pink", Value: "pink", Hex: "#EC4899", Tags: []string{"pink"}},
		},
	},
	{
		Axis: domain.FilterAxisWindow,
		Options: []Option{
			{Label: "Standard Window", Value: "standard"},
			{Label: "Bay Window", Value: "bay"},
			{Label: "Skylight", Value: "skylight"},
			{Label: "French Doors", Value: "french-doors"},
			{Label: "Patio Doors", Value: "patio-doors"},
		},
	},
	{
		Axis: domain.FilterAxisRoom,
		Options: []Option{
			{Label: "Living Room", Value: "living-room"},
			{Label: "Bedroom", Value: "bedroom"},
			{Label: "Kitchen", Value: "kitchen"},
			{Label: "Bathroom", Value: "bathroom"},
			{Label: "Office", Value: "office"},
			{Label: "Conservatory", Value: "conservatory"},
			{Label: "Nursery", Value: "nursery"},
		},
	},
	{
		Axis: domain.FilterAxisSolution,
		Options: []Option{
			{Label: "Blackout", Value: "blackout"},
			{Label: "Thermal", Value: "thermal"},
			{Label: "Waterproof", Value: "waterproof"},
			{Label: "Child Safe", Value: "child-safe"},
			{Label: "Motorised", Value: "motorised"},
		},
	},
}

// VocabularyFor returns the vocabulary of axis.
func VocabularyFor(axis domain.FilterAxis) (Vocabulary, bool) {
	for _, v := range Vocabularies {
		if v.Axis == axis {
			return v, true
		}
	}
	return Vocabulary{}, false
}
