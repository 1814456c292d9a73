package entities

// WaterClassification follows the IICRC S500 category/class scheme.
//
// Category 1 is clean water, 3 is black water. Class 1-4 grades the extent
// of saturation. Category 3 or class 4 forces demolition and mitigation
// companions regardless of the usual area thresholds.

type WaterClassification struct {
	Category           int    `json:"category"`    // 1-3
	WaterClass         int    `json:"water_class"` // 1-4
	ContaminationLevel string `json:"contamination_level,omitempty"`
	DryingPossible     bool   `json:"drying_possible"`
}

// ForcesFullMitigation reports whether the classification overrides area
// thresholds for demolition/mitigation companions.
func (w WaterClassification) ForcesFullMitigation() bool {
	return w.Category >= 3 || w.WaterClass >= 4
}
