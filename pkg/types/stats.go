package types

type ImpactStat struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
	Icon  string  `json:"icon,omitempty"`
}

type EducationImpact struct {
	ImpactStats []ImpactStat `json:"impact_stats"`
}

// PlatformMetrics is returned as a free-form dictionary.
type PlatformMetrics = Object
