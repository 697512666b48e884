package domain

import "time"

// Assessment is the computed livability scorecard for one territory. All
// score fields are in [0, 100] and rounded to two decimal places. Exactly one
// assessment exists per territory; recomputing overwrites the prior value.
type Assessment struct {
	ID                 string    `json:"id"`
	TerritoryID        string    `json:"territory_id"`
	SafetyScore        float64   `json:"safety_score"`
	EfficiencyScore    float64   `json:"efficiency_score"`
	AccessibilityScore float64   `json:"accessibility_score"`
	EnvironmentalScore float64   `json:"environmental_score"`
	OverallScore       float64   `json:"overall_score"`
	Recommendations    string    `json:"recommendations"`
	Metrics            Metrics   `json:"metrics"`
	CreatedAt          time.Time `json:"created_at"`
}

// Metrics is the raw-count snapshot the scores were derived from.
type Metrics struct {
	AmenitiesCount map[string]int `json:"amenities_count"`
	RoadsCount     int            `json:"roads_count"`
}
