package scoring

// ProximityRule awards points for having a category of amenity within reach
// of the territory centroid: full points inside Near meters, reduced points
// inside Far meters. Comparisons are strict (an amenity at exactly Near
// meters earns only the Far bonus).
type ProximityRule struct {
	Category string
	Near     float64
	NearPts  float64
	Far      float64
	FarPts   float64
}

// ServiceRule awards AccessibilityConfig points for a service category:
// full points when the nearest amenity is closer than Threshold meters, half
// points (fractional, not rounded) when closer than twice the threshold.
type ServiceRule struct {
	Category  string
	Threshold float64
	Points    float64
}

// Tier maps a count or density strictly above Min to a bonus. Tiers are
// evaluated in order; the first match wins, so list them highest first.
type Tier struct {
	Min   float64
	Bonus float64
}

// SafetyConfig drives the safety sub-score.
type SafetyConfig struct {
	Base  float64
	Rules []ProximityRule
}

// EfficiencyConfig drives the efficiency sub-score.
type EfficiencyConfig struct {
	Base               float64
	DensityTiers       []Tier // roads per km²
	BusStationBonus    float64
	ParkingTiers       []Tier
	CommerceCategories []string
	CommerceTiers      []Tier
}

// AccessibilityConfig drives the accessibility sub-score.
type AccessibilityConfig struct {
	Base     float64
	Services []ServiceRule
}

// EnvironmentalConfig drives the environmental sub-score.
type EnvironmentalConfig struct {
	Base            float64
	GreenCategories []string
	GreenTiers      []Tier
}

// RecommendationConfig drives recommendation generation. Each sub-score
// below Threshold fires its message, in the fixed order safety, efficiency,
// accessibility, environmental. MissingCategories are the service categories
// reported by name when accessibility is low and they have no amenities.
type RecommendationConfig struct {
	Threshold         float64
	MissingCategories []string
}

// Config centralizes every threshold and point table used by the scorers, so
// tests can exercise branches directly and recommendation text stays
// localizable in one place.
type Config struct {
	Safety         SafetyConfig
	Efficiency     EfficiencyConfig
	Accessibility  AccessibilityConfig
	Environmental  EnvironmentalConfig
	Recommendation RecommendationConfig
}

// DefaultConfig returns the reference scoring tables.
func DefaultConfig() Config {
	return Config{
		Safety: SafetyConfig{
			Base: 50,
			Rules: []ProximityRule{
				{Category: "police", Near: 2000, NearPts: 20, Far: 5000, FarPts: 10},
				{Category: "fire_station", Near: 3000, NearPts: 15, Far: 7000, FarPts: 7},
				{Category: "hospital", Near: 3000, NearPts: 15, Far: 5000, FarPts: 10},
			},
		},
		Efficiency: EfficiencyConfig{
			Base: 40,
			DensityTiers: []Tier{
				{Min: 10, Bonus: 20},
				{Min: 5, Bonus: 15},
				{Min: 2, Bonus: 10},
			},
			BusStationBonus: 15,
			ParkingTiers: []Tier{
				{Min: 2, Bonus: 10},
				{Min: 0, Bonus: 5},
			},
			CommerceCategories: []string{"restaurant", "cafe", "bank"},
			CommerceTiers: []Tier{
				{Min: 10, Bonus: 15},
				{Min: 5, Bonus: 10},
			},
		},
		Accessibility: AccessibilityConfig{
			Base: 30,
			Services: []ServiceRule{
				{Category: "school", Threshold: 1000, Points: 20},
				{Category: "hospital", Threshold: 3000, Points: 15},
				{Category: "pharmacy", Threshold: 500, Points: 10},
				{Category: "park", Threshold: 1000, Points: 10},
				{Category: "post_office", Threshold: 2000, Points: 5},
				{Category: "library", Threshold: 2000, Points: 5},
			},
		},
		Environmental: EnvironmentalConfig{
			Base:            50,
			GreenCategories: []string{"park", "playground"},
			GreenTiers: []Tier{
				{Min: 5, Bonus: 25},
				{Min: 2, Bonus: 15},
				{Min: 0, Bonus: 10},
			},
		},
		Recommendation: RecommendationConfig{
			Threshold:         60,
			MissingCategories: []string{"school", "hospital", "park"},
		},
	}
}
