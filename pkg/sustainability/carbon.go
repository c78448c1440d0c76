package sustainability

// CarbonFootprint calculates greenhouse gas emissions from a measured
// activity level and its emission factor.
//
// Formula:
//
//	Emissions = Activity Data × Emission Factor
func CarbonFootprint(activityData, emissionFactor float64) float64 {
	return activityData * emissionFactor
}
