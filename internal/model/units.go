package model

// Units is the single-letter code for the measurement system requested
// from the API. It decides which nested unit-system object each record
// carries (imperial, metric or uk_hybrid).
type Units string

const (
	UnitsImperial Units = "e"
	UnitsEnglish  Units = "e"
	UnitsMetric   Units = "m"
	UnitsHybrid   Units = "h"
	UnitsUK       Units = "h"
)
