package model

// ObservationsResponse is the envelope the PWS API wraps around every
// observation endpoint, including the single-record current-conditions one.
type ObservationsResponse struct {
	Observations []Record `json:"observations"`
}

// SummariesResponse is the envelope returned by the daily-summary endpoint.
type SummariesResponse struct {
	Summaries []Record `json:"summaries"`
}
