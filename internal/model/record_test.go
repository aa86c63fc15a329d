package model

import (
	"reflect"
	"testing"
)

func TestFlattenImperial(t *testing.T) {
	rec := Record{
		"obsTimeUtc": "2024-01-03T12:00:00Z",
		"imperial":   map[string]any{"temp": 72.0},
	}

	got := rec.Flatten()

	want := Record{
		"obsTimeUtc": "2024-01-03T12:00:00Z",
		"temp":       72.0,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestFlattenMetric(t *testing.T) {
	rec := Record{
		"stationID": "KCASANFR70",
		"metric": map[string]any{
			"tempAvg":     21.5,
			"precipTotal": 0.4,
		},
	}

	rec.Flatten()

	if _, ok := rec["metric"]; ok {
		t.Error("Expected metric key to be removed")
	}
	if rec["tempAvg"] != 21.5 {
		t.Errorf("Expected tempAvg 21.5, got %v", rec["tempAvg"])
	}
	if rec["precipTotal"] != 0.4 {
		t.Errorf("Expected precipTotal 0.4, got %v", rec["precipTotal"])
	}
	if rec["stationID"] != "KCASANFR70" {
		t.Errorf("Expected stationID unchanged, got %v", rec["stationID"])
	}
}

func TestFlattenUKHybrid(t *testing.T) {
	rec := Record{
		"uk_hybrid": map[string]any{"pressureMax": 1013.2},
	}

	rec.Flatten()

	if _, ok := rec["uk_hybrid"]; ok {
		t.Error("Expected uk_hybrid key to be removed")
	}
	if rec["pressureMax"] != 1013.2 {
		t.Errorf("Expected pressureMax 1013.2, got %v", rec["pressureMax"])
	}
}

func TestFlattenNoUnitBlock(t *testing.T) {
	rec := Record{
		"obsTimeUtc": "2024-01-03T12:00:00Z",
		"humidity":   55.0,
	}

	want := Record{
		"obsTimeUtc": "2024-01-03T12:00:00Z",
		"humidity":   55.0,
	}
	if got := rec.Flatten(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected record unchanged, got %v", got)
	}
}

func TestFlattenIdempotent(t *testing.T) {
	rec := Record{
		"obsTimeUtc": "2024-01-03T12:00:00Z",
		"imperial":   map[string]any{"temp": 72.0, "windSpeed": 5.0},
	}

	once := rec.Flatten()
	snapshot := make(Record, len(once))
	for k, v := range once {
		snapshot[k] = v
	}

	twice := once.Flatten()
	if !reflect.DeepEqual(twice, snapshot) {
		t.Errorf("Expected second flatten to be a no-op, got %v", twice)
	}
}

func TestFlattenFirstMatchWins(t *testing.T) {
	// The API only ever sends one unit block; if more than one shows up,
	// imperial takes priority and the rest stay nested.
	rec := Record{
		"imperial": map[string]any{"temp": 72.0},
		"metric":   map[string]any{"temp": 22.2},
	}

	rec.Flatten()

	if rec["temp"] != 72.0 {
		t.Errorf("Expected imperial temp 72.0, got %v", rec["temp"])
	}
	if _, ok := rec["metric"]; !ok {
		t.Error("Expected metric block to remain nested")
	}
}

func TestFlattenAll(t *testing.T) {
	records := []Record{
		{"imperial": map[string]any{"temp": 70.0}},
		{"imperial": map[string]any{"temp": 68.0}},
	}

	FlattenAll(records)

	for i, rec := range records {
		if _, ok := rec["imperial"]; ok {
			t.Errorf("Expected record %d to be flattened", i)
		}
		if _, ok := rec["temp"]; !ok {
			t.Errorf("Expected record %d to have top-level temp", i)
		}
	}
}
