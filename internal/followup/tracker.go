package followup

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrMalformedBloodPressure is returned when a blood-pressure string does
	// not parse as "sys/dia" within physiological bounds.
	ErrMalformedBloodPressure = errors.New("followup: malformed blood pressure")

	// ErrUnknownMetric is returned for a metric name without a canonical scale.
	ErrUnknownMetric = errors.New("followup: unknown metric")

	// ErrUnknownCategory is returned when a stored value is not in the
	// canonical scale for its metric.
	ErrUnknownCategory = errors.New("followup: unknown category")
)

// History is the append-only follow-up log owned by one session.
type History struct {
	records []Record
}

// Append stores a record. Symptoms at severity zero are dropped so that
// derived series never contain padded zeroes; everything else is stored as
// given, including blood-pressure strings that fail to parse (they are kept
// for audit and skipped by VitalsSeries).
func (h *History) Append(r Record) {
	levels := make(map[string]int, len(r.SymptomLevels))
	for symptom, severity := range r.SymptomLevels {
		if severity > 0 {
			levels[symptom] = severity
		}
	}
	r.SymptomLevels = levels
	h.records = append(h.records, r)
}

// Records returns the history in insertion order.
func (h *History) Records() []Record {
	out := make([]Record, len(h.records))
	copy(out, h.records)
	return out
}

func (h *History) Len() int { return len(h.records) }

// Point is one charted value.
type Point struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// BPPoint is one valid blood-pressure reading.
type BPPoint struct {
	Date      time.Time `json:"date"`
	Systolic  int       `json:"systolic"`
	Diastolic int       `json:"diastolic"`
}

// ParseBloodPressure parses a "sys/dia" string and checks the values fall in
// systolic [60,200] and diastolic [40,130].
func ParseBloodPressure(s string) (sys, dia int, err error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedBloodPressure, s)
	}
	sys, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedBloodPressure, s)
	}
	dia, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedBloodPressure, s)
	}
	if sys < 60 || sys > 200 || dia < 40 || dia > 130 {
		return 0, 0, fmt.Errorf("%w: %d/%d out of range", ErrMalformedBloodPressure, sys, dia)
	}
	return sys, dia, nil
}

// SymptomSeries derives a (date, severity) series per symptom, covering only
// the records where that symptom was present. Records without a given symptom
// contribute nothing to its series; absences are never interpolated to zero.
func SymptomSeries(records []Record) map[string][]Point {
	series := make(map[string][]Point)
	for _, r := range records {
		for symptom, severity := range r.SymptomLevels {
			series[symptom] = append(series[symptom], Point{Date: r.Date, Value: float64(severity)})
		}
	}
	return series
}

// VitalsSeries derives weight and temperature series with one point per
// record, and a blood-pressure series containing only records with a valid
// "sys/dia" string. Invalid readings are skipped, not zero-filled.
func VitalsSeries(records []Record) (weight, temperature []Point, bloodPressure []BPPoint) {
	for _, r := range records {
		weight = append(weight, Point{Date: r.Date, Value: r.Weight})
		temperature = append(temperature, Point{Date: r.Date, Value: r.Temperature})
		if sys, dia, err := ParseBloodPressure(r.BloodPressure); err == nil {
			bloodPressure = append(bloodPressure, BPPoint{Date: r.Date, Systolic: sys, Diastolic: dia})
		}
	}
	return weight, temperature, bloodPressure
}

// OrdinalSeries maps each record's categorical value for the given metric
// through its canonical scale to a 0-based rank.
func OrdinalSeries(records []Record, metric string) ([]Point, error) {
	scale, ok := Scales[metric]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}
	var series []Point
	for _, r := range records {
		value, err := metricValue(r, metric)
		if err != nil {
			return nil, err
		}
		rank := indexOf(scale, value)
		if rank < 0 {
			return nil, fmt.Errorf("%w: %q for metric %q", ErrUnknownCategory, value, metric)
		}
		series = append(series, Point{Date: r.Date, Value: float64(rank)})
	}
	return series, nil
}

func metricValue(r Record, metric string) (string, error) {
	switch metric {
	case "energy_level":
		return r.EnergyLevel, nil
	case "appetite":
		return r.Appetite, nil
	case "mobility":
		return r.Mobility, nil
	case "sleep_quality":
		return r.SleepQuality, nil
	case "mood":
		return r.Mood, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}
}

func indexOf(values []string, target string) int {
	for i, v := range values {
		if v == target {
			return i
		}
	}
	return -1
}
