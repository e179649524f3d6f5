package followup

import "time"

// Record is one post-treatment check-in. Entries are append-only: once
// recorded they are never edited or deleted.
type Record struct {
	Date          time.Time      `json:"date"`
	Weight        float64        `json:"weight"`
	BloodPressure string         `json:"blood_pressure"`
	Temperature   float64        `json:"temperature"`
	SymptomLevels map[string]int `json:"symptom_levels"`
	EnergyLevel   string         `json:"energy_level"`
	Appetite      string         `json:"appetite"`
	Mobility      string         `json:"mobility"`
	SleepQuality  string         `json:"sleep_quality"`
	Mood          string         `json:"mood"`
	Notes         string         `json:"notes"`
}

type Reminder struct {
	Date time.Time `json:"date"`
	Note string    `json:"note"`
}

// Symptoms lists the trackable symptom names offered on the follow-up form.
var Symptoms = []string{
	"Pain", "Fatigue", "Nausea", "Fever", "Infection", "Bleeding",
	"Breathing Difficulties", "Sleep Issues", "Anxiety/Depression", "Loss of Appetite", "Diarrhea",
	"Constipation", "Skin Changes", "Memory Issues", "Numbness/Tingling", "Other Symptoms",
}

// Scales holds the canonical 5-point ordinal scale per qualitative metric.
// Chart ranks are 0-based indexes into these lists.
var Scales = map[string][]string{
	"energy_level":  {"Very Low", "Low", "Moderate", "Good", "Excellent"},
	"appetite":      {"Poor", "Fair", "Normal", "Good", "Excellent"},
	"mobility":      {"Bed-bound", "Limited", "With Assistance", "Independent", "Fully Active"},
	"sleep_quality": {"Very Poor", "Poor", "Fair", "Good", "Excellent"},
	"mood":          {"Very Low", "Low", "Neutral", "Good", "Excellent"},
}
