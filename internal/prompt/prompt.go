// Package prompt maps structured user input to the instruction strings sent
// to the completion endpoint. Builders are pure formatting; they validate
// nothing and touch no state.
package prompt

import (
	"fmt"
	"strings"
)

// PatientDetails is the structured form input used to build treatment-plan
// and support-recommendation prompts. It is cached per session for reuse.
type PatientDetails struct {
	Age              int      `json:"age"`
	Gender           string   `json:"gender"`
	CancerType       string   `json:"cancer_type"`
	Stage            string   `json:"stage"`
	CurrentTreatment []string `json:"current_treatment"`
	Symptoms         []string `json:"symptoms"`

	Comorbidities      []string `json:"comorbidities"`
	Allergies          string   `json:"allergies"`
	SmokingStatus      string   `json:"smoking_status"`
	CurrentMedications string   `json:"current_medications"`
	FamilyHistory      string   `json:"family_history"`
	AdditionalNotes    string   `json:"additional_notes"`
}

type MealPreferences struct {
	Allergies        []string `json:"allergies"`
	DietType         []string `json:"diet_type"`
	Budget           string   `json:"budget"`
	TastePreferences []string `json:"taste_preferences"`
	BatchCooking     bool     `json:"batch_cooking"`
	EasyPrep         bool     `json:"easy_prep"`
	Leftovers        bool     `json:"leftovers"`
}

func TreatmentPlan(p PatientDetails) string {
	return fmt.Sprintf(`Generate a comprehensive cancer treatment plan for a patient with the following characteristics:
- Age: %d
- Gender: %s
- Cancer Type: %s
- Stage: %s
- Current Treatment: %s
- Symptoms: %s
- Medical History: %s

Please provide a detailed treatment plan including:
1. Recommended treatment approach
2. Medication schedule
3. Lifestyle modifications
4. Follow-up schedule
5. Potential side effects and management strategies`,
		p.Age, p.Gender, p.CancerType, p.Stage,
		joinOrNone(p.CurrentTreatment), joinOrNone(p.Symptoms), medicalHistory(p))
}

func SupportRecommendations(p PatientDetails, symptoms []string) string {
	return fmt.Sprintf(`Provide comprehensive support recommendations for a cancer patient with:
- Current Treatment: %s
- Current Symptoms: %s

Include:
1. Physical symptom management strategies
2. Mental health support suggestions
3. Lifestyle and dietary recommendations
4. Support group and resource recommendations`,
		joinOrNone(p.CurrentTreatment), joinOrNone(symptoms))
}

func MealPlan(p MealPreferences) string {
	restrictions := "None"
	if len(p.Allergies) > 0 {
		restrictions = strings.Join(p.Allergies, ", ")
	}
	dietType := "Regular"
	if len(p.DietType) > 0 {
		dietType = strings.Join(p.DietType, ", ")
	}
	return fmt.Sprintf(`Create a 7-day cancer-friendly meal plan and grocery list with these specifications:
- Dietary Restrictions: %s
- Diet Type: %s
- Budget Level: %s
- Taste Preferences: %s

The meal plan should:
1. Focus on cancer-fighting foods and nutrients
2. Include breakfast, lunch, dinner, and two snacks for each day
3. Provide portion sizes and basic preparation instructions
4. Consider the specified budget level
5. Include foods known for their anti-inflammatory properties

Also generate a comprehensive grocery list organized by:
1. Produce (fruits and vegetables)
2. Proteins
3. Grains and starches
4. Pantry items
5. Herbs and spices

Format the response clearly with section headers and daily breakdowns.`,
		restrictions, dietType, p.Budget, strings.Join(p.TastePreferences, ", "))
}

func EmotionalSupport(message string) string {
	return fmt.Sprintf(`As a compassionate AI companion for someone affected by cancer, carefully consider this message:
"%s"

Provide a warm, empathetic response that:
1. Acknowledges their emotions with genuine understanding
2. Offers specific comfort based on their situation
3. Suggests a practical coping strategy
4. Includes relevant scientific insights when appropriate
5. Ends with words of encouragement

Keep the tone gentle, supportive, and hopeful.`, message)
}

func QuizInsight(topic string) string {
	return fmt.Sprintf(`Provide a brief, educational insight about %s in cancer awareness.
Focus on:
1. Recent research or statistics
2. Practical prevention tips
3. Common misconceptions
Keep the response concise and encouraging.`, topic)
}

func medicalHistory(p PatientDetails) string {
	parts := []string{
		"Conditions: " + joinOrNone(p.Comorbidities),
		"Allergies: " + orNone(p.Allergies),
		"Smoking Status: " + orNone(p.SmokingStatus),
		"Current Medications: " + orNone(p.CurrentMedications),
		"Family History: " + orNone(p.FamilyHistory),
		"Additional Notes: " + orNone(p.AdditionalNotes),
	}
	return strings.Join(parts, "; ")
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "None"
	}
	return strings.Join(values, ", ")
}

func orNone(v string) string {
	if strings.TrimSpace(v) == "" {
		return "None"
	}
	return v
}
