package support

type tool struct {
	Name  string   `json:"name"`
	Title string   `json:"title"`
	Steps []string `json:"steps"`
	Note  string   `json:"note"`
}

var supportTools = []tool{
	{
		Name:  "breathing_exercise",
		Title: "4-7-8 Breathing Technique",
		Steps: []string{
			"Find a comfortable position",
			"Inhale quietly through your nose for 4 counts",
			"Hold your breath for 7 counts",
			"Exhale completely through your mouth for 8 counts",
			"Repeat 4 times",
		},
		Note: "This technique helps reduce anxiety and promote relaxation.",
	},
	{
		Name:  "guided_relaxation",
		Title: "Progressive Relaxation",
		Steps: []string{
			"Start with your toes, tense them for 5 seconds",
			"Release and notice the relaxation",
			"Move to your feet, then ankles",
			"Continue up through your body",
			"End with your face and head",
		},
		Note: "Take 10-15 minutes to complete this exercise.",
	},
	{
		Name:  "positive_affirmations",
		Title: "Daily Affirmations",
		Steps: []string{
			"I am stronger than I know",
			"Each day brings new healing",
			"I am surrounded by support",
			"My body knows how to heal",
			"I choose hope and healing",
		},
		Note: "Repeat these affirmations throughout your day.",
	},
}
