package quiz

// Catalog returns the fixed cancer-awareness question bank. Quizzes draw a
// random subset from it; the bank itself is never mutated.
func Catalog() []Question {
	return catalog
}

var catalog = []Question{
	{
		Text: "Which of these is NOT a recommended cancer screening test?",
		Options: []string{
			"Mammogram for breast cancer",
			"Colonoscopy for colorectal cancer",
			"Blood pressure check for lung cancer",
			"PSA test for prostate cancer",
		},
		Correct:     2,
		Explanation: "Blood pressure checks are not used for cancer screening. Regular cancer screening tests include mammograms, colonoscopies, PSA tests, and low-dose CT scans for lung cancer in high-risk individuals.",
	},
	{
		Text: "What percentage of lung cancer cases are linked to smoking?",
		Options: []string{
			"About 50%",
			"About 60%",
			"About 80%",
			"About 90%",
		},
		Correct:     3,
		Explanation: "Approximately 90% of lung cancer cases are linked to smoking, making it the leading cause of preventable cancer deaths.",
	},
	{
		Text: "Which of these foods has been shown to have cancer-fighting properties?",
		Options: []string{
			"Processed meats",
			"Refined sugar",
			"Turmeric",
			"White bread",
		},
		Correct:     2,
		Explanation: "Turmeric contains curcumin, which has shown anti-inflammatory and potential anti-cancer properties in numerous studies.",
	},
	{
		Text: "What is the recommended age to begin regular mammogram screenings for women at average risk?",
		Options: []string{
			"30 years old",
			"40 years old",
			"50 years old",
			"60 years old",
		},
		Correct:     1,
		Explanation: "The American Cancer Society recommends women at average risk start mammogram screenings at age 40, though some may choose to start between ages 40-44. Women aged 45-54 should get mammograms every year.",
	},
	{
		Text: "Which of these lifestyle changes can help reduce cancer risk?",
		Options: []string{
			"Getting regular exercise",
			"Maintaining a healthy weight",
			"Avoiding tobacco",
			"All of the above",
		},
		Correct:     3,
		Explanation: "All these lifestyle changes can help reduce cancer risk. Regular exercise, maintaining a healthy weight, and avoiding tobacco are key preventive measures recommended by health organizations.",
	},
	{
		Text: "What is immunotherapy in cancer treatment?",
		Options: []string{
			"A type of radiation therapy",
			"Treatment that helps the immune system fight cancer",
			"A surgical procedure",
			"A vitamin supplement regimen",
		},
		Correct:     1,
		Explanation: "Immunotherapy is a type of cancer treatment that helps your immune system fight cancer. It works by boosting or changing how your immune system works to better find and destroy cancer cells.",
	},
	{
		Text: "Which cancer has the highest survival rate when detected early?",
		Options: []string{
			"Lung cancer",
			"Pancreatic cancer",
			"Thyroid cancer",
			"Liver cancer",
		},
		Correct:     2,
		Explanation: "Thyroid cancer generally has one of the highest survival rates when detected early, with a 5-year survival rate of over 98% for localized thyroid cancer.",
	},
	{
		Text: "How often should adults get a colonoscopy screening (average risk)?",
		Options: []string{
			"Every year",
			"Every 5 years",
			"Every 10 years",
			"Every 15 years",
		},
		Correct:     2,
		Explanation: "For people at average risk, colonoscopy screening is recommended every 10 years starting at age 45. Those with higher risk factors may need more frequent screenings.",
	},
	{
		Text: "Which of these is a warning sign of skin cancer?",
		Options: []string{
			"A mole that changes in size or color",
			"A temporary rash",
			"Dry skin",
			"Freckles",
		},
		Correct:     0,
		Explanation: "Changes in moles, including size, color, or shape, are important warning signs of skin cancer. The ABCDE rule (Asymmetry, Border, Color, Diameter, Evolving) helps identify suspicious moles.",
	},
	{
		Text: "What percentage of cancers are estimated to be preventable through lifestyle changes?",
		Options: []string{
			"About 10%",
			"About 30%",
			"About 40%",
			"About 50%",
		},
		Correct:     3,
		Explanation: "According to the World Health Organization, about 50% of all cancers are preventable through lifestyle changes such as healthy diet, regular exercise, avoiding tobacco, and limiting alcohol consumption.",
	},
	{
		Text: "Which vitamin is important for reducing cancer risk and is primarily obtained through sun exposure?",
		Options: []string{
			"Vitamin A",
			"Vitamin B12",
			"Vitamin C",
			"Vitamin D",
		},
		Correct:     3,
		Explanation: "Vitamin D, primarily obtained through sun exposure, has been linked to reduced risk of several cancers. Many people need supplements to maintain adequate levels, especially in less sunny climates.",
	},
	{
		Text: "What is metastasis in cancer?",
		Options: []string{
			"Initial tumor formation",
			"Cancer cell death",
			"Spread of cancer to other parts of the body",
			"Cancer treatment method",
		},
		Correct:     2,
		Explanation: "Metastasis occurs when cancer cells spread from their original location to other parts of the body through the bloodstream or lymphatic system, forming secondary tumors.",
	},
	{
		Text: "Which of these foods is associated with increased cancer risk?",
		Options: []string{
			"Processed meats",
			"Fresh vegetables",
			"Whole grains",
			"Fish",
		},
		Correct:     0,
		Explanation: "Processed meats (like bacon, hot dogs, and deli meats) have been classified as Group 1 carcinogens by the World Health Organization, meaning there is strong evidence they can cause cancer.",
	},
	{
		Text: "Which virus is a major cause of cervical cancer and is preventable by vaccination?",
		Options: []string{
			"Influenza virus",
			"Human papillomavirus (HPV)",
			"Hepatitis A virus",
			"Rhinovirus",
		},
		Correct:     1,
		Explanation: "HPV causes the vast majority of cervical cancers as well as some head, neck, and anal cancers. HPV vaccination is recommended starting at ages 11-12 and can prevent most of these cancers.",
	},
	{
		Text: "What minimum SPF is generally recommended for daily sun protection to reduce skin cancer risk?",
		Options: []string{
			"SPF 5",
			"SPF 10",
			"SPF 15",
			"SPF 30",
		},
		Correct:     3,
		Explanation: "Dermatology organizations recommend broad-spectrum sunscreen with SPF 30 or higher for effective protection against the UV radiation that drives most skin cancers.",
	},
	{
		Text: "Which of these factors is linked to an increased risk of at least 13 types of cancer?",
		Options: []string{
			"Obesity",
			"Drinking green tea",
			"Moderate exercise",
			"A diet high in fiber",
		},
		Correct:     0,
		Explanation: "Excess body weight is associated with an increased risk of at least 13 cancers, including breast, colorectal, kidney, and pancreatic cancer. Maintaining a healthy weight is a key prevention measure.",
	},
	{
		Text: "What is a biopsy?",
		Options: []string{
			"An imaging scan of the whole body",
			"Removal of a tissue sample for examination",
			"A type of chemotherapy",
			"A blood pressure measurement",
		},
		Correct:     1,
		Explanation: "A biopsy removes a small sample of tissue so it can be examined under a microscope. It is the definitive way to diagnose most cancers.",
	},
	{
		Text: "Mutations in which genes are strongly associated with hereditary breast and ovarian cancer?",
		Options: []string{
			"BRCA1 and BRCA2",
			"HLA-A and HLA-B",
			"ACE and ACE2",
			"CFTR and HBB",
		},
		Correct:     0,
		Explanation: "Inherited mutations in BRCA1 and BRCA2 substantially raise the lifetime risk of breast and ovarian cancer. Genetic counseling and testing are recommended for people with a strong family history.",
	},
	{
		Text: "Which naturally occurring radioactive gas is the second leading cause of lung cancer?",
		Options: []string{
			"Carbon monoxide",
			"Radon",
			"Ozone",
			"Nitrogen dioxide",
		},
		Correct:     1,
		Explanation: "Radon, a colorless and odorless gas that can accumulate in homes, is the second leading cause of lung cancer after smoking. Home radon testing kits are inexpensive and widely available.",
	},
	{
		Text: "How does alcohol consumption relate to cancer risk?",
		Options: []string{
			"It has no effect on cancer risk",
			"Only heavy drinking carries any risk",
			"Even moderate drinking raises the risk of several cancers",
			"It reduces cancer risk",
		},
		Correct:     2,
		Explanation: "Alcohol is a known carcinogen. Even moderate consumption raises the risk of cancers of the breast, liver, esophagus, and colon, and the risk increases with the amount consumed.",
	},
}
