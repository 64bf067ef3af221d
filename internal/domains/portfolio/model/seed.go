package model

// SeedDocument returns the bundled default portfolio. It is served on first
// run and whenever the persisted blob is missing or unreadable; every
// mutation overwrites it in storage.
func SeedDocument() *PortfolioDocument {
	return &PortfolioDocument{
		Profile: Profile{
			Name:     "Dr. Imene Ahmed Omar, MD",
			Title:    "Consultant Physician & Clinical Researcher",
			Summary:  "Dedicated medical professional with over 8 years of experience in clinical practice and health systems research. Specializing in internal medicine with a strong focus on leveraging technology to improve patient outcomes and healthcare delivery in resource-constrained environments.",
			Email:    "dr.imene.ahmed@example.com",
			LinkedIn: "linkedin.com/in/dr-imene-ahmed-omar",
			Website:  "imene-medical.org",
		},
		SkillsSummary: "Extensive expertise in clinical diagnostics and patient management within complex hospital settings. Proven ability to bridge the gap between traditional medicine and digital health solutions. Highly skilled in medical research methodology, data interpretation, and clinical trial coordination.",
		Experience: []Experience{
			{
				ID:           "1",
				Title:        "Senior Consultant Physician",
				Organization: "General Medical Center - Department of Internal Medicine",
				Duration:     "2021 - Present",
				Description:  "Leading a multidisciplinary team of 15 healthcare professionals. Overseeing inpatient care protocols and implementing digital health records to reduce diagnostic errors by 20%.",
			},
			{
				ID:           "2",
				Title:        "Clinical Research Fellow",
				Organization: "Institute of Global Health & Epidemiology",
				Duration:     "2018 - 2021",
				Description:  "Coordinated phase III clinical trials for novel anti-hypertensive treatments. Analyzed patient data from a cohort of 2,000+ individuals, leading to a breakthrough publication in the Lancet.",
			},
		},
		Certifications: []Certification{
			{
				ID:       "c1",
				Title:    "Board Certified in Internal Medicine",
				Issuer:   "American Board of Internal Medicine",
				Year:     "2019",
				ImageURL: "https://images.unsplash.com/photo-1576091160550-2173dba999ef?auto=format&fit=crop&q=80&w=400",
			},
			{
				ID:       "c2",
				Title:    "Advanced Cardiac Life Support (ACLS)",
				Issuer:   "American Heart Association",
				Year:     "2023",
				ImageURL: "https://images.unsplash.com/photo-1505751172177-51ad0c91ad13?auto=format&fit=crop&q=80&w=400",
			},
		},
		Courses: []Course{
			{
				ID:          "cr1",
				Title:       "Epidemiology in Public Health Practice",
				Institution: "Johns Hopkins University",
				Year:        "2022",
				ImageURL:    "https://images.unsplash.com/photo-1532938911079-1b06ac7ceec7?auto=format&fit=crop&q=80&w=400",
			},
			{
				ID:          "cr2",
				Title:       "Medical Data Science & AI",
				Institution: "Stanford Online",
				Year:        "2021",
			},
		},
		Projects: []Project{
			{
				ID:           "p1",
				Title:        "Tele-Health Community Outreach",
				Description:  "A mobile-first platform providing remote consultations for rural communities, facilitating over 5,000 digital appointments annually.",
				Technologies: []string{"React Native", "WebRTC", "HIPAA Compliant Cloud"},
				Link:         "https://community-health-demo.com",
			},
			{
				ID:           "p2",
				Title:        "Digital Triage Algorithm",
				Description:  "Developed an AI-driven symptom checker for ER waiting rooms to prioritize urgent cases based on vital sign inputs.",
				Technologies: []string{"Python", "TensorFlow", "IoT Sensors"},
				Link:         "https://github.com/imene-md/triage-ai",
			},
		},
		Research: []Research{
			{
				ID:    "r1",
				Title: "Impact of Digital Health Interventions on Chronic Disease Management",
				Field: "Clinical Informatics",
				Year:  "2023",
				Link:  "https://pubmed.ncbi.nlm.nih.gov/example",
			},
		},
		Skills: []Skill{
			{ID: "s1", Name: "Internal Medicine", Category: "Clinical"},
			{ID: "s2", Name: "Diagnosis & Treatment", Category: "Clinical"},
			{ID: "s3", Name: "Epidemiology", Category: "Research"},
			{ID: "s4", Name: "Data Analysis (SPSS/R)", Category: "Research"},
			{ID: "s5", Name: "Telemedicine Systems", Category: "Technology"},
			{ID: "s6", Name: "Electronic Health Records (EHR)", Category: "Technology"},
		},
	}
}
