package home

// skill is one key skill of the role.
type skill struct {
	Title       string
	Description string
}

// panel is one tab of role information on the landing screen.
type panel struct {
	Title string
	Intro string
	Items []string
}

const (
	headline = "Should I Become a Cold Chain Specialist?"
	tagline  = "Discover if you have the skills, personality, and motivation to excel in cold chain logistics."
	footnote = "Free assessment • Instant results • No registration required"
)

var keySkills = []skill{
	{"Temperature Management", "Monitor and maintain optimal temperature ranges for sensitive products"},
	{"Regulatory Compliance", "Ensure adherence to FDA, WHO, and industry safety standards"},
	{"Data Analysis", "Analyze supply chain data to optimize cold chain performance"},
	{"Process Coordination", "Collaborate with teams to ensure seamless cold chain operations"},
}

var careerPaths = []string{
	"Cold Chain Manager",
	"Logistics Coordinator – Temperature Controlled Goods",
	"Quality Assurance Specialist (Cold Chain)",
	"Pharmaceutical Cold Chain Technician",
	"Supply Chain Compliance Analyst",
}

var successTraits = []string{
	"Strong attention to detail",
	"Analytical thinking and problem-solving",
	"High reliability and responsibility",
	"Technology comfort",
	"Crisis management under pressure",
}

var assessmentFeatures = []string{
	"Psychometric personality and motivation assessment",
	"Technical knowledge and aptitude evaluation",
	"WISCAR framework analysis (Will, Interest, Skill, Cognitive, Ability to learn, Real-world alignment)",
	"Personalized career recommendations and learning paths",
}

func skillItems() []string {
	items := make([]string, 0, len(keySkills))
	for _, s := range keySkills {
		items = append(items, s.Title+": "+s.Description)
	}
	return items
}

// panels returns the landing tabs in display order.
func panels() []panel {
	return []panel{
		{
			Title: "The Role",
			Intro: "A Cold Chain Specialist manages the refrigerated supply chain, ensuring perishable products " +
				"like food, pharmaceuticals, and vaccines are stored and transported at optimal temperatures " +
				"to maintain quality, safety, and regulatory compliance throughout the entire supply chain.",
			Items: skillItems(),
		},
		{
			Title: "Careers",
			Intro: "Typical career paths:",
			Items: careerPaths,
		},
		{
			Title: "Traits",
			Intro: "Key success traits:",
			Items: successTraits,
		},
		{
			Title: "Assessment",
			Intro: "The assessment evaluates multiple dimensions to give you accurate insights into your career fit.",
			Items: assessmentFeatures,
		},
	}
}
