package services

// Fixed vocabularies used by the full-text fallback scans. These are
// read-only tables; nothing in the engine mutates them.

var skillsVocabulary = []string{
	// Programming languages
	"python", "java", "javascript", "typescript", "golang", "c++", "c#",
	"php", "ruby", "swift", "kotlin", "scala", "rust", "perl", "r",
	// Web and frameworks
	"django", "flask", "spring", "react", "angular", "vue", "node.js",
	"laravel", "rails", "express", "html", "css", "sass", "bootstrap",
	"jquery", "rest api", "graphql",
	// Data and storage
	"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch",
	"oracle", "sqlite", "cassandra", "kafka", "rabbitmq", "spark",
	"hadoop", "etl", "data analysis", "data science", "machine learning",
	"deep learning", "nlp", "pandas", "numpy", "tensorflow", "pytorch",
	"tableau", "power bi", "excel",
	// Infrastructure
	"docker", "kubernetes", "aws", "azure", "gcp", "terraform", "ansible",
	"jenkins", "git", "linux", "bash", "nginx", "ci/cd", "devops",
	"microservices", "cloud computing",
	// Engineering and industry
	"autocad", "solidworks", "matlab", "labview", "plc", "cad",
	"lean manufacturing", "six sigma", "quality assurance", "logistics",
	"supply chain", "procurement", "accounting", "bookkeeping",
	"financial analysis", "budgeting", "auditing", "seo", "sem",
	"digital marketing", "content marketing", "social media",
	"copywriting", "customer service", "sales", "crm", "salesforce",
	// Soft skills
	"leadership", "communication", "teamwork", "problem solving",
	"time management", "project management", "critical thinking",
	"negotiation", "presentation", "public speaking", "mentoring",
	"adaptability", "creativity", "collaboration",
}

// contextSkills are terms that rarely get a dedicated section but commonly
// appear in running text.
var contextSkills = []string{
	"agile", "scrum", "kanban", "jira", "confluence", "unit testing",
	"code review", "design patterns", "oop", "tdd", "debugging",
	"research", "reporting", "forecasting", "stakeholder management",
	"business development", "event planning", "recruiting", "training",
}

var interestsVocabulary = []string{
	"reading", "travel", "traveling", "photography", "music", "sports",
	"football", "basketball", "tennis", "chess", "hiking", "cooking",
	"gaming", "volunteering", "blogging", "painting", "drawing",
	"cycling", "swimming", "running", "yoga", "gardening", "dancing",
	"theatre", "cinema", "writing", "fishing", "camping", "skiing",
}

var languagesVocabulary = []string{
	"english", "french", "spanish", "german", "italian", "portuguese",
	"dutch", "russian", "polish", "ukrainian", "turkish", "arabic",
	"hebrew", "hindi", "urdu", "bengali", "chinese", "mandarin",
	"cantonese", "japanese", "korean", "vietnamese", "thai",
	"indonesian", "malay", "swahili", "greek", "swedish", "norwegian",
	"danish", "finnish", "czech", "romanian", "hungarian", "serbian",
	"croatian", "bulgarian", "farsi", "persian",
}

// synonymGroups is a fixed bidirectional synonym table: a job skill matches
// an employee skill when both appear in the same group.
var synonymGroups = [][]string{
	{"javascript", "js", "ecmascript"},
	{"typescript", "ts"},
	{"react", "reactjs", "react.js"},
	{"vue", "vuejs", "vue.js"},
	{"angular", "angularjs"},
	{"node.js", "nodejs", "node"},
	{"amazon web services", "aws"},
	{"google cloud platform", "google cloud", "gcp"},
	{"microsoft azure", "azure"},
	{"kubernetes", "k8s"},
	{"postgresql", "postgres"},
	{"golang", "go"},
	{"c#", "csharp"},
	{"c++", "cpp"},
	{"machine learning", "ml"},
	{"artificial intelligence", "ai"},
	{"natural language processing", "nlp"},
	{"continuous integration", "ci/cd", "ci"},
	{"user experience", "ux"},
	{"user interface", "ui"},
	{"quality assurance", "qa"},
	{"project management", "pm"},
}

// synonymsOf returns the other members of every synonym group containing the
// normalized skill, or nil when the skill is in no group.
func synonymsOf(skill string) []string {
	var variants []string
	for _, group := range synonymGroups {
		member := false
		for _, s := range group {
			if s == skill {
				member = true
				break
			}
		}
		if !member {
			continue
		}
		for _, s := range group {
			if s != skill {
				variants = append(variants, s)
			}
		}
	}
	return variants
}
