package ats

// industryRule pairs an industry label with the indicator phrases that
// signal it. DetectIndustry scans the rules in order and the first rule
// with any indicator present wins, so the ordering below is load-bearing.
type industryRule struct {
	label      string
	indicators []string
}

var industryRules = []industryRule{
	{"tech", []string{"software", "developer", "engineer", "programming", "coding", "technical"}},
	{"design", []string{"designer", "ui/ux", "creative", "visual", "graphics", "brand"}},
	{"marketing", []string{"marketing", "social media", "seo", "campaigns", "advertising"}},
	{"finance", []string{"financial", "accounting", "banking", "investment", "audit"}},
	{"healthcare", []string{"medical", "healthcare", "clinical", "patient", "hospital"}},
	{"sales", []string{"sales", "business development", "account", "client", "revenue"}},
	{"hr", []string{"human resources", "recruitment", "talent", "hiring", "people"}},
	{"education", []string{"education", "teaching", "training", "curriculum", "learning"}},
	{"legal", []string{"legal", "attorney", "lawyer", "compliance", "regulatory"}},
	{"operations", []string{"operations", "logistics", "supply chain", "process", "management"}},
}

// industryKeywords holds the curated keyword list per industry. Industries
// without a curated list (hr, education, legal, operations) fall back to
// the general list.
var industryKeywords = map[string][]string{
	"tech": {
		"javascript", "python", "java", "react", "node.js", "sql", "git", "aws", "docker",
		"api", "database", "frontend", "backend", "fullstack", "agile", "scrum",
	},
	"design": {
		"figma", "sketch", "photoshop", "illustrator", "ui/ux", "prototyping", "wireframing",
		"user research", "design thinking", "accessibility", "responsive design",
	},
	"marketing": {
		"seo", "sem", "ppc", "google ads", "facebook ads", "email marketing", "crm",
		"analytics", "conversion optimization", "content marketing", "social media",
	},
	"finance": {
		"financial analysis", "excel", "quickbooks", "sap", "accounting", "budgeting",
		"forecasting", "audit", "compliance", "financial modeling", "risk management",
	},
	"healthcare": {
		"patient care", "medical records", "hipaa", "clinical", "ehr", "emr",
		"medical coding", "healthcare", "nursing", "telemedicine",
	},
	"sales": {
		"crm", "salesforce", "lead generation", "pipeline management", "negotiation",
		"account management", "business development", "revenue growth",
	},
	"general": {
		"leadership", "communication", "project management", "problem solving",
		"team work", "time management", "customer service", "microsoft office",
	},
}

// keywordSynonym maps a canonical phrase to the aliases that imply it.
// When any alias appears in the text, the canonical phrase is added to the
// extracted term set. The canonical phrase still has to pass the final
// substring filter, so it only survives when it occurs literally.
type keywordSynonym struct {
	canonical string
	aliases   []string
}

var keywordSynonyms = []keywordSynonym{
	{"restful apis", []string{"rest apis", "api", "restful"}},
	{"problem solving", []string{"problem-solving", "troubleshooting", "debugging"}},
	{"eagerness to learn", []string{"motivated", "enthusiastic", "quick learner"}},
}
