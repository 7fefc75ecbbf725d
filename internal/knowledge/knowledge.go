// Package knowledge holds the static knowledge objects behind the chat
// coach: organization and course facts, the business-terms library, the
// discovery-question bank, and protective/excellence guidance tables.
//
// All tables are immutable package-level data initialized once at process
// start. Nothing here is written at runtime, so concurrent reads need no
// synchronization.
package knowledge

import "strings"

// Organization facts surfaced by course-info responses.
type Organization struct {
	Name                string
	Mission             string
	Vision              string
	FoundationScripture string
	FoundationPrinciple string
}

// Org is the fixed organization record.
var Org = Organization{
	Name:                "International Business and Ministry (IBAM)",
	Mission:             "Equipping entrepreneurs to build businesses that honor God and advance His Kingdom",
	Vision:              "Faith-driven entrepreneurs transforming communities through biblical business principles",
	FoundationScripture: "Whatever you do, work at it with all your heart, as working for the Lord (Colossians 3:23)",
	FoundationPrinciple: "Business is ministry when conducted with biblical principles and servant-hearted excellence",
}

// Course structure constants.
const (
	TotalModules  = 5
	TotalSessions = 22
)

// PrimaryGoals lists what the course helps students achieve.
var PrimaryGoals = []string{
	"Understand business as God's good gift and calling",
	"Learn practical skills: market research, financial planning, operations",
	"Develop Christ-like character in business leadership",
	"Create businesses that serve others and advance God's Kingdom",
	"Build community with other faith-driven entrepreneurs",
}

// SessionStructure describes the fixed four-part session pattern.
var SessionStructure = map[string]string{
	"looking_back":    "Review previous commitments and reflect on progress",
	"looking_up":      "Biblical foundation and spiritual reflection for the session",
	"main_content":    "Core teaching material with practical application",
	"looking_forward": "Create specific action commitments for next steps",
}

// PlannerSection is one section of the integrated business planner.
type PlannerSection struct {
	Name         string
	Description  string
	KeyQuestions []string
}

// PlannerPurpose is the one-line description of the business planner.
const PlannerPurpose = "a systematic tool to develop your business concept using biblical principles"

// PlannerSections lists the planner's sections in working order.
var PlannerSections = []PlannerSection{
	{
		Name:        "Vision and Mission",
		Description: "Define your God-given purpose and vision for the business",
		KeyQuestions: []string{
			"What problem is God calling you to solve?",
			"How does this business advance His Kingdom?",
			"What would success look like to God?",
		},
	},
	{
		Name:        "Customer Discovery",
		Description: "Understand the specific people you're called to serve",
		KeyQuestions: []string{
			"Who exactly are you serving?",
			"What keeps them up at night?",
			"How can you serve them excellently?",
		},
	},
	{
		Name:        "Value Proposition",
		Description: "Define the unique value you bring through God's gifts",
		KeyQuestions: []string{
			"What unique gifts has God given you?",
			"How do these gifts solve customer problems?",
			"What makes your approach distinctively Kingdom-focused?",
		},
	},
	{
		Name:        "Financial Planning",
		Description: "Stewardship-focused financial planning and projections",
		KeyQuestions: []string{
			"What resources has God entrusted to you?",
			"How will you manage finances with biblical wisdom?",
			"How will profit enable greater service and generosity?",
		},
	},
}

// PlannerFeatures lists planner capabilities surfaced in responses.
var PlannerFeatures = []string{
	"Each session has Looking Back, Looking Up, main content, and Looking Forward",
	"Automatic progress saving and completion tracking",
	"Coaching available throughout all sessions and business planning",
	"Create and track specific business development commitments",
	"Export progress reports and business plans",
}

// BusinessTerms is the plain-English business terms library, keyed by
// category then term.
var BusinessTerms = map[string]map[string]string{
	"financial": {
		"COGS":       "Cost of Goods Sold - What it actually costs you to make your product or deliver your service",
		"Revenue":    "All the money coming into your business from sales",
		"Profit":     "Revenue minus all your costs - what's left over",
		"Cash Flow":  "Money coming in and going out - like your business breathing",
		"Break-even": "The point where your revenue equals your costs - you're not losing money anymore",
		"Burn Rate":  "How fast you're spending money while building the business",
	},
	"marketing": {
		"Customer Acquisition": "How you find and attract new customers",
		"Market Research":      "Learning about your customers' real problems and needs",
		"Value Proposition":    "Why someone would choose your solution over alternatives",
		"Target Market":        "The specific group of people you're trying to serve",
		"Customer Persona":     "A detailed description of your ideal customer",
		"Conversion":           "When someone goes from interested to actually buying",
	},
	"operations": {
		"MVP":         "Minimum Viable Product - The simplest version that solves the core problem",
		"Iteration":   "Making small improvements based on customer feedback",
		"Scaling":     "Growing the business without breaking what already works",
		"Systems":     "Processes that work without you having to do everything manually",
		"Outsourcing": "Having others do work so you can focus on what matters most",
	},
	"strategy": {
		"Pivot":                 "Changing direction based on what you learn from customers",
		"Product-Market Fit":    "When customers actually want what you're offering",
		"Competitive Advantage": "What makes you different and better than alternatives",
		"Business Model":        "How you make money while serving customers",
		"Exit Strategy":         "Your plan for eventually transitioning out of day-to-day operations",
	},
}

// TermsIn returns definitions for every library term mentioned in the given
// content, matched case-insensitively. The result may be empty.
func TermsIn(content string) map[string]string {
	lower := strings.ToLower(content)
	found := make(map[string]string)
	for _, category := range BusinessTerms {
		for term, definition := range category {
			if strings.Contains(lower, strings.ToLower(term)) {
				found[term] = definition
			}
		}
	}
	return found
}

// DiscoveryQuestions is the Jesus-style discovery question bank, keyed by
// question family (who/what/when/where/why/how) then topic.
var DiscoveryQuestions = map[string]map[string][]string{
	"who": {
		"identity": {
			"Who do you see yourself becoming as a business owner?",
			"Who are the people God has placed in your life to serve through this business?",
			"Who could you partner with to make this vision reality?",
		},
		"customers": {
			"Who exactly are you trying to serve?",
			"Who would benefit most from what you're offering?",
			"Who are you NOT trying to serve? (This helps clarify your focus)",
			"Who would pay for this solution to their problem?",
		},
	},
	"what": {
		"vision": {
			"What problem are you solving that people actually have?",
			"What would success look like 1 year from now?",
			"What impact do you want to make through this business?",
		},
		"value": {
			"What unique value do you bring to this market?",
			"What makes your solution different from what already exists?",
			"What would customers miss if your business didn't exist?",
		},
	},
	"when": {
		"timing": {
			"When do your customers need this solution most?",
			"When would be the right time to start testing this idea?",
			"When do you plan to take your first concrete action step?",
		},
	},
	"where": {
		"market": {
			"Where do your ideal customers spend their time?",
			"Where are they currently trying to solve this problem?",
			"Where could you test your solution with real customers?",
		},
	},
	"why": {
		"purpose": {
			"Why does this business opportunity excite you?",
			"Why would customers choose your solution over alternatives?",
			"Why do you believe God is leading you in this direction?",
		},
	},
	"how": {
		"strategy": {
			"How would you test this idea with minimal risk?",
			"How will you know if customers actually want this?",
			"How will you measure success?",
		},
		"implementation": {
			"How will you take the first step this week?",
			"How will you stay accountable to your commitments?",
			"How will you adjust if your first approach doesn't work?",
		},
	},
}

// Mistake is one protective-guidance entry: a warning, a redirect, and the
// biblical principle behind it.
type Mistake struct {
	Warning   string `json:"warning"`
	Redirect  string `json:"redirect"`
	Principle string `json:"principle"`
}

// CommonMistakes maps mistake names to their guidance.
var CommonMistakes = map[string]Mistake{
	"building_without_customers": {
		Warning:   "I notice you're focusing on the solution before deeply understanding the problem.",
		Redirect:  "Jesus spent time with people before serving them. What if we explored your customers' actual needs first?",
		Principle: "Even Jesus asked questions to understand people's situations (Mark 10:51 - 'What do you want me to do for you?')",
	},
	"perfecting_before_testing": {
		Warning:   "It sounds like you want everything perfect before launching.",
		Redirect:  "Jesus sent disciples out to practice while they were still learning. How could you test this with one person first?",
		Principle: "Faith requires taking steps before seeing the whole staircase (Hebrews 11:1)",
	},
	"going_alone": {
		Warning:   "This sounds like you're planning to do everything yourself.",
		Redirect:  "Jesus worked with a team from the beginning. Who could help you with this vision?",
		Principle: "Two are better than one - Ecclesiastes 4:9-12",
	},
	"ignoring_finances": {
		Warning:   "Let's make sure this business can actually sustain itself financially.",
		Redirect:  "Jesus taught about counting the cost (Luke 14:28). How will this generate enough revenue to serve people well?",
		Principle: "Good stewardship requires understanding the numbers",
	},
	"rushing": {
		Warning:   "This feels like you might be moving too fast without proper foundation.",
		Redirect:  "Jesus spent 30 years preparing for 3 years of ministry. What foundation work needs to happen first?",
		Principle: "The plans of the diligent lead to profit (Proverbs 21:5)",
	},
}

// ExcellencePrompts maps action-step optimization opportunities to their
// coaching prompts.
var ExcellencePrompts = map[string]string{
	"make_it_specific":   "That's a good direction! Let's make it even more specific so you know exactly what success looks like.",
	"add_accountability": "This action would be even stronger with built-in accountability. Who could you share this commitment with?",
	"include_time_bound": "When exactly will you complete this? Being specific about timing helps turn intentions into reality.",
	"consider_risks":     "What could prevent this from happening, and how would you handle that?",
}

// ScriptureApplications maps scripture references to their practical
// business application.
var ScriptureApplications = map[string]string{
	"Matthew 28:19-20":    "Multiplication strategy - train others to do what you do",
	"Mark 12:31":          "Customer service excellence through genuine care",
	"Luke 14:28":          "Financial planning and counting the cost",
	"Proverbs 21:5":       "Strategic planning and diligent preparation",
	"Ecclesiastes 4:9-12": "Partnership and team building",
}

// ApplicationFor returns the business application for a scripture reference,
// or a generic application when the reference is not mapped.
func ApplicationFor(reference string) string {
	if app, ok := ScriptureApplications[reference]; ok {
		return app
	}
	return "Apply this biblical principle to your business decisions"
}
