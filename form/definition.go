package form

import "github.com/hanco1/D2Cdashboard/model"

// Designated question ids the derivation and metrics logic keys on. They are
// fixed by the assessment form definition below.
const (
	roleQuestionID       = "q1"
	nameQuestionID       = "q2"
	repetitiveFreqID     = "q5"
	painPointQuestionID  = "q7"
	searchFreqQuestionID = "q8"
	frictionQuestionID   = "q10"
	aiFamiliarityID      = "q15"
	automationWishesID   = "q16"
	topToolQuestionID    = "q18"
)

// OtherOption is the reserved choice literal that requires accompanying
// free text.
const OtherOption = "Other"

var assessmentForm = New(Metadata{
	Title:       "D2C AI & Automation Readiness Assessment",
	Description: "Help us understand where automation and AI tools could save you the most time.",
	Version:     "1.0",
}, []Section{
	{
		ID:          "s1",
		Title:       "About You",
		Description: "A little context about your role. Your name is optional.",
		Questions: []Question{
			{
				ID:             roleQuestionID,
				Text:           "What is your role?",
				Type:           model.TypeChoice,
				Required:       true,
				AllowMultiple:  false,
				HasOtherOption: true,
				Options: []string{
					"Project Manager (PM)",
					"Estimator",
					"Site Superintendent",
					"Accounting / Office Admin",
					"Executive / Operations",
					OtherOption,
				},
			},
			{
				ID:       nameQuestionID,
				Text:     "Your name",
				Subtitle: "Leave blank to submit anonymously.",
				Type:     model.TypeText,
				Required: false,
			},
		},
	},
	{
		ID:          "s2",
		Title:       "Daily Work & Tools",
		Description: "What your typical week looks like and which tools you rely on.",
		Questions: []Question{
			{
				ID:         "q3",
				Text:       "Which tasks take up most of your time in a typical week?",
				Type:       model.TypeText,
				Required:   true,
				LongAnswer: true,
			},
			{
				ID:             "q4",
				Text:           "Which software or tools do you use regularly?",
				Type:           model.TypeChoice,
				Required:       true,
				AllowMultiple:  true,
				HasOtherOption: true,
				Options: []string{
					"Microsoft Excel",
					"Microsoft Outlook",
					"Microsoft Teams",
					"QuickBooks Desktop",
					"SharePoint",
					"SiteMax",
					"Bluebeam",
					"Paper forms",
					OtherOption,
				},
			},
			{
				ID:       repetitiveFreqID,
				Text:     "How often do you copy or re-enter the same data between systems?",
				Type:     model.TypeChoice,
				Required: true,
				Options: []string{
					"Almost daily",
					"Several times per week",
					"Occasionally",
					"Rarely or never",
				},
			},
			{
				ID:         "q6",
				Text:       "Describe one repetitive workflow you do regularly.",
				Subtitle:   "Where does the data come from, and where does it end up?",
				Type:       model.TypeText,
				Required:   false,
				LongAnswer: true,
			},
		},
	},
	{
		ID:          "s3",
		Title:       "Pain Points",
		Description: "The parts of your work that cost the most time or cause the most errors.",
		Questions: []Question{
			{
				ID:         painPointQuestionID,
				Text:       "What is the single biggest pain point in your daily work?",
				Type:       model.TypeText,
				Required:   true,
				LongAnswer: true,
			},
			{
				ID:       searchFreqQuestionID,
				Text:     "How often do you spend time searching for project information?",
				Type:     model.TypeChoice,
				Required: true,
				Options: []string{
					"Daily",
					"Several times per week",
					"Occasionally",
					"Rarely",
				},
			},
			{
				ID:            "q9",
				Text:          "Which kinds of information are hardest to find when you need them?",
				Type:          model.TypeChoice,
				Required:      true,
				AllowMultiple: true,
				Options: []string{
					"Project cost data",
					"Historical Bid",
					"Contract terms",
					"Specification/Scope",
					"Supplier quotes",
					"Site photos",
					"Drawings/Revisions",
				},
			},
			{
				ID:         frictionQuestionID,
				Text:       "Which manual process causes the most errors or rework?",
				Type:       model.TypeText,
				Required:   false,
				LongAnswer: true,
			},
		},
	},
	{
		ID:          "s4",
		Title:       "Role-Specific Scenarios",
		Description: "Optional scenarios tailored to your role.",
		Questions: []Question{
			{
				ID:            "q11",
				Text:          "As an estimator, which of these would help you most when preparing a bid?",
				Type:          model.TypeChoice,
				Required:      false,
				AllowMultiple: true,
				ConditionalOn: &ConditionalRule{
					QuestionID: roleQuestionID,
					Condition:  ConditionEqual,
					Value:      "Estimator",
				},
				Options: []string{
					"Historical similar project pricing and actual costs",
					"Auto-extracted scope and quantities from PDF",
					"Supplier quote comparison table",
					"Bid/no-bid risk summary",
				},
			},
			{
				ID:         "q12",
				Text:       "Describe your ideal tool for capturing and sharing field information.",
				Type:       model.TypeText,
				Required:   false,
				LongAnswer: true,
				ConditionalOn: &ConditionalRule{
					QuestionID: roleQuestionID,
					Condition:  ConditionEqual,
					Value:      OtherOption,
				},
			},
			{
				ID:         "q13",
				Text:       "Describe your ideal monthly project reporting workflow.",
				Type:       model.TypeText,
				Required:   false,
				LongAnswer: true,
				ConditionalOn: &ConditionalRule{
					QuestionID: roleQuestionID,
					Condition:  ConditionEqual,
					Value:      "Project Manager (PM)",
				},
			},
			{
				ID:            "q14",
				Text:          "Which dashboards or summaries would you check regularly if they existed?",
				Type:          model.TypeChoice,
				Required:      false,
				AllowMultiple: true,
				Options: []string{
					"Project progress summary (all projects on one page)",
					"Safety incident tracking",
					"Labor hours by cost code",
					"Equipment utilization",
					"Cash flow / billing status",
				},
			},
		},
	},
	{
		ID:          "s5",
		Title:       "AI Readiness & Priorities",
		Description: "Your experience with AI tools and what we should build first.",
		Questions: []Question{
			{
				ID:       aiFamiliarityID,
				Text:     "How familiar are you with AI assistants?",
				Type:     model.TypeChoice,
				Required: true,
				Options: []string{
					"Frequent user (e.g., ChatGPT, Perplexity/Gemini)",
					"Heard of it, tried occasionally",
					"Completely new to me",
					"Skeptical about using AI at work",
				},
			},
			{
				ID:             automationWishesID,
				Text:           "Which of these would you most like automated?",
				Type:           model.TypeChoice,
				Required:       true,
				AllowMultiple:  true,
				HasOtherOption: true,
				Options: []string{
					"Extract key information from PDFs",
					"Auto-fill forms based on previous data",
					"Predict costs based on historical data",
					"Draft emails and meeting summaries",
					"Search across project documents",
					OtherOption,
				},
			},
			{
				ID:            "q17",
				Text:          "What concerns, if any, do you have about using AI at work?",
				Type:          model.TypeChoice,
				Required:      false,
				AllowMultiple: true,
				Options: []string{
					"Accuracy of results",
					"Security and confidentiality",
					"Learning curve",
					"Impact on jobs",
					"Cost",
				},
			},
			{
				ID:             topToolQuestionID,
				Text:           "If we could build one tool first, which should it be?",
				Type:           model.TypeChoice,
				Required:       true,
				HasOtherOption: true,
				Options: []string{
					"Progress billing auto-preparation",
					"Bid risk analysis assistant",
					"Daily site log auto-consolidation",
					"Historical cost lookup tool",
					"Document search assistant",
					OtherOption,
				},
			},
			{
				ID:       "q19",
				Text:     "How much time would you invest in learning a new tool?",
				Type:     model.TypeChoice,
				Required: true,
				Options: []string{
					"Want it very simple, no training needed",
					"Can accept 1-2 hours of training",
					"Happy to invest time if it improves efficiency",
				},
			},
			{
				ID:         "q20",
				Text:       "Anything else we should know?",
				Type:       model.TypeText,
				Required:   false,
				LongAnswer: true,
			},
		},
	},
})

// Default returns the assessment form definition. It is shared, read-only
// configuration; callers must not mutate it.
func Default() *Form {
	return assessmentForm
}
