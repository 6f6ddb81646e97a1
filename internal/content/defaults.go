package content

// Field names per section, in the order editors show them.
var sectionFields = map[SectionName][]string{
	Hero:    {"name", "subtitle", "description"},
	About:   {"intro", "approach"},
	Contact: {"email", "phone", "linkedinUrl"},
	Footer:  {"brand", "blurb", "tagline", "githubUrl"},
}

// FieldNames returns the field names of a section in display order.
func FieldNames(n SectionName) []string {
	return append([]string(nil), sectionFields[n]...)
}

var defaultSections = map[SectionName]Fields{
	Hero: {
		"name":        "Rahul Das",
		"subtitle":    "Product Manager | Growth Builder | Problem Solver | User-First Thinker",
		"description": "I simplify complex problems into delightful user experiences. From fintech to e-commerce, I've built products that drive growth, trust, and engagement.",
	},
	About: {
		"intro": `I'm a 2024 BITS Pilani graduate and currently a Associate Product Manager at 5paisa Capital.
I'm passionate about solving real-world problems using data, user research, and design thinking.`,
		"approach": `My approach blends curiosity, structured problem-solving, and a bias for action.
I believe in building products that not only meet business goals but also create genuine value for users.`,
	},
	Contact: {
		"email":       "rahul4ever2011@gmail.com",
		"phone":       "+91 6202320035",
		"linkedinUrl": "https://www.linkedin.com/in/rahul-das-117a56223/",
	},
	Footer: {
		"brand":     "Rahul Das",
		"blurb":     "Product Manager passionate about solving complex problems with simple, user-first solutions. Building products that drive growth and create value.",
		"tagline":   "Product Manager • Problem Solver • Growth Builder",
		"githubUrl": "https://github.com/rahuldas",
	},
}

func defaultSkillCategories() []SkillCategory {
	return []SkillCategory{
		{
			Title:   "Product Skills",
			Skills:  []string{"Product Roadmapping", "PRD Writing", "Root Cause Analysis", "User Research", "A/B Testing", "Growth Experiments"},
			Display: Display{Icon: "brain", Gradient: "from-primary/20 to-accent-orange/20"},
		},
		{
			Title:   "Analytics & Data",
			Skills:  []string{"Google Analytics", "SQL Basics", "Data Analysis", "KPI Tracking", "Cohort Analysis", "Conversion Optimization"},
			Display: Display{Icon: "bar-chart", Gradient: "from-accent-teal/20 to-primary/20"},
		},
		{
			Title:   "Design & Research",
			Skills:  []string{"Figma", "User Journey Mapping", "Wireframing", "Prototyping", "Usability Testing", "Design Systems"},
			Display: Display{Icon: "figma", Gradient: "from-accent-orange/20 to-accent-teal/20"},
		},
		{
			Title:   "Technical Tools",
			Skills:  []string{"Jira", "Rasa NLU", "API Documentation", "Git Basics", "Agile/Scrum", "Product Analytics"},
			Display: Display{Icon: "settings", Gradient: "from-accent-teal/20 to-accent-orange/20"},
		},
	}
}

func defaultAchievements() []Achievement {
	return []Achievement{
		{Title: "Growth Impact", Description: "Consistently delivered 3-5% improvements in key metrics", Display: Display{Icon: "trending-up", Accent: "text-accent-orange"}},
		{Title: "User-Centric", Description: "Built features used by 500K+ active users", Display: Display{Icon: "users", Accent: "text-accent-teal"}},
		{Title: "Innovation", Description: "First Implement AI chatbot in fintech space", Display: Display{Icon: "lightbulb", Accent: "text-primary"}},
		{Title: "Research-Driven", Description: "Data-backed decisions with 70%+ success rate", Display: Display{Icon: "search", Accent: "text-accent-orange"}},
	}
}

func defaultWorkExperience() []WorkItem {
	return []WorkItem{
		{
			Title:    "Basket Investing Feature",
			Problem:  "Users struggled to pick the right funds from hundreds of options, leading to analysis paralysis and low engagement.",
			Solution: "Curated investment baskets with detailed research insights, risk assessments, and performance tracking.",
			Impact:   "Boosted user engagement by 3% and improved conversion rates across all user segments.",
			Display:  Display{Icon: "/images/basket-investing-icon.png", Gradient: "from-primary/20 to-accent-orange/20", Accent: "text-accent-orange"},
		},
		{
			Title:    "AI-Powered Chatbot",
			Problem:  "High load on customer support agents with 80% repetitive queries causing delays and user frustration.",
			Solution: "Built intelligent chatbot using NLP intent classification with seamless handoff to human agents.",
			Impact:   "Automated 70% of repetitive queries, reduced response time by 60%.",
			Display:  Display{Icon: "/images/ai-chatbot-icon.png", Gradient: "from-accent-teal/20 to-primary/20", Accent: "text-accent-teal"},
		},
		{
			Title:    "MF Compare & Nifty50 Tool",
			Problem:  "Lack of easy-to-use comparison tools for mutual funds and benchmarking against indices.",
			Solution: "Interactive comparison dashboard with benchmark overlay, performance metrics, and visual analytics.",
			Impact:   "Traffic increased by 3%, conversion rate improved significantly.",
			Display:  Display{Icon: "/images/compare-tool-icon.png", Gradient: "from-accent-orange/20 to-accent-teal/20", Accent: "text-primary"},
		},
		{
			Title:    "Pre-login & Partner Page Revamp",
			Problem:  "Low engagement on landing pages and poor partner signup conversion rates.",
			Solution: "Redesigned layouts with trust signals, social proof, and optimized conversion funnels.",
			Impact:   "Engagement increased by 5%, achieved 500+ new partner onboardings.",
			Display:  Display{Icon: "/images/partnership-icon.png", Gradient: "from-primary/20 to-accent-teal/20", Accent: "text-accent-teal"},
		},
	}
}

func defaultPortfolio() []PortfolioItem {
	return []PortfolioItem{
		{
			Title:               "Fintech Product Teardown Analysis",
			Description:         "Comprehensive teardown of leading fintech apps analyzing UX, growth strategies, and monetization models.",
			ExpandedDescription: "Deep dive analysis covering user onboarding flows, feature comparison matrix, monetization strategies, and growth hacking techniques used by top fintech companies. Includes actionable insights and recommendations for product managers.",
			Image:               "/images/presentation-1.png",
			Display:             Display{Gradient: "from-primary/20 to-accent-teal/20"},
		},
		{
			Title:               "Growth Strategy Case Study",
			Description:         "Data-driven growth experiments and optimization strategies for SaaS products with detailed ROI analysis.",
			ExpandedDescription: "Complete case study showcasing A/B testing methodologies, conversion funnel optimization, user acquisition strategies, and retention techniques. Includes real metrics and performance indicators with actionable growth frameworks.",
			Image:               "/images/presentation-2.png",
			Display:             Display{Gradient: "from-accent-orange/20 to-primary/20"},
		},
		{
			Title:               "Product Requirements Documents",
			Description:         "Collection of detailed PRDs showcasing feature specifications, user stories, and technical requirements.",
			ExpandedDescription: "Professional PRD templates and examples covering feature specifications, user journey mapping, acceptance criteria, technical architecture, and stakeholder alignment. Perfect reference for product development workflows.",
			Image:               "/images/presentation-3.png",
			Display:             Display{Gradient: "from-accent-teal/20 to-accent-orange/20"},
		},
		{
			Title:               "User Research & Testing Reports",
			Description:         "Usability testing reports and user interview insights driving data-backed product decisions.",
			ExpandedDescription: "Comprehensive user research methodology including interview scripts, usability testing protocols, data analysis frameworks, and actionable insights. Demonstrates user-centric approach to product development and decision making.",
			Image:               "/images/presentation-4.png",
			Display:             Display{Gradient: "from-primary/20 to-accent-orange/20"},
		},
	}
}
