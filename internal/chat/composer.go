package chat

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ibam-edu/actioncoach/internal/knowledge"
	"github.com/ibam-edu/actioncoach/internal/models"
)

// Composer builds complete coaching answers from a classified intent,
// the raw question, and optional session content. It cannot fail: missing
// or unusable content falls through to progressively more generic
// templates, terminating in one unconditional default response.
//
// Answers composed from live session content are tagged models.SourceAI;
// answers served purely from the static template library are tagged
// models.SourceFallback.
type Composer struct{}

// NewComposer creates a Composer.
func NewComposer() *Composer {
	return &Composer{}
}

// Respond classifies the question and composes the matching response.
// The session context may be nil.
func (c *Composer) Respond(question string, session *models.SessionContentContext) models.CoachingResponse {
	intent := Classify(question, session != nil)
	slog.Debug("Composer.Respond: classified question", "intent", intent, "has_session", session != nil)

	var resp models.CoachingResponse
	switch intent {
	case IntentGreeting:
		resp = c.greetingResponse(session)
	case IntentIdentity:
		resp = c.identityResponse()
	case IntentContentGap:
		resp = c.contentGapResponse(session)
	case IntentWealth:
		resp = c.wealthResponse(question)
	case IntentTerminology:
		resp = c.terminologyResponse(question)
	case IntentSessionContent:
		resp = c.sessionContentResponse(question, session)
	case IntentCourse:
		resp = c.courseResponse(question, session)
	case IntentEthics:
		resp = c.ethicsResponse(question)
	case IntentTheology:
		resp = c.theologyResponse(question)
	case IntentPlanner:
		resp = c.plannerResponse()
	case IntentPractical:
		resp = c.practicalResponse(question)
	default:
		resp = c.defaultResponse(question)
	}
	resp.Intent = string(intent)
	return resp
}

func (c *Composer) greetingResponse(session *models.SessionContentContext) models.CoachingResponse {
	opening := "Great to connect with you today!"
	if session != nil {
		opening = fmt.Sprintf("I see you're working on %q. That's excellent!", session.Title)
	}
	return models.CoachingResponse{
		Answer: fmt.Sprintf(`Hello! I'm your IBAM Online Coach, and I'm excited to help you integrate biblical principles with practical business wisdom.

%s

**I'm here to help you with**:
• Biblical business principles and their practical application
• Course content questions and guidance
• Business ethics and decision-making
• Practical business skills (marketing, finance, operations)
• Action planning and implementation

What questions do you have? I'm ready to give you direct, helpful answers!`, opening),
		Source: models.SourceFallback,
	}
}

func (c *Composer) identityResponse() models.CoachingResponse {
	return models.CoachingResponse{
		Answer: `I'm your **IBAM Coach**!

I'm here to help you:
• Apply biblical principles to real business situations
• Discuss session content and answer questions about what you're learning
• Think through practical applications of IBAM's faith-based business approach
• Navigate challenges where faith and business intersect

I can access your current session content to give you specific guidance based on what you're studying. I'm designed to be direct, practical, and biblically grounded - not just give generic responses.

What would you like to explore about today's session or your business situation?`,
		Source: models.SourceFallback,
		FollowUpQuestions: []string{
			"What specific business challenge can I help you with?",
			"What questions do you have about today's session content?",
			"How can I help you apply what you're learning?",
		},
	}
}

func (c *Composer) contentGapResponse(session *models.SessionContentContext) models.CoachingResponse {
	title := "this session"
	if session != nil {
		title = fmt.Sprintf("%q", session.Title)
	}
	return models.CoachingResponse{
		Answer: fmt.Sprintf(`**Content Gap Analysis for %s:**

Here are some important business management issues that aren't directly addressed in this session:

**Operational Gaps:**
• Employee conflict resolution and discipline procedures
• Technology integration and digital transformation strategies
• Crisis management and business continuity planning
• Supply chain management and vendor relationships

**Growth & Scaling Challenges:**
• Managing rapid growth while maintaining biblical principles
• Hiring and training processes that reflect Christian values
• Competitive pricing in markets where others use unethical practices

**Difficult Situations:**
• Handling difficult customers while maintaining Christian witness
• Dealing with employees who don't share your faith
• Balancing profit margins with fair wages and pricing

Which of these areas would be most helpful for your current business situation?`, title),
		Source: models.SourceFallback,
		FollowUpQuestions: []string{
			"Which of these gaps affects your business most?",
			"What specific operational challenge are you facing?",
			"How can biblical principles guide you in these areas?",
		},
	}
}

func (c *Composer) wealthResponse(question string) models.CoachingResponse {
	q := normalize(question)
	if strings.Contains(q, "god serve me") || strings.Contains(q, "hoping that god will serve me") || strings.Contains(q, "will this work") {
		return models.CoachingResponse{
			Answer: `**That's actually a dangerous approach that Scripture warns against.**

Jesus said "No one can serve two masters" (Matthew 6:24). You've identified the core problem - wanting God to serve your wealth goals instead of you serving God.

**Biblical Reality:**
• **God isn't a cosmic ATM** - He's Lord, not servant
• **Prosperity isn't guaranteed** for obedience - many faithful believers struggle financially
• **Wrong motives corrupt everything** - if wealth is your primary goal, you'll compromise principles when they conflict with profit

**God's Way:**
"But seek first his kingdom and his righteousness, and all these things will be given to you as well" (Matthew 6:33)

**Better Approach:**
• Serve God faithfully in business
• Follow biblical principles regardless of cost
• Trust God with the results
• Find contentment in His provision

Following biblical principles often leads to sustainable success, but that should be the byproduct, not the goal.`,
			Source:              models.SourceFallback,
			ScriptureReferences: []string{"Matthew 6:24", "Matthew 6:33", "1 Timothy 6:10"},
			FollowUpQuestions: []string{
				"What's really driving your desire for wealth?",
				"What would change if you truly put God first in your business?",
				"What biblical principles challenge your current approach?",
			},
		}
	}
	return models.CoachingResponse{
		Answer: `**Biblical Perspective on Wealth and Business Success:**

**The Truth About Prosperity:**
• **Not guaranteed** - Godly people aren't promised wealth (Job, many NT believers lived modestly)
• **Can be a blessing** - Abraham, Solomon, and others were blessed with wealth to serve God's purposes
• **Always comes with responsibility** - "From everyone who has been given much, much will be demanded" (Luke 12:48)

**Why Biblical Principles Often Lead to Success:**
• **Integrity builds trust** - customers return to honest businesses
• **Fair treatment creates loyalty** - employees work harder for respectful employers
• **Wise stewardship** improves financial management
• **Long-term thinking** builds sustainable businesses

**The Danger:**
If wealth becomes your primary motivation, you'll compromise these very principles when they cost money.

**God's Priority:**
"But seek first his kingdom and his righteousness, and all these things will be given to you as well" (Matthew 6:33)

What specific business decisions are you facing where you're tempted to prioritize profit over principles?`,
		Source:              models.SourceFallback,
		ScriptureReferences: []string{"Matthew 6:33", "Luke 12:48", "1 Timothy 6:9-10"},
		FollowUpQuestions: []string{
			"What business decisions are you facing where profit conflicts with principles?",
			"How would your approach change if service became your primary goal?",
			"What does faithful stewardship look like in your business?",
		},
	}
}

func (c *Composer) terminologyResponse(question string) models.CoachingResponse {
	q := normalize(question)
	switch {
	case strings.Contains(q, "looking back"):
		return models.CoachingResponse{
			Answer: `**"Looking Back"** is the first part of each IBAM session where you:

• **Review your previous action commitments** - What did you commit to do last session?
• **Reflect on your progress** - How did it go? What did you learn?
• **Celebrate wins and learn from challenges** - Both success and struggle teach us
• **Prepare your heart and mind** for new learning

This reflection time helps you build on what you've learned and stay accountable to your growth.

**Purpose**: Accountability, reflection, and building momentum in your faith-business journey.`,
			Source:              models.SourceFallback,
			ScriptureReferences: []string{`1 Samuel 7:12 - "Thus far the LORD has helped us"`},
		}
	case strings.Contains(q, "looking up"):
		return models.CoachingResponse{
			Answer: `**"Looking Up"** is the second part of each session where you:

• **Focus on God and His Word** - What does Scripture teach about today's topic?
• **Ground yourself in biblical truth** - Get God's perspective before human wisdom
• **Pray for wisdom and guidance** - Invite God into your business decisions
• **Connect with the spiritual foundation** for practical business principles

This time ensures that everything you learn is built on the solid rock of God's Word, not just human business theory.

**Purpose**: Seek first God's Kingdom and His righteousness in all business matters (Matthew 6:33).`,
			Source:              models.SourceFallback,
			ScriptureReferences: []string{"Matthew 6:33", `Psalm 121:1 - "I lift up my eyes to the mountains"`},
		}
	case strings.Contains(q, "looking forward"):
		return models.CoachingResponse{
			Answer: `**"Looking Forward"** is the final part of each session where you:

• **Create specific action commitments** - What exactly will you do with what you've learned?
• **Plan your next steps** - Turn knowledge into action
• **Set measurable goals** - Make commitments you can track
• **Prepare for accountability** - Get ready to report back next session

This is where learning becomes living. James 1:22 says "Be doers of the word, and not hearers only."

**Purpose**: Transform biblical business knowledge into real-world action that honors God and serves others.`,
			Source:              models.SourceFallback,
			ScriptureReferences: []string{`James 1:22 - "Be doers of the word, and not hearers only"`},
		}
	}
	parts := []struct{ name, key string }{
		{"Looking Back", "looking_back"},
		{"Looking Up", "looking_up"},
		{"Main Content", "main_content"},
		{"Looking Forward", "looking_forward"},
	}
	var lines []string
	for _, part := range parts {
		lines = append(lines, fmt.Sprintf("**%s**: %s", part.name, knowledge.SessionStructure[part.key]))
	}
	return models.CoachingResponse{
		Answer: fmt.Sprintf(`**IBAM Session Structure** - Each session follows a proven learning pattern:

%s

This structure ensures you don't just learn information, but actually transform how you do business according to God's design.`, strings.Join(lines, "\n")),
		Source: models.SourceFallback,
	}
}

func (c *Composer) sessionContentResponse(question string, session *models.SessionContentContext) models.CoachingResponse {
	if session == nil {
		return c.defaultResponse(question)
	}
	topic := ClassifyContentTopic(question)
	slog.Debug("Composer.sessionContentResponse: sub-classified question", "topic", topic, "module", session.ModuleID, "session", session.SessionID)
	switch topic {
	case TopicCaseStudy:
		return c.caseStudyResponse(session)
	case TopicMainPoints:
		return c.mainPointsResponse(session)
	case TopicReading:
		return c.readingResponse(session)
	case TopicScripture:
		return c.scriptureResponse(session)
	case TopicPrinciples:
		return c.principlesResponse(session)
	}
	return c.generalSessionResponse(session)
}

func (c *Composer) caseStudyResponse(session *models.SessionContentContext) models.CoachingResponse {
	if session.HasContent() && len(session.Content.CaseStudies) > 0 {
		return models.CoachingResponse{
			Answer: fmt.Sprintf(`**Case Study Insights from %q:**

%s

**Key Takeaways:**
• These examples show how biblical principles apply to real business situations
• Notice how integrity and service to others create sustainable success
• God honors businesses that operate with excellence and ethical standards

**Application Questions:**
• How does this case study relate to your current business situation?
• What principles from this example could you implement this week?`, session.Title, strings.Join(session.Content.CaseStudies, "\n\n")),
			Source: models.SourceAI,
			FollowUpQuestions: []string{
				"Which principle from this case study resonates most with you?",
				"How could you apply this example to your business?",
			},
		}
	}

	// No structured case studies: mine the reading text for examples.
	if session.HasContent() {
		if examples := ExtractExamples(session.Content.Reading); len(examples) > 0 {
			return models.CoachingResponse{
				Answer: fmt.Sprintf(`**Business Examples from %q:**

%s

**Insights You Can Apply:**
• Look for patterns of how biblical principles create business success
• Notice the long-term perspective in these examples
• See how serving others well leads to sustainable growth

These examples show that following God's guidelines isn't just morally right - it's also good business!`, session.Title, bulletList(examples)),
				Source: models.SourceAI,
				FollowUpQuestions: []string{
					"Which example connects most with your situation?",
					"What similar challenges have you faced?",
				},
			}
		}
	}

	return models.CoachingResponse{
		Answer: fmt.Sprintf(`I don't see specific case studies detailed in this session's content, but %q contains practical business principles you can apply.

**General Business Insights:**
• Biblical guidelines create sustainable business practices
• Integrity and excellence attract loyal customers
• Serving others well leads to long-term success

What specific business challenge would you like to explore using the principles from this session?`, session.Title),
		Source: models.SourceFallback,
		FollowUpQuestions: []string{
			"What business situation are you facing right now?",
			"Which biblical principle from this session interests you most?",
		},
	}
}

func (c *Composer) mainPointsResponse(session *models.SessionContentContext) models.CoachingResponse {
	var b strings.Builder
	fmt.Fprintf(&b, "**Main Points from %q:**\n\n", session.Title)
	mined := false

	if session.HasContent() {
		if len(session.Content.KeyPrinciples) > 0 {
			b.WriteString(bulletList(session.Content.KeyPrinciples))
			b.WriteString("\n\n")
			mined = true
		}
		if len(session.Content.Objectives) > 0 {
			b.WriteString("**Learning Objectives:**\n")
			b.WriteString(bulletList(session.Content.Objectives))
			b.WriteString("\n\n")
			mined = true
		}
		if !mined && session.Content.Reading != "" {
			if points := ExtractKeyPoints(session.Content.Reading); len(points) > 0 {
				b.WriteString(strings.Join(points, "\n"))
				b.WriteString("\n\n")
				mined = true
			}
		}
	}

	b.WriteString(`**Biblical Foundation:**
These guidelines come from God's wisdom for business and life. When we follow His principles, we build businesses that honor Him and serve others excellently.

**Next Steps:**
Choose one main point that resonates with your current situation and commit to applying it this week.`)

	source := models.SourceFallback
	if mined {
		source = models.SourceAI
	}
	return models.CoachingResponse{
		Answer: b.String(),
		Source: source,
		FollowUpQuestions: []string{
			"Which main point applies most to your business right now?",
			"How will you implement one of these principles this week?",
		},
	}
}

func (c *Composer) readingResponse(session *models.SessionContentContext) models.CoachingResponse {
	if session.HasContent() && len(session.Content.Reading) > 100 {
		return models.CoachingResponse{
			Answer: fmt.Sprintf(`**Reading Content Summary for %q:**

%s

**How to Use This Content:**
• Read through it thoughtfully, considering how it applies to your situation
• Look for specific action steps you can take
• Notice the biblical foundation for each business principle

**Reflection Questions:**
• Which part of the reading challenged your current thinking?
• What new insight did you gain about God's view of business?`, session.Title, Summarize(session.Content.Reading)),
			Source: models.SourceAI,
			FollowUpQuestions: []string{
				"What part of the reading content resonated most with you?",
				"How does this material change your perspective on business?",
			},
		}
	}

	return models.CoachingResponse{
		Answer: fmt.Sprintf(`The reading content for %q contains important biblical business principles.

While I can't display all the specific content here, the session covers:
• Biblical foundations for business management
• Practical applications of God's guidelines
• Real-world examples of faithful business practices
• Action steps you can implement immediately

I'd encourage you to work through the reading material section by section, taking time to reflect on how each principle applies to your business situation.`, session.Title),
		Source: models.SourceFallback,
		FollowUpQuestions: []string{
			"What business management challenge are you facing?",
			"Which biblical principle interests you most?",
		},
	}
}

func (c *Composer) scriptureResponse(session *models.SessionContentContext) models.CoachingResponse {
	if session.HasContent() && session.Content.Scripture != nil {
		scripture := session.Content.Scripture
		var text string
		if scripture.Text != "" {
			text = fmt.Sprintf("\n**Text:** %q", scripture.Text)
		}
		return models.CoachingResponse{
			Answer: fmt.Sprintf(`**Scripture Focus for %q:**

**Reference:** %s%s

**Business Application:**
%s

God's Word gives us wisdom for:
• Making ethical decisions under pressure
• Treating employees and customers with respect
• Managing resources with integrity
• Building businesses that honor God

**Reflection:**
How does this Scripture passage speak to your current business situation?`, session.Title, scripture.Reference, text, knowledge.ApplicationFor(scripture.Reference)),
			Source:              models.SourceAI,
			ScriptureReferences: []string{scripture.Reference},
			FollowUpQuestions: []string{
				"How does this Scripture apply to your business decisions?",
				"What does this passage teach you about God's view of business?",
			},
		}
	}

	return models.CoachingResponse{
		Answer: fmt.Sprintf(`%q is grounded in biblical principles, even if specific Scripture references aren't detailed in the content I can access.

**Biblical Foundation for Business:**
• "Whatever you do, work at it with all your heart, as working for the Lord" (Colossians 3:23)
• "Better is a little with righteousness than great revenues with injustice" (Proverbs 16:8)
• "Commit to the LORD whatever you do, and he will establish your plans" (Proverbs 16:3)

These verses provide the foundation for God's guidelines in business management.`, session.Title),
		Source:              models.SourceFallback,
		ScriptureReferences: []string{"Colossians 3:23", "Proverbs 16:8", "Proverbs 16:3"},
	}
}

func (c *Composer) principlesResponse(session *models.SessionContentContext) models.CoachingResponse {
	if session.HasContent() && len(session.Content.KeyPrinciples) > 0 {
		var numbered []string
		for i, p := range session.Content.KeyPrinciples {
			numbered = append(numbered, fmt.Sprintf("**%d. %s**", i+1, p))
		}
		return models.CoachingResponse{
			Answer: fmt.Sprintf(`**Key Principles from %q:**

%s

**Why These Principles Matter:**
• They're based on God's timeless wisdom for business and life
• Following them creates sustainable, ethical business practices
• They help you make decisions that honor God and serve others

**Application:**
Choose one principle that addresses your current business challenge and commit to implementing it this week.`, session.Title, strings.Join(numbered, "\n\n")),
			Source: models.SourceAI,
			FollowUpQuestions: []string{
				"Which principle addresses your biggest business challenge?",
				"How will you apply one of these principles starting today?",
			},
		}
	}
	return c.generalSessionResponse(session)
}

func (c *Composer) generalSessionResponse(session *models.SessionContentContext) models.CoachingResponse {
	return models.CoachingResponse{
		Answer: fmt.Sprintf(`**%q Session Overview:**

This session provides biblical guidelines for business, focusing on how God's wisdom applies to practical business decisions.

**What You'll Learn:**
• Biblical foundations for business leadership
• Practical applications of faith in business
• How to make decisions that honor God
• Ways to serve customers and employees excellently

**Key Focus Areas:**
• Integrity in all business dealings
• Stewardship of resources and opportunities
• Building businesses that create positive impact

What specific aspect of business would you like to explore using biblical principles?`, session.Title),
		Source: models.SourceFallback,
		FollowUpQuestions: []string{
			"What business management challenge needs biblical guidance?",
			"Which area of your business most needs God's wisdom right now?",
		},
	}
}

func (c *Composer) courseResponse(question string, session *models.SessionContentContext) models.CoachingResponse {
	q := normalize(question)
	if strings.Contains(q, "what is") && strings.Contains(q, "ibam") {
		return models.CoachingResponse{
			Answer: fmt.Sprintf(`IBAM stands for %s. Our mission is %q.

This course helps you:
%s

We have %d modules with %d total sessions, covering biblical foundations through practical business development and leadership.`,
				knowledge.Org.Name, knowledge.Org.Mission, bulletList(knowledge.PrimaryGoals), knowledge.TotalModules, knowledge.TotalSessions),
			Source:              models.SourceFallback,
			ScriptureReferences: []string{knowledge.Org.FoundationScripture},
		}
	}

	if strings.Contains(q, "purpose") || strings.Contains(q, "goal") || strings.Contains(q, "ultimate") {
		return models.CoachingResponse{
			Answer: fmt.Sprintf(`The **ultimate goal** of this IBAM course is to help you build a thriving business that honors God and serves others excellently.

**What you'll achieve**:
%s

**Practical Skills You'll Master**:
• Market research and customer discovery
• Financial planning and budgeting
• Marketing and sales strategies
• Operations and systems development
• Leadership and team building

**The Result**: A profitable, sustainable business that demonstrates God's character in the marketplace while serving customers excellently.

%s`, bulletList(knowledge.PrimaryGoals), knowledge.Org.FoundationPrinciple),
			Source:              models.SourceFallback,
			ScriptureReferences: []string{knowledge.Org.FoundationScripture},
		}
	}

	location := "Navigate through all modules from your dashboard."
	if session != nil {
		location = fmt.Sprintf("You're currently in: %q", session.Title)
	}
	return models.CoachingResponse{
		Answer: fmt.Sprintf(`This course consists of %d sessions across %d modules. Each session follows our structure: Looking Back (review), Looking Up (biblical foundation), main content (practical learning), and Looking Forward (action planning).

%s`, knowledge.TotalSessions, knowledge.TotalModules, location),
		Source: models.SourceFallback,
	}
}

func (c *Composer) ethicsResponse(question string) models.CoachingResponse {
	q := normalize(question)
	switch {
	case strings.Contains(q, "bribe") || strings.Contains(q, "corrupt") || strings.Contains(q, "bad guys"):
		return models.CoachingResponse{
			Answer: `Bribery and corruption are never acceptable in biblical business practice. Here's why and what to do instead:

**Biblical Standard**: "Better is a little with righteousness than great revenues with injustice" (Proverbs 16:8). God values integrity over profit.

**Practical Alternatives**:
• Build genuine value propositions that don't require bribes
• Develop relationships based on trust and excellent service
• Work in markets where merit, not corruption, drives success
• Partner with others who share your ethical standards

**Long-term perspective**: Businesses built on integrity may grow slower initially, but they create sustainable success and honor God.

If you're facing pressure to engage in corruption, this might be a sign to evaluate whether this is the right market or partnership for your calling.`,
			Source:              models.SourceFallback,
			ScriptureReferences: []string{"Proverbs 16:8", "Proverbs 11:1"},
		}
	case strings.Contains(q, "evil") && strings.Contains(q, "succeed"):
		return models.CoachingResponse{
			Answer: `You're right that sometimes unethical people appear to succeed in business. The Bible acknowledges this reality:

**Biblical Perspective**:
• "Do not fret because of evildoers" (Psalm 37:1)
• Their success is often temporary: "I have seen the wicked in great power... yet they passed away" (Psalm 37:35-36)

**Your Response as a Christian Entrepreneur**:
1. **Stay focused on your calling**: Build the business God has called you to build
2. **Compete on value**: Offer superior products/services, not unethical shortcuts
3. **Long-term thinking**: Sustainable success comes through trust and integrity
4. **Different definitions of success**: Kingdom impact matters more than just profit

Remember: you're not just building a business, you're demonstrating God's character in the marketplace.`,
			Source:              models.SourceFallback,
			ScriptureReferences: []string{"Psalm 37:1", "Psalm 37:35-36"},
		}
	case strings.Contains(q, "break") && strings.Contains(q, "rules"):
		return models.CoachingResponse{
			Answer: `Breaking God's rules has serious consequences, both spiritually and practically in business:

**Spiritual Consequences**:
• Sin separates us from God and requires repentance
• "The wages of sin is death, but the gift of God is eternal life" (Romans 6:23)

**Business Consequences**:
• Loss of trust and reputation
• Legal and financial penalties
• Damage to relationships and partnerships

**The Good News**: God offers forgiveness and restoration through Jesus Christ. In business, you can rebuild trust through consistent integrity and making things right where possible.

**Moving Forward**: Ask God for forgiveness, make amends where needed, and commit to biblical business practices going forward.`,
			Source:              models.SourceFallback,
			ScriptureReferences: []string{"Romans 6:23", "1 John 1:9"},
		}
	}
	return models.CoachingResponse{
		Answer: `That's an important ethical question. Biblical business ethics are rooted in integrity, honesty, and service to others.

**Key Principles**:
• "Whatever you do, work at it with all your heart, as working for the Lord" (Colossians 3:23)
• Choose righteousness over profit when they conflict
• Consider long-term impact on relationships and reputation
• Ask: "Does this honor God and serve others well?"

What specific ethical situation are you facing? I'd be happy to help you think through biblical principles that apply.`,
		Source:              models.SourceFallback,
		ScriptureReferences: []string{"Colossians 3:23"},
		FollowUpQuestions:   []string{"What specific situation prompted this question?"},
	}
}

func (c *Composer) theologyResponse(question string) models.CoachingResponse {
	q := normalize(question)
	if strings.Contains(q, "god") && strings.Contains(q, "care") && strings.Contains(q, "business") {
		return models.CoachingResponse{
			Answer: `Yes, God absolutely cares about business! Here's why:

**1. Work is God's design**: God created work and called it good (Genesis 1:28). Business is a way to participate in His creative work.

**2. Stewardship matters**: Jesus taught extensively about managing resources wisely (Luke 19:12-27). Business is stewardship of the gifts and opportunities God gives us.

**3. Service to others**: Business at its best serves people's genuine needs, which reflects God's heart for His people (Mark 12:31).

**4. Kingdom advancement**: Ethical businesses can fund ministry, provide good jobs, and demonstrate God's character in the marketplace.

God cares about all aspects of our lives, including how we work and serve others through business.`,
			Source:              models.SourceFallback,
			ScriptureReferences: []string{"Genesis 1:28", "Luke 19:12-27", "Mark 12:31"},
		}
	}
	return models.CoachingResponse{
		Answer: `That's an important theological question. While I can help you understand how biblical principles apply to business situations, for deeper theological questions, I'd encourage you to discuss this with your local pastor or biblical counselor.

IBAM operates from an evangelical Christian foundation, believing Scripture is our ultimate authority and that following Jesus should shape every aspect of our lives, including business.

How does this question relate to your business situation? I'd love to help you think through the practical business applications of biblical truth.`,
		Source:            models.SourceFallback,
		FollowUpQuestions: []string{"How does this relate to a specific business decision you're making?"},
	}
}

func (c *Composer) plannerResponse() models.CoachingResponse {
	var sections []string
	for _, s := range knowledge.PlannerSections {
		sections = append(sections, fmt.Sprintf("• **%s**: %s", s.Name, s.Description))
	}
	return models.CoachingResponse{
		Answer: fmt.Sprintf(`The IBAM Business Planner is %s.

**Sections Available**:
%s

**Features**:
%s

The planner integrates biblical principles throughout, helping you build a business that honors God while being practical and profitable.`,
			knowledge.PlannerPurpose, strings.Join(sections, "\n"), bulletList(knowledge.PlannerFeatures)),
		Source:            models.SourceFallback,
		FollowUpQuestions: []string{"Which section would you like to work on first?"},
	}
}

func (c *Composer) practicalResponse(question string) models.CoachingResponse {
	q := normalize(question)
	switch {
	case strings.Contains(q, "sales") || strings.Contains(q, "marketing") || strings.Contains(q, "budget") ||
		strings.Contains(q, "will i learn") || strings.Contains(q, "business skills") || strings.Contains(q, "practical"):
		return models.CoachingResponse{
			Answer: `Absolutely! IBAM teaches BOTH biblical principles AND practical business skills. You'll learn:

**📊 Financial Management**:
• Budgeting and financial planning with biblical stewardship
• Cost analysis and profit calculations
• Cash flow management

**📈 Marketing & Sales**:
• Customer discovery and market research
• Value proposition development
• Ethical sales techniques that serve customers

**⚙️ Operations**:
• Systems and processes for excellent service
• Quality control and customer satisfaction
• Team building and leadership

The difference with IBAM is that every practical skill is grounded in biblical principles. You learn HOW to do business excellently AND WHY it honors God when done with integrity and service.

This isn't just theology - it's real business education with a biblical foundation!`,
			Source: models.SourceFallback,
			FollowUpQuestions: []string{
				"Which business skill area interests you most?",
				"What specific business challenge are you facing?",
			},
		}
	case strings.Contains(q, "burger king") || strings.Contains(q, "job"):
		return models.CoachingResponse{
			Answer: `Great question! You can apply biblical business principles even in an everyday job:

**Customer Service Excellence**:
• Serve each customer as if serving Jesus (Colossians 3:23-24)
• Show genuine care and respect to everyone
• Go above and beyond what's expected

**Work Ethics**:
• Be reliable, honest, and diligent in all tasks
• Work with integrity even when no one is watching
• Use your time and the company's resources responsibly

**Leadership Opportunities**:
• Encourage and help coworkers
• Look for ways to improve processes or customer experience
• Train others with patience and kindness

Every job, no matter how simple it seems, can be a platform for demonstrating God's character and serving others excellently.`,
			Source:              models.SourceFallback,
			ScriptureReferences: []string{"Colossians 3:23-24"},
			FollowUpQuestions:   []string{"What specific aspect of your work situation would you like to improve?"},
		}
	}
	return models.CoachingResponse{
		Answer: `To apply biblical principles to your specific situation:

**1. Start with Scripture**: What biblical principles relate to your challenge?
**2. Seek God's guidance**: Pray for wisdom and direction
**3. Consider others**: How can you serve customers/colleagues better?
**4. Act with integrity**: Choose the right thing even when it's difficult
**5. Trust God's timing**: Be faithful in small things, trust Him with outcomes

What specific business challenge are you facing? I'd love to help you think through how to apply biblical wisdom to your unique situation.`,
		Source:            models.SourceFallback,
		FollowUpQuestions: []string{"What specific challenge are you working through right now?"},
	}
}

func (c *Composer) defaultResponse(question string) models.CoachingResponse {
	return models.CoachingResponse{
		Answer: fmt.Sprintf(`I understand you're asking about %q. Let me help you think through this from a biblical business perspective.

**Biblical Foundation**: Whatever you do, work at it with all your heart, as working for the Lord (Colossians 3:23).

**IBAM's Approach**:
• See business as a way to serve others and honor God
• Use biblical principles to guide decisions
• Build relationships based on trust and integrity
• Create value that genuinely helps people

**Next Steps**: Could you share more details about your specific situation? This would help me give you more targeted biblical and practical guidance.`, question),
		Source:              models.SourceFallback,
		ScriptureReferences: []string{"Colossians 3:23"},
		FollowUpQuestions: []string{
			"What specific challenge are you facing?",
			"How does this relate to your business goals?",
			"What biblical principles do you think might apply?",
		},
	}
}

func bulletList(items []string) string {
	var out []string
	for _, item := range items {
		out = append(out, "• "+item)
	}
	return strings.Join(out, "\n")
}
