package rubric

import "regexp"

type subSpec struct {
	name         string
	max          int
	signal       *regexp.Regexp
	missingIssue string
}

func (s subSpec) hits(lower string) int {
	return len(s.signal.FindAllStringIndex(lower, -1))
}

type dimensionSpec struct {
	name     string
	synonyms []string
	subs     []subSpec
}

// All signal patterns run against lowercased text. Month names require a
// trailing number so the modal verb "may" cannot pass as a date.
var (
	definitionSignal = regexp.MustCompile(`\b(currently|today|existing|manual(ly)?|inefficien[a-z]*|error[- ]prone|bottleneck[s]?|gap[s]?|lacks? of|pain point[s]?|struggl[a-z]+|problem[s]?)\b`)
	urgencySignal    = regexp.MustCompile(`\b(urgent[a-z]*|critical|immediate[a-z]*|risk[a-z]*|deadline[s]?|closing window|losing|lost|costs? (us|the)|every (day|week|month|quarter))\b`)
	alignmentSignal  = regexp.MustCompile(`\b(goals?|objectives?|strateg[a-z]+|okrs?|priorit[a-z]+|mission|vision|company[- ]wide|organization[a-z]*)\b`)

	approachSignal   = regexp.MustCompile(`\b(we (will|propose|recommend)|build|implement[a-z]*|adopt|migrate|introduce|deploy|integrate|replace|redesign)\b`)
	actionableSignal = regexp.MustCompile(`\b(step \d+|deliverables?|action items?|tasks?|owners?|workstreams?|first,|then we|next,|finally)\b`)
	rationaleSignal  = regexp.MustCompile(`\b(because|rationale|evidence|data shows?|benchmark[a-z]*|compared (to|with)|alternatives?|trade[- ]?offs?|evaluat[a-z]+)\b`)

	impactSignal  = regexp.MustCompile(`\b(increas[a-z]+|decreas[a-z]+|reduc[a-z]+|improv[a-z]+|sav[a-z]+|grow[a-z]*|accelerat[a-z]+|eliminat[a-z]+|unlock[a-z]*)\b`)
	metricsSignal = regexp.MustCompile(`[$€£]\s?\d[\d,]*(\.\d+)?[km]?\b|\b\d+(\.\d+)?\s?%|\b\d+(\.\d+)?x\b|\b\d+\s?(hours?|ftes?)\b`)
	valueSignal   = regexp.MustCompile(`\b(revenue|costs?|savings?|retention|churn|efficiency|productivity|margins?|satisfaction|nps|roi|payback)\b`)

	phasesSignal   = regexp.MustCompile(`\bphase\s+(\d+|one|two|three|four|five)\b|\b(step|milestone|sprint|stage|week)\s+\d+\b`)
	timelineSignal = regexp.MustCompile(`\bq[1-4]\s?'?\d{2,4}\b|\bq[1-4]\b|\b20\d{2}\b|\b\d+\s?(weeks?|months?|days?|sprints?)\b|\b(january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,4}\b`)
	resourceSignal = regexp.MustCompile(`\b(teams?|engineers?|designers?|headcount|budget[a-z]*|resourc[a-z]+|staff[a-z]*|ftes?|contractors?|owners?|analysts?)\b`)
)

var dimensionSpecs = []dimensionSpec{
	{
		name:     "Problem Statement",
		synonyms: []string{"problem statement", "problem", "challenge", "background", "current state", "pain point", "opportunity"},
		subs: []subSpec{
			{name: "Definition", max: 10, signal: definitionSignal, missingIssue: "Problem is not grounded in the current state (no concrete deficiencies named)"},
			{name: "Urgency", max: 8, signal: urgencySignal, missingIssue: "No urgency signal (risk, deadline, cost of waiting)"},
			{name: "Alignment", max: 7, signal: alignmentSignal, missingIssue: "No link to goals, strategy, or priorities"},
		},
	},
	{
		name:     "Proposed Solution",
		synonyms: []string{"proposed solution", "solution", "proposal", "approach", "recommendation"},
		subs: []subSpec{
			{name: "Approach", max: 10, signal: approachSignal, missingIssue: "No concrete approach verbs (build, implement, migrate...)"},
			{name: "Actionable", max: 8, signal: actionableSignal, missingIssue: "No actionable breakdown (steps, deliverables, owners)"},
			{name: "Rationale", max: 7, signal: rationaleSignal, missingIssue: "No rationale or comparison against alternatives"},
		},
	},
	{
		name:     "Business Impact",
		synonyms: []string{"business impact", "impact", "benefits", "value", "outcomes", "expected results", "return on investment", "roi"},
		subs: []subSpec{
			{name: "Impact", max: 10, signal: impactSignal, missingIssue: "No stated direction of change (increase, reduce, save)"},
			{name: "Metrics", max: 10, signal: metricsSignal, missingIssue: "No measurable figures ($, %, multiples)"},
			{name: "Value", max: 5, signal: valueSignal, missingIssue: "No business value vocabulary (revenue, savings, retention)"},
		},
	},
	{
		name:     "Implementation Plan",
		synonyms: []string{"implementation plan", "implementation", "plan", "roadmap", "timeline", "milestones", "execution", "rollout"},
		subs: []subSpec{
			{name: "Phases", max: 10, signal: phasesSignal, missingIssue: "No phased breakdown (Phase 1, Step 2, Sprint 3...)"},
			{name: "Timeline", max: 8, signal: timelineSignal, missingIssue: "No dates, quarters, or durations"},
			{name: "Resources", max: 7, signal: resourceSignal, missingIssue: "No resourcing detail (team, budget, headcount)"},
		},
	},
}
