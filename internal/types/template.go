package types

// Question categories, in display priority order.
const (
	CategoryCritical        = "critical"
	CategoryProjectSpecific = "project_specific"
	CategoryStrengthen      = "strengthen"
)

// DefaultScoringWeight is used for questions that do not declare a weight.
const DefaultScoringWeight = 10.0

// Operator is the closed set of condition operators supported by template rules.
type Operator string

// Supported condition operators.
const (
	OpLess         Operator = "<"
	OpGreater      Operator = ">"
	OpLessEqual    Operator = "<="
	OpGreaterEqual Operator = ">="
	OpEqual        Operator = "=="
	OpNotEqual     Operator = "!="
	OpContains     Operator = "contains"
	OpNotContains  Operator = "not_contains"
	OpIn           Operator = "in"
	OpNotIn        Operator = "not_in"
)

// Condition is a declarative rule evaluated against an intake field.
type Condition struct {
	Field    string   `json:"field"`
	Operator Operator `json:"operator"`
	Value    any      `json:"value"`
}

// Question is a single readiness question from a funding template.
type Question struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Question string `json:"question"`
	Why      string `json:"why,omitempty"`
	HelpText string `json:"help_text,omitempty"`

	Format         string   `json:"format,omitempty"`
	ExpectedLength string   `json:"expected_length,omitempty"`
	Examples       []string `json:"examples,omitempty"`
	Required       bool     `json:"required,omitempty"`

	// ScoringWeight is nil when the template declares no weight; a declared
	// zero is honored as zero, not replaced by the default.
	ScoringWeight        *float64 `json:"scoring_weight,omitempty"`
	CompetitiveAdvantage string   `json:"competitive_advantage,omitempty"`

	// Conditional hides the question unless the rule evaluates true.
	Conditional *Condition `json:"conditional,omitempty"`
	// Triggers hides the question unless one of the phrases appears in the intake text.
	Triggers []string `json:"triggers,omitempty"`
	// RegionHints maps a region keyword to a hint shown when the intake region matches.
	RegionHints map[string]string `json:"smart_default,omitempty"`

	// Hint is populated during selection from RegionHints; empty in the stored document.
	Hint string `json:"hint,omitempty"`
}

// Weight returns the question's declared scoring weight, or the default when
// none is declared.
func (q *Question) Weight() float64 {
	if q.ScoringWeight != nil {
		return *q.ScoringWeight
	}
	return DefaultScoringWeight
}

// ChecklistItem is a single document or task from a template checklist.
type ChecklistItem struct {
	Item         string `json:"item"`
	Why          string `json:"why,omitempty"`
	TimeEstimate string `json:"time_estimate,omitempty"`
	Impact       string `json:"impact,omitempty"`
	HowToGet     string `json:"how_to_get,omitempty"`
	WhereToFind  string `json:"where_to_find,omitempty"`

	TemplateAvailable bool `json:"template_available,omitempty"`

	// Conditional restricts a project_specific item to matching intakes.
	// Critical and strengthen items are never conditionally filtered.
	Conditional *Condition `json:"conditional,omitempty"`
}

// ChecklistSpec groups checklist items into the three template buckets.
type ChecklistSpec struct {
	Critical        []ChecklistItem `json:"critical,omitempty"`
	ProjectSpecific []ChecklistItem `json:"project_specific,omitempty"`
	Strengthen      []ChecklistItem `json:"strengthen,omitempty"`
}

// Checklist is the intake-filtered selection from a ChecklistSpec.
type Checklist struct {
	Critical        []ChecklistItem `json:"critical"`
	ProjectSpecific []ChecklistItem `json:"project_specific"`
	Strengthen      []ChecklistItem `json:"strengthen"`
}

// Items returns every item across all three buckets.
func (c *Checklist) Items() []ChecklistItem {
	items := make([]ChecklistItem, 0, len(c.Critical)+len(c.ProjectSpecific)+len(c.Strengthen))
	items = append(items, c.Critical...)
	items = append(items, c.ProjectSpecific...)
	items = append(items, c.Strengthen...)
	return items
}

// FundingTemplate is a declarative, per-program document of questions and checklist
// items with conditional visibility rules. Loaded once and never mutated.
type FundingTemplate struct {
	ProgramID      string        `json:"program_id"`
	ProgramName    string        `json:"program_name"`
	Questions      []Question    `json:"questions"`
	ChecklistItems ChecklistSpec `json:"checklist_items"`
}
