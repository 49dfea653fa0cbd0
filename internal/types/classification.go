package types

// RequirementClass is the final requirement level assigned to a skill for a role.
type RequirementClass string

// Requirement classes, strongest first.
const (
	ClassMandatory RequirementClass = "mandatory"
	ClassPreferred RequirementClass = "preferred"
	ClassOptional  RequirementClass = "optional"
)

// MarketSignal records the market inputs a classification was derived from,
// kept for observability and report transparency.
type MarketSignal struct {
	PostingsAnalyzed   int     `json:"postings_analyzed"`
	MandatoryThreshold float64 `json:"mandatory_threshold"`
	PreferredThreshold float64 `json:"preferred_threshold"`
	FrequencyAvailable bool    `json:"frequency_available"`
	EmployerOverride   bool    `json:"employer_override_applied"`
}

// Classification holds the per-skill requirement classes for one role.
// Skill order within each class list follows first-seen input order, which
// keeps the output deterministic for identical inputs.
type Classification struct {
	Classes map[SkillID]RequirementClass `json:"classes"`

	Mandatory []SkillID `json:"mandatory"`
	Preferred []SkillID `json:"preferred"`
	Optional  []SkillID `json:"optional"`

	MandatoryCount int `json:"mandatory_count"`
	PreferredCount int `json:"preferred_count"`
	OptionalCount  int `json:"optional_count"`

	Signal MarketSignal `json:"market_signal"`
}

// ClassOf returns the class assigned to a skill. Skills the classification
// has never seen are optional.
func (c *Classification) ClassOf(id SkillID) RequirementClass {
	if class, ok := c.Classes[id]; ok {
		return class
	}
	return ClassOptional
}
