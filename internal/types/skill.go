// Package types provides type definitions for structured data used throughout the hiring pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillID is the canonical, lower-case identifier of a skill.
// The skill space is open-world: an unrecognized raw string becomes its own
// canonical id rather than being dropped, so SkillID is a validated string
// type, not a closed enumeration.
type SkillID string

// Category buckets a canonical skill into a broad technology area.
type Category string

// Known skill categories.
const (
	CategoryBackend  Category = "backend"
	CategoryFrontend Category = "frontend"
	CategoryDevops   Category = "devops"
	CategoryML       Category = "ml"
	CategoryDatabase Category = "database"
	CategoryOther    Category = "other"
)

// Posting represents a single job posting supplied by a market-search collaborator.
// Only the skill list and the title are consumed; the title is used as a premium
// frequency signal when computing skill importance.
type Posting struct {
	Title  string   `json:"title,omitempty"`
	Skills []string `json:"skills"`
}
