package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/market"
	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/requirements"
	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/schemas"
	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/skills"
	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/types"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a role's skill requirements",
	Long:  "Classifies every skill of a role into mandatory, preferred or optional, merging employer declarations (which always win) with market posting frequency, and writes a classification report with per-skill explanations.",
	RunE:  runClassify,
}

var (
	classifyRoleFile           string
	classifyOutput             string
	classifyMandatoryThreshold float64
	classifyPreferredThreshold float64
)

func init() {
	classifyCmd.Flags().StringVarP(&classifyRoleFile, "role", "r", "", "Path to input RoleRequest JSON file (required)")
	classifyCmd.Flags().StringVarP(&classifyOutput, "out", "o", "", "Path to output classification report JSON file (required)")
	classifyCmd.Flags().Float64Var(&classifyMandatoryThreshold, "mandatory-threshold", requirements.DefaultMandatoryThreshold, "Market frequency at or above which an undeclared skill is mandatory")
	classifyCmd.Flags().Float64Var(&classifyPreferredThreshold, "preferred-threshold", requirements.DefaultPreferredThreshold, "Market frequency at or above which an undeclared skill is preferred")

	if err := classifyCmd.MarkFlagRequired("role"); err != nil {
		panic(fmt.Sprintf("failed to mark role flag as required: %v", err))
	}
	if err := classifyCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(classifyCmd)
}

// classificationReport is the classify command output: the classification plus
// the transparency data behind it.
type classificationReport struct {
	Role           string                             `json:"role"`
	Classification types.Classification               `json:"classification"`
	Importance     map[types.SkillID]float64          `json:"importance_scores"`
	SkillClusters  map[types.SkillID][]types.SkillID  `json:"skill_clusters,omitempty"`
	Explanations   map[types.SkillID]string           `json:"explanations"`
	Categories     map[types.Category][]types.SkillID `json:"skills_by_category"`
}

func runClassify(_ *cobra.Command, _ []string) error {
	// 1. Load RoleRequest from JSON file
	roleContent, err := os.ReadFile(classifyRoleFile)
	if err != nil {
		return fmt.Errorf("failed to read role file %s: %w", classifyRoleFile, err)
	}

	var role types.RoleRequest
	if err := json.Unmarshal(roleContent, &role); err != nil {
		return fmt.Errorf("failed to unmarshal role JSON: %w", err)
	}
	if err := role.Validate(); err != nil {
		return fmt.Errorf("invalid role request: %w", err)
	}

	// 2. Validate input against schema (optional but recommended)
	schemaPath := schemas.ResolveSchemaPath("schemas/role_request.schema.json")
	if schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, classifyRoleFile); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Input role request failed schema validation: %v\n", err)
		}
	}

	// 3. Classify
	classifier, err := requirements.NewClassifier(requirements.Config{
		MandatoryThreshold: classifyMandatoryThreshold,
		PreferredThreshold: classifyPreferredThreshold,
	})
	if err != nil {
		return err
	}

	allSkills := make([]string, 0, len(role.MandatorySkills)+len(role.PreferredSkills)+len(role.DescriptionSkills))
	allSkills = append(allSkills, role.MandatorySkills...)
	allSkills = append(allSkills, role.PreferredSkills...)
	allSkills = append(allSkills, role.DescriptionSkills...)
	skillIDs := skills.NormalizeBatch(allSkills)

	freq := market.ComputeFrequencies(role.Postings, skillIDs)
	cls := classifier.Classify(role.MandatorySkills, role.PreferredSkills, allSkills, freq)

	// 4. Build the transparency report
	report := classificationReport{
		Role:           role.Role,
		Classification: cls,
		Importance:     market.ComputeImportance(role.Postings, skillIDs),
		SkillClusters:  market.CoOccurrence(role.Postings, skillIDs),
		Explanations:   make(map[types.SkillID]string, len(cls.Classes)),
		Categories:     skills.GroupByCategory(skillIDs),
	}

	declaredMandatory := skills.NormalizeSet(role.MandatorySkills)
	declaredPreferred := skills.NormalizeSet(role.PreferredSkills)
	for id := range cls.Classes {
		report.Explanations[id] = requirements.Explain(id, cls,
			declaredMandatory[id], declaredPreferred[id], freq.Ratio(id), report.SkillClusters)
	}

	// 5. Marshal to JSON with indentation and write
	jsonOutput, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal classification report to JSON: %w", err)
	}

	outputDir := filepath.Dir(classifyOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(classifyOutput, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write classification report to %s: %w", classifyOutput, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully classified %d skills to %s\n", len(cls.Classes), classifyOutput)

	return nil
}
