package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/evaluation"
	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/gate"
	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one candidate against a classified role",
	Long:  "Scores a single candidate's evidence against a previously produced classification report, applying the mandatory-skill gate, the hard-reject rule and the candidate's risk/boost adjustments.",
	RunE:  runScore,
}

var (
	scoreClassificationFile string
	scoreCandidateFile      string
	scoreOutput             string
	scoreMinSkillScore      float64
	scoreMinCoverage        float64
	scoreHardFailCap        int
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreClassificationFile, "classification", "c", "", "Path to classification report JSON produced by classify (required)")
	scoreCmd.Flags().StringVarP(&scoreCandidateFile, "candidate", "p", "", "Path to CandidateProfile JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output decision JSON file (defaults to stdout)")
	scoreCmd.Flags().Float64Var(&scoreMinSkillScore, "min-skill-score", gate.DefaultMinSkillScore, "Minimum evidence score for a skill to count as covered")
	scoreCmd.Flags().Float64Var(&scoreMinCoverage, "min-mandatory-coverage", gate.DefaultMinMandatoryCoverage, "Mandatory coverage ratio below which the candidate hard-fails")
	scoreCmd.Flags().IntVar(&scoreHardFailCap, "hard-fail-cap", gate.DefaultHardFailScoreCap, "Score ceiling applied on hard fail")

	if err := scoreCmd.MarkFlagRequired("classification"); err != nil {
		panic(fmt.Sprintf("failed to mark classification flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	// 1. Load the classification report
	clsContent, err := os.ReadFile(scoreClassificationFile)
	if err != nil {
		return fmt.Errorf("failed to read classification file %s: %w", scoreClassificationFile, err)
	}

	var report classificationReport
	if err := json.Unmarshal(clsContent, &report); err != nil {
		return fmt.Errorf("failed to unmarshal classification JSON: %w", err)
	}

	// 2. Load the candidate profile
	candidateContent, err := os.ReadFile(scoreCandidateFile)
	if err != nil {
		return fmt.Errorf("failed to read candidate file %s: %w", scoreCandidateFile, err)
	}

	var candidate types.CandidateProfile
	if err := json.Unmarshal(candidateContent, &candidate); err != nil {
		return fmt.Errorf("failed to unmarshal candidate JSON: %w", err)
	}
	if err := candidate.Validate(); err != nil {
		return fmt.Errorf("invalid candidate profile: %w", err)
	}

	// 3. Score
	cfg := gate.DefaultScorerConfig()
	cfg.MinSkillScore = scoreMinSkillScore
	cfg.MinMandatoryCoverage = scoreMinCoverage
	cfg.HardFailScoreCap = scoreHardFailCap

	scorer, err := gate.NewScorer(cfg)
	if err != nil {
		return err
	}

	result := evaluation.ScoreOne(report.Classification, candidate, scorer)

	// 4. Write the decision
	jsonOutput, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal decision to JSON: %w", err)
	}

	if scoreOutput == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonOutput))
		return nil
	}

	outputDir := filepath.Dir(scoreOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(scoreOutput, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write decision to %s: %w", scoreOutput, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Scored candidate %s: %s (%d/100)\n",
		result.CandidateID, result.Decision.Verdict, result.Decision.Score)

	return nil
}
