package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/config"
	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/db"
	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/evaluation"
	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/observability"
	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/schemas"
	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/types"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a batch of candidates against a role",
	Long:  "Runs the full pipeline: classifies the role's requirements from employer declarations and market postings, scores every candidate concurrently against the mandatory gate, and writes a run report. Decisions are persisted to PostgreSQL when a database URL is configured.",
	RunE:  runEvaluate,
}

var (
	evaluateRoleFile       string
	evaluateCandidatesFile string
	evaluateConfigFile     string
	evaluateOutput         string
	evaluateConcurrency    int
	evaluateDatabaseURL    string
	evaluateVerbose        bool
)

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateRoleFile, "role", "r", "", "Path to RoleRequest JSON file")
	evaluateCmd.Flags().StringVarP(&evaluateCandidatesFile, "candidates", "p", "", "Path to candidate profiles JSON file")
	evaluateCmd.Flags().StringVarP(&evaluateConfigFile, "config", "c", "", "Path to JSON config file with thresholds and defaults")
	evaluateCmd.Flags().StringVarP(&evaluateOutput, "out", "o", "", "Path to output run report JSON file")
	evaluateCmd.Flags().IntVar(&evaluateConcurrency, "concurrency", 0, "Parallel candidate scoring limit (default 4)")
	evaluateCmd.Flags().StringVar(&evaluateDatabaseURL, "database-url", "", "PostgreSQL URL for run persistence (or DATABASE_URL env)")
	evaluateCmd.Flags().BoolVarP(&evaluateVerbose, "verbose", "v", false, "Print classification and per-candidate decision summaries")

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	// 1. Merge flags over the optional config file
	cfg := config.Config{
		Role:        evaluateRoleFile,
		Candidates:  evaluateCandidatesFile,
		Output:      evaluateOutput,
		Concurrency: evaluateConcurrency,
		DatabaseURL: evaluateDatabaseURL,
		Verbose:     evaluateVerbose,
	}
	if evaluateConfigFile != "" {
		fileCfg, err := config.LoadConfig(evaluateConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.Role == "" {
		return fmt.Errorf("role file is required (flag --role or config)")
	}
	if cfg.Candidates == "" {
		return fmt.Errorf("candidates file is required (flag --candidates or config)")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// 2. Load and schema-check the input documents
	role, err := loadRole(cfg.Role)
	if err != nil {
		return err
	}
	candidates, err := loadCandidates(cfg.Candidates)
	if err != nil {
		return err
	}

	// 3. Optional persistence
	opts := cfg.EvaluationOptions()
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(cmd.Context(), cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer database.Close()
		opts.Database = database
	}

	// 4. Run the evaluation
	report, err := evaluation.Run(cmd.Context(), *role, candidates, opts)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintClassification(&report.Classification)
		for i := range report.Results {
			printer.PrintDecision(&report.Results[i])
		}
		printer.PrintRunSummary(report)
	}

	// 5. Write the run report
	jsonOutput, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run report to JSON: %w", err)
	}

	if cfg.Output == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonOutput))
		return nil
	}

	outputDir := filepath.Dir(cfg.Output)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(cfg.Output, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write run report to %s: %w", cfg.Output, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Evaluated %d candidates for %q, report written to %s\n",
		len(report.Results), report.Role, cfg.Output)

	return nil
}

// loadRole reads, schema-checks and validates a RoleRequest document.
func loadRole(path string) (*types.RoleRequest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read role file %s: %w", path, err)
	}

	schemaPath := schemas.ResolveSchemaPath("schemas/role_request.schema.json")
	if schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Role request failed schema validation: %v\n", err)
		}
	}

	var role types.RoleRequest
	if err := json.Unmarshal(content, &role); err != nil {
		return nil, fmt.Errorf("failed to unmarshal role JSON: %w", err)
	}
	return &role, nil
}

// loadCandidates reads, schema-checks and validates the candidate profiles document.
func loadCandidates(path string) ([]types.CandidateProfile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates file %s: %w", path, err)
	}

	schemaPath := schemas.ResolveSchemaPath("schemas/candidate_profiles.schema.json")
	if schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Candidate profiles failed schema validation: %v\n", err)
		}
	}

	var candidates []types.CandidateProfile
	if err := json.Unmarshal(content, &candidates); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidates JSON: %w", err)
	}
	return candidates, nil
}
