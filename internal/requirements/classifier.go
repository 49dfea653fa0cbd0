package requirements

import (
	"fmt"

	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/market"
	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/skills"
	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/types"
)

// Classifier assigns requirement classes to role skills. Employer declarations
// are ground truth and always dominate; market frequency is only a fallback
// heuristic for skills the employer did not explicitly rank.
type Classifier struct {
	cfg Config
}

// NewClassifier constructs a Classifier, failing fast with a ConfigError when
// the threshold invariants are violated.
func NewClassifier(cfg Config) (*Classifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to construct classifier: %w", err)
	}
	return &Classifier{cfg: cfg}, nil
}

// Config returns the classifier's threshold configuration.
func (c *Classifier) Config() Config {
	return c.cfg
}

// Classify merges employer-declared mandatory and preferred skill lists with
// frequency-derived classes for the remaining role skills. All inputs are raw
// strings and are normalized first. The result is deterministic for identical
// inputs: class lists keep first-seen input order.
//
// Classification is two-stage:
//  1. employer mandatory -> mandatory, employer preferred -> preferred
//     (terminal, market data can never downgrade either);
//  2. remaining role skills classified purely from posting frequency against
//     the configured thresholds.
func (c *Classifier) Classify(
	employerMandatory, employerPreferred, allRoleSkills []string,
	freq market.FrequencyReport,
) types.Classification {
	cls := types.Classification{
		Classes: make(map[types.SkillID]types.RequirementClass),
		Signal: types.MarketSignal{
			PostingsAnalyzed:   freq.PostingsAnalyzed,
			MandatoryThreshold: c.cfg.MandatoryThreshold,
			PreferredThreshold: c.cfg.PreferredThreshold,
			FrequencyAvailable: freq.Available,
		},
	}

	mandatory := skills.NormalizeBatch(employerMandatory)
	preferred := skills.NormalizeBatch(employerPreferred)
	roleSkills := skills.NormalizeBatch(allRoleSkills)
	cls.Signal.EmployerOverride = len(mandatory) > 0 || len(preferred) > 0

	// Stage 1: employer declarations, terminal.
	for _, id := range mandatory {
		cls.Classes[id] = types.ClassMandatory
		cls.Mandatory = append(cls.Mandatory, id)
	}
	for _, id := range preferred {
		if _, assigned := cls.Classes[id]; assigned {
			continue
		}
		cls.Classes[id] = types.ClassPreferred
		cls.Preferred = append(cls.Preferred, id)
	}

	// Stage 2: undeclared role skills, classified from market frequency.
	// With no frequency data every ratio is 0.0, so these fall through to
	// optional and only the employer declarations carry weight.
	for _, id := range roleSkills {
		if _, assigned := cls.Classes[id]; assigned {
			continue
		}
		class := c.classifyByFrequency(freq.Ratio(id))
		cls.Classes[id] = class
		switch class {
		case types.ClassMandatory:
			cls.Mandatory = append(cls.Mandatory, id)
		case types.ClassPreferred:
			cls.Preferred = append(cls.Preferred, id)
		case types.ClassOptional:
			cls.Optional = append(cls.Optional, id)
		}
	}

	cls.MandatoryCount = len(cls.Mandatory)
	cls.PreferredCount = len(cls.Preferred)
	cls.OptionalCount = len(cls.Optional)

	return cls
}

// classifyByFrequency maps a posting frequency ratio to a requirement class.
func (c *Classifier) classifyByFrequency(ratio float64) types.RequirementClass {
	switch {
	case ratio >= c.cfg.MandatoryThreshold:
		return types.ClassMandatory
	case ratio >= c.cfg.PreferredThreshold:
		return types.ClassPreferred
	default:
		return types.ClassOptional
	}
}
