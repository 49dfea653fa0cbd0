package requirements

import (
	"fmt"
	"strings"

	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/types"
)

// Explain produces a human-readable explanation of why a skill received its
// requirement class: employer declaration, market frequency, or neither.
func Explain(
	id types.SkillID,
	cls types.Classification,
	declaredMandatory, declaredPreferred bool,
	frequency float64,
	clusters map[types.SkillID][]types.SkillID,
) string {
	class := cls.ClassOf(id)

	var reasons []string
	switch {
	case declaredMandatory:
		reasons = append(reasons, "explicitly required by the employer")
	case declaredPreferred:
		reasons = append(reasons, "listed by the employer as nice-to-have")
	}

	if cls.Signal.FrequencyAvailable {
		reasons = append(reasons, fmt.Sprintf("appears in %.0f%% of market postings", frequency*100))
	} else {
		reasons = append(reasons, "no market data available")
	}

	if related := clusters[id]; len(related) > 0 {
		names := make([]string, 0, 2)
		for _, other := range related {
			names = append(names, string(other))
			if len(names) == 2 {
				break
			}
		}
		reasons = append(reasons, fmt.Sprintf("commonly paired with %s", strings.Join(names, ", ")))
	}

	return fmt.Sprintf("classified as %s because: %s",
		strings.ToUpper(string(class)), strings.Join(reasons, "; "))
}
