package scoring

import (
	"fmt"
	"strings"

	"github.com/SeytekM/SmartBuilderPro/internal/domain"
)

// Recommendation messages. The rule order and thresholds are part of the
// scoring contract; the wording is presentation and may be localized.
const (
	MsgSafety        = "• Improve safety infrastructure (police, fire stations)"
	MsgEfficiency    = "• Develop the road network and public transport"
	MsgMissingPrefix = "• Add: "
	MsgEnvironmental = "• Increase the amount of green space"
	MsgWellDeveloped = "• The territory is well developed. Maintain its current state."
)

// missingLabels maps a service category to the label used in the "Add: ..."
// recommendation.
var missingLabels = map[string]string{
	"school":   "schools",
	"hospital": "medical facilities",
	"park":     "parks",
}

// Recommendations generates the advice text for a scorecard. Rules fire in a
// fixed order (safety, efficiency, accessibility, environmental) for every
// sub-score below the configured threshold, one message per line. When no
// rule fires a single maintenance message is emitted.
func (e *Engine) Recommendations(safety, efficiency, accessibility, environmental float64, amenities domain.AmenitySet) string {
	cfg := e.cfg.Recommendation
	var recs []string

	if safety < cfg.Threshold {
		recs = append(recs, MsgSafety)
	}

	if efficiency < cfg.Threshold {
		recs = append(recs, MsgEfficiency)
	}

	if accessibility < cfg.Threshold {
		var missing []string
		for _, category := range cfg.MissingCategories {
			if amenities.Count(category) == 0 {
				missing = append(missing, labelFor(category))
			}
		}
		if len(missing) > 0 {
			recs = append(recs, MsgMissingPrefix+strings.Join(missing, ", "))
		}
	}

	if environmental < cfg.Threshold {
		recs = append(recs, MsgEnvironmental)
	}

	if len(recs) == 0 {
		recs = append(recs, MsgWellDeveloped)
	}

	return strings.Join(recs, "\n")
}

func labelFor(category string) string {
	if label, ok := missingLabels[category]; ok {
		return label
	}
	return fmt.Sprintf("%ss", category)
}
