package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeytekM/SmartBuilderPro/internal/domain"
	"github.com/SeytekM/SmartBuilderPro/pkg/geo"
)

func TestRecommendations_AllLowFiresEveryRuleInOrder(t *testing.T) {
	e := defaultEngine()
	empty := domain.NewAmenitySet()

	got := e.Recommendations(50, 40, 30, 50, empty)
	lines := strings.Split(got, "\n")

	require.Len(t, lines, 4)
	assert.Equal(t, MsgSafety, lines[0])
	assert.Equal(t, MsgEfficiency, lines[1])
	assert.Equal(t, MsgMissingPrefix+"schools, medical facilities, parks", lines[2])
	assert.Equal(t, MsgEnvironmental, lines[3])
}

func TestRecommendations_MissingListOnlyNamesEmptyCategories(t *testing.T) {
	e := defaultEngine()
	set := setWith(map[string][]geo.Point{
		"school": {at(100)},
		"park":   {at(100)},
	})

	got := e.Recommendations(70, 70, 50, 70, set)
	assert.Equal(t, MsgMissingPrefix+"medical facilities", got)
}

func TestRecommendations_LowAccessibilityWithNothingMissing(t *testing.T) {
	e := defaultEngine()
	set := setWith(map[string][]geo.Point{
		"school":   {at(100)},
		"hospital": {at(100)},
		"park":     {at(100)},
	})

	// Accessibility is low but no tracked category is empty, so the rule
	// emits nothing and the fallback takes over.
	got := e.Recommendations(70, 70, 59, 70, set)
	assert.Equal(t, MsgWellDeveloped, got)
}

func TestRecommendations_AllScoresHealthy(t *testing.T) {
	e := defaultEngine()
	empty := domain.NewAmenitySet()

	got := e.Recommendations(80, 75, 60, 65, empty)
	assert.Equal(t, MsgWellDeveloped, got)
}

func TestRecommendations_ThresholdIsExclusive(t *testing.T) {
	e := defaultEngine()
	empty := domain.NewAmenitySet()

	// Exactly 60 does not fire a rule; 59.99 does.
	assert.Equal(t, MsgWellDeveloped, e.Recommendations(60, 60, 60, 60, empty))
	assert.Equal(t, MsgEnvironmental, e.Recommendations(60, 60, 60, 59.99, empty))
}

func TestRecommendations_SingleRule(t *testing.T) {
	e := defaultEngine()
	empty := domain.NewAmenitySet()

	assert.Equal(t, MsgSafety, e.Recommendations(59, 70, 70, 70, empty))
	assert.Equal(t, MsgEfficiency, e.Recommendations(70, 59, 70, 70, empty))
}
