package model

import "fmt"

// TestType identifies which assessment a token, session or result belongs to.
// The upstream API prefixes every route with the test type's path segment.
type TestType string

const (
	TestTypeDISC TestType = "disc"
	TestTypeLove TestType = "love-languages"
)

// ParseTestType accepts the path segments used by both the upstream API and
// the dashboard ("disc", "love-languages", plus the legacy "love" alias).
func ParseTestType(raw string) (TestType, error) {
	switch raw {
	case "disc":
		return TestTypeDISC, nil
	case "love-languages", "love":
		return TestTypeLove, nil
	}
	return "", fmt.Errorf("unknown test type %q", raw)
}

// PathSegment is the upstream route prefix for this test type.
func (t TestType) PathSegment() string {
	return string(t)
}

// LinkInfoPath returns the upstream path for fetching link/session metadata.
// The upstream exposes it under a different name per test type.
func (t TestType) LinkInfoPath() string {
	if t == TestTypeDISC {
		return "disc/test-link"
	}
	return "love-languages/link"
}

// Dimensions lists the trait dimensions this test measures, in display order.
// Every question maps to exactly one of these.
func (t TestType) Dimensions() []string {
	if t == TestTypeDISC {
		return []string{"D", "I", "S", "C"}
	}
	return []string{"words", "acts", "gifts", "time", "touch"}
}

// DimensionLabel maps a raw score key to the label shown on result bars.
// Unknown keys are shown as-is so a vocabulary change upstream still renders.
func (t TestType) DimensionLabel(dimension string) string {
	labels := discDimensionLabels
	if t == TestTypeLove {
		labels = loveDimensionLabels
	}
	if label, ok := labels[dimension]; ok {
		return label
	}
	return dimension
}

var discDimensionLabels = map[string]string{
	"D": "Dominância",
	"I": "Influência",
	"S": "Estabilidade",
	"C": "Conformidade",
}

var loveDimensionLabels = map[string]string{
	"words": "Palavras de Afirmação",
	"acts":  "Atos de Serviço",
	"gifts": "Presentes",
	"time":  "Tempo de Qualidade",
	"touch": "Toque Físico",
}
