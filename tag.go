package envkit

import "fmt"

// Tag represents a deployment environment.
type Tag string

const (
	// Dev for development environments.
	Dev Tag = "dev"
	// Test for test environments.
	Test Tag = "test"
	// Stg for staging environments.
	Stg Tag = "stg"
	// Prod for production environments.
	Prod Tag = "prod"
)

// DefaultTag is the tag assumed when no environment information is available.
const DefaultTag = Dev

// tagAliases is the complete set of accepted spellings. The table is part of
// the public contract: matching is exact and case-sensitive, so "DeV" is not
// accepted even though "dev", "Dev" and "DEV" are.
var tagAliases = map[string]Tag{
	"develop": Dev,
	"Develop": Dev,
	"dev":     Dev,
	"Dev":     Dev,
	"DEV":     Dev,
	"d":       Dev,
	"D":       Dev,

	"test": Test,
	"Test": Test,
	"TEST": Test,
	"t":    Test,
	"T":    Test,

	"staging": Stg,
	"Staging": Stg,
	"stg":     Stg,
	"Stg":     Stg,
	"STG":     Stg,
	"s":       Stg,
	"S":       Stg,

	"production": Prod,
	"Production": Prod,
	"prod":       Prod,
	"Prod":       Prod,
	"PROD":       Prod,
	"p":          Prod,
	"P":          Prod,
}

// ParseTag converts a loosely-formatted environment string into a Tag. It
// accepts only the spellings listed in the alias table; any other input,
// including the empty string, yields an error wrapping ErrUnknownTag.
func ParseTag(s string) (Tag, error) {
	if tag, ok := tagAliases[s]; ok {
		return tag, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTag, s)
}

// IsDev reports whether the tag is Dev.
func (t Tag) IsDev() bool { return t == Dev }

// IsTest reports whether the tag is Test.
func (t Tag) IsTest() bool { return t == Test }

// IsStg reports whether the tag is Stg.
func (t Tag) IsStg() bool { return t == Stg }

// IsProd reports whether the tag is Prod.
func (t Tag) IsProd() bool { return t == Prod }

// String returns the canonical spelling of the tag.
func (t Tag) String() string { return string(t) }
