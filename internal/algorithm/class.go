package algorithm

import (
	"fmt"
	"slices"
	"strings"

	mpwerrors "github.com/PolarWolf314/mpw/internal/errors"
)

// PasswordClass selects the template list used to render a site password.
type PasswordClass int

const (
	MaximumSecurityPassword PasswordClass = iota + 1
	LongPassword
	MediumPassword
	ShortPassword
	BasicPassword
	PIN
)

// DefaultClass is used for sites that do not name a type.
const DefaultClass = LongPassword

var classNames = map[PasswordClass]string{
	MaximumSecurityPassword: "MaximumSecurityPassword",
	LongPassword:            "LongPassword",
	MediumPassword:          "MediumPassword",
	ShortPassword:           "ShortPassword",
	BasicPassword:           "BasicPassword",
	PIN:                     "PIN",
}

var classAliases = map[string]PasswordClass{
	"max":     MaximumSecurityPassword,
	"maximum": MaximumSecurityPassword,
	"long":    LongPassword,
	"medium":  MediumPassword,
	"med":     MediumPassword,
	"short":   ShortPassword,
	"basic":   BasicPassword,
	"pin":     PIN,
}

// Classes returns every password class in canonical order.
func Classes() []PasswordClass {
	return []PasswordClass{
		MaximumSecurityPassword,
		LongPassword,
		MediumPassword,
		ShortPassword,
		BasicPassword,
		PIN,
	}
}

// String returns the canonical document name of the class.
func (c PasswordClass) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return fmt.Sprintf("PasswordClass(%d)", int(c))
}

// Valid reports whether c has a template list.
func (c PasswordClass) Valid() bool {
	_, ok := templateTable[c]
	return ok
}

// TemplateLengths returns the sorted set of password lengths the class can produce.
func (c PasswordClass) TemplateLengths() []int {
	var lengths []int
	for _, tpl := range templateTable[c] {
		if !slices.Contains(lengths, len(tpl)) {
			lengths = append(lengths, len(tpl))
		}
	}
	slices.Sort(lengths)
	return lengths
}

// ParsePasswordClass accepts a canonical class name or a short alias, ignoring case.
func ParsePasswordClass(name string) (PasswordClass, error) {
	trimmed := strings.TrimSpace(name)
	for class, canonical := range classNames {
		if strings.EqualFold(trimmed, canonical) {
			return class, nil
		}
	}
	if class, ok := classAliases[strings.ToLower(trimmed)]; ok {
		return class, nil
	}
	return 0, fmt.Errorf("%q: %w", name, mpwerrors.ErrUnknownPasswordClass)
}

// MarshalText writes the canonical name so documents stay readable by other implementations.
func (c PasswordClass) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%s: %w", c, mpwerrors.ErrUnknownPasswordClass)
	}
	return []byte(c.String()), nil
}

// UnmarshalText parses a class name. An empty value means DefaultClass.
func (c *PasswordClass) UnmarshalText(text []byte) error {
	if len(strings.TrimSpace(string(text))) == 0 {
		*c = DefaultClass
		return nil
	}
	parsed, err := ParsePasswordClass(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
