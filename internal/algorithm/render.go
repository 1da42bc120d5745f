package algorithm

import (
	"fmt"
	"strings"

	mpwerrors "github.com/PolarWolf314/mpw/internal/errors"
)

// RenderPassword turns a site seed into a password of the given class.
// seed[0] picks the template and seed[i+1] picks the character for symbol i.
func RenderPassword(seed *SiteSeed, class PasswordClass) (string, error) {
	templates, ok := templateTable[class]
	if !ok {
		return "", fmt.Errorf("%s: %w", class, mpwerrors.ErrUnknownPasswordClass)
	}
	if seed == nil {
		return "", fmt.Errorf("%w: missing site seed", mpwerrors.ErrSigningFailure)
	}

	template := templates[int(seed[0])%len(templates)]

	var b strings.Builder
	b.Grow(len(template))
	for i := 0; i < len(template); i++ {
		group := characterGroups[template[i]]
		b.WriteByte(group[int(seed[i+1])%len(group)])
	}
	return b.String(), nil
}
