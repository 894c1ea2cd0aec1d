package ports

import (
	"context"

	"github.com/aretw0/morse/pkg/alphabet"
	"github.com/aretw0/morse/pkg/domain"
)

// Translator is the primary interface used by adapters (HTTP, MCP, REPL,
// live sessions).
type Translator interface {
	// Translate converts input in the given direction.
	// Errors come only from the input guard; the conversion itself is total.
	Translate(ctx context.Context, dir domain.Direction, input string) (*domain.Translation, error)

	// Alphabet returns the table used for conversions.
	Alphabet() *alphabet.Table
}
