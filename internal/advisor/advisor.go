// Package advisor wraps an external text-generation API behind a small
// prompt-in, text-out interface so services never depend on a concrete
// model provider.
package advisor

import "context"

type Advisor interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
