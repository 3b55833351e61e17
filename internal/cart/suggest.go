package cart

import "context"

// Suggester produces item-name suggestions for a list of item names. The
// external text-generation service sits behind this; it is best effort.
type Suggester interface {
	Suggest(ctx context.Context, itemNames []string) ([]string, error)
}

// Suggestions asks s for suggestions based on the current cart contents.
// The call is best effort: any error resolves to an empty list, never to a
// user-facing failure. If the cart mutated while the call was outstanding
// the result is discarded, so stale suggestions are never applied to a
// since-changed (or since-cleared) cart.
func Suggestions(ctx context.Context, c *Cart, s Suggester) []string {
	rev := c.Revision()
	names := c.ItemNames()

	out, err := s.Suggest(ctx, names)
	if err != nil {
		return []string{}
	}
	if c.Revision() != rev {
		return []string{}
	}
	if out == nil {
		out = []string{}
	}
	return out
}
