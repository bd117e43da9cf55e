package card

// FilterFunc returns true when a card should be kept.
type FilterFunc func(Card) bool

// Tagged keeps cards carrying tag. An empty tag keeps everything.
func Tagged(tag string) FilterFunc {
	if tag == "" {
		return func(Card) bool { return true }
	}
	return func(c Card) bool { return c.IsTagged(tag) }
}

// Filter returns the cards accepted by keep, preserving order.
func Filter(cards []Card, keep FilterFunc) []Card {
	out := make([]Card, 0, len(cards))
	for _, c := range cards {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// FilterByTag keeps cards carrying tag.
func FilterByTag(cards []Card, tag string) []Card {
	return Filter(cards, Tagged(tag))
}
