package evaluator

// Category is the ranking class of a poker hand. Categories are totally
// ordered; a larger value is a stronger hand.
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// Categories lists every category from strongest to weakest
var Categories = []Category{
	RoyalFlush, StraightFlush, FourOfAKind, FullHouse, Flush,
	Straight, ThreeOfAKind, TwoPair, Pair, HighCard,
}

// String returns the display text for a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown Hand"
	}
}

// Article returns the display text with an indefinite article where English
// needs one ("a Flush", "Two Pair").
func (c Category) Article() string {
	switch c {
	case TwoPair, ThreeOfAKind, FourOfAKind:
		return c.String()
	case HighCard, Pair, Straight, Flush, FullHouse, StraightFlush, RoyalFlush:
		return "a " + c.String()
	default:
		return "an Unknown Hand Type"
	}
}

// Odds returns the approximate frequency of being dealt the category in five cards
func (c Category) Odds() string {
	switch c {
	case RoyalFlush:
		return "1 in 649,740"
	case StraightFlush:
		return "1 in 72,193"
	case FourOfAKind:
		return "1 in 4,165"
	case FullHouse:
		return "1 in 694"
	case Flush:
		return "1 in 509"
	case Straight:
		return "1 in 255"
	case ThreeOfAKind:
		return "1 in 47"
	case TwoPair:
		return "1 in 21"
	case Pair:
		return "1 in 2.4"
	case HighCard:
		return "1 in 2"
	default:
		return "Unknown"
	}
}
