package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// Size is the number of cards in a standard deck
const Size = 52

var (
	// ErrConstruction is returned when a freshly built deck is not the full 52-card universe
	ErrConstruction = errors.New("deck construction failed")
	// ErrEmptyDeck is returned when drawing from a deck with no cards left
	ErrEmptyDeck = errors.New("deck is empty")
)

// Deck is an ordered sequence of remaining cards, consumed front to back
type Deck struct {
	cards []Card
}

// FullDeck returns the 52-card universe in suit then rank order
func FullDeck() []Card {
	cards := make([]Card, 0, Size)
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// New builds the 52-card universe and shuffles it with Fisher-Yates using rng.
func New(rng *rand.Rand) (*Deck, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: rng is required", ErrConstruction)
	}

	cards := FullDeck()
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}

	if err := validate(cards); err != nil {
		return nil, err
	}
	return &Deck{cards: cards}, nil
}

// FromCards returns a deck that deals exactly the given cards in order.
// It is intended for deterministic tests and replays.
func FromCards(cards ...Card) *Deck {
	return &Deck{cards: append([]Card(nil), cards...)}
}

func validate(cards []Card) error {
	if len(cards) != Size {
		return fmt.Errorf("%w: got %d cards, expected %d", ErrConstruction, len(cards), Size)
	}
	seen := make(map[Card]struct{}, Size)
	for _, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("%w: invalid card %v", ErrConstruction, c)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: duplicate card %v", ErrConstruction, c)
		}
		seen[c] = struct{}{}
	}
	return nil
}

// Draw removes and returns the top card from the deck
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

// DrawN draws n cards. If fewer than n remain, no cards are consumed.
func (d *Deck) DrawN(n int) ([]Card, error) {
	if n > len(d.cards) {
		return nil, fmt.Errorf("%w: need %d cards, %d remaining", ErrEmptyDeck, n, len(d.cards))
	}
	cards := append([]Card(nil), d.cards[:n]...)
	d.cards = d.cards[n:]
	return cards, nil
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards in deal order
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}
