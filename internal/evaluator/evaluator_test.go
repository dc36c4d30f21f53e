package evaluator

import (
	"testing"

	"github.com/lox/holdem-tutor/internal/deck"
	"github.com/lox/holdem-tutor/internal/randutil"
)

func five(s string) [5]deck.Card {
	cards := deck.MustParseCards(s)
	var out [5]deck.Card
	copy(out[:], cards)
	return out
}

func TestEvaluateFive(t *testing.T) {
	tests := []struct {
		name  string
		cards string
		want  Category
	}{
		{"royal flush", "AsKsQsJsTs", RoyalFlush},
		{"straight flush", "9h8h7h6h5h", StraightFlush},
		{"steel wheel", "Ad2d3d4d5d", StraightFlush},
		{"four of a kind", "7s7h7d7cKs", FourOfAKind},
		{"full house", "QsQhQd4c4s", FullHouse},
		{"flush", "Ac9c7c4c2c", Flush},
		{"broadway straight", "AhKsQdJcTs", Straight},
		{"wheel", "Ah2s3d4c5s", Straight},
		{"no wraparound", "QhKsAd2c3s", HighCard},
		{"three of a kind", "8s8h8dKcQs", ThreeOfAKind},
		{"two pair", "JsJh4d4cAs", TwoPair},
		{"pair", "TsTh7d4c2s", Pair},
		{"high card", "AsJh8d5c3s", HighCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EvaluateFive(five(tt.cards)); got != tt.want {
				t.Errorf("EvaluateFive(%s) = %v, want %v", tt.cards, got, tt.want)
			}
		})
	}
}

func TestEvaluateFiveOrderIndependent(t *testing.T) {
	rng := randutil.New(7)
	hands := []string{"AsKsQsJsTs", "Ah2s3d4c5s", "QsQhQd4c4s", "JsJh4d4cAs", "AsJh8d5c3s"}
	for _, h := range hands {
		base := five(h)
		want := EvaluateFive(base)
		for i := 0; i < 20; i++ {
			shuffled := base
			rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
			if got := EvaluateFive(shuffled); got != want {
				t.Fatalf("%s reordered as %v evaluated to %v, want %v", h, shuffled, got, want)
			}
		}
	}
}

func TestBestCategorySevenCards(t *testing.T) {
	tests := []struct {
		name  string
		cards string
		want  Category
	}{
		{"royal on board", "2c3dAsKsQsJsTs", RoyalFlush},
		{"flush beats straight", "9h8h7h6s5h2h4c", Flush},
		{"straight from seven", "9h8d7s6c5hKdKs", Straight},
		{"two trips make full house", "8s8h8d4c4s4dAs", FullHouse},
		{"three pairs is two pair", "AsAhKdKcQsQh2d", TwoPair},
		{"quads with pair", "7s7h7d7cKsKh2d", FourOfAKind},
		{"nothing", "As9h7d5c3s2hJd", HighCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BestCategory(deck.MustParseCards(tt.cards)); got != tt.want {
				t.Errorf("BestCategory(%s) = %v, want %v", tt.cards, got, tt.want)
			}
		})
	}
}

func TestBestCategoryMatchesSubsetMaximum(t *testing.T) {
	rng := randutil.New(42)
	for i := 0; i < 200; i++ {
		d, err := deck.New(rng)
		if err != nil {
			t.Fatal(err)
		}
		cards, err := d.DrawN(7)
		if err != nil {
			t.Fatal(err)
		}

		want := HighCard
		count := 0
		forEachFive(cards, func(f [5]deck.Card) {
			count++
			want = max(want, EvaluateFive(f))
		})
		if count != 21 {
			t.Fatalf("expected 21 subsets of seven cards, got %d", count)
		}
		if got := BestCategory(cards); got != want {
			t.Fatalf("BestCategory(%v) = %v, want %v", cards, got, want)
		}
	}
}

func TestBestCategoryPartial(t *testing.T) {
	tests := []struct {
		name  string
		cards string
		want  Category
	}{
		{"empty", "", HighCard},
		{"pocket pair", "AsAh", Pair},
		{"suited hole cards", "AsKs", Flush},
		{"offsuit", "AsKh", HighCard},
		{"single card", "7d", Flush},
		{"trips in four", "9s9h9d2c", ThreeOfAKind},
		{"quads in four", "9s9h9d9c", FourOfAKind},
		{"two pairs count as pair", "9s9h2d2c", Pair},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BestCategory(deck.MustParseCards(tt.cards)); got != tt.want {
				t.Errorf("BestCategory(%q) = %v, want %v", tt.cards, got, tt.want)
			}
		})
	}
}

func TestCategoryText(t *testing.T) {
	tests := []struct {
		c       Category
		name    string
		article string
		odds    string
	}{
		{RoyalFlush, "Royal Flush", "a Royal Flush", "1 in 649,740"},
		{FourOfAKind, "Four of a Kind", "Four of a Kind", "1 in 4,165"},
		{TwoPair, "Two Pair", "Two Pair", "1 in 21"},
		{Pair, "Pair", "a Pair", "1 in 2.4"},
		{HighCard, "High Card", "a High Card", "1 in 2"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if got := tt.c.Article(); got != tt.article {
			t.Errorf("Article() = %q, want %q", got, tt.article)
		}
		if got := tt.c.Odds(); got != tt.odds {
			t.Errorf("Odds() = %q, want %q", got, tt.odds)
		}
	}

	if len(Categories) != 10 || Categories[0] != RoyalFlush || Categories[9] != HighCard {
		t.Errorf("Categories not ordered strongest first: %v", Categories)
	}
}
