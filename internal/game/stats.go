package game

// Stats are session-wide hand counts
type Stats struct {
	HandsPlayed int `json:"hands_played"`
	HumanWins   int `json:"human_wins"`
	BotWins     int `json:"bot_wins"`
	Ties        int `json:"ties"`
}

// ActionRecord is one entry in the current hand's action log
type ActionRecord struct {
	Stage   Stage  `json:"stage"`
	Seat    int    `json:"seat"`
	Name    string `json:"name"`
	Action  string `json:"action"`
	Amount  int    `json:"amount"`
	Message string `json:"message"`
}

// DefaultWinHand is the winning hand reported when everyone else folded
const DefaultWinHand = "Default Win"

// HandResult describes how the last hand was won
type HandResult struct {
	WinnerNames []string `json:"winner_names"`
	WinningHand string   `json:"winning_hand"`
	WinnerIndex int      `json:"winner_index"`
	Amount      int      `json:"amount"`
	Detail      string   `json:"detail,omitempty"`
}
