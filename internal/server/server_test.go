package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-tutor/internal/bot"
	"github.com/lox/holdem-tutor/internal/game"
	"github.com/lox/holdem-tutor/internal/randutil"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func newTestServer(t *testing.T, opts ...Option) *httptest.Server {
	t.Helper()
	srv := NewServer("", testLogger(), opts...)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Stop(ctx)
		ts.Close()
	})
	return ts
}

func guidedEngines(l *log.Logger) *game.Engine {
	return game.New(l, game.WithRNG(randutil.New(3)), game.WithGuidedMode(true))
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })
	return ws
}

func read(t *testing.T, ws *websocket.Conn) Message {
	t.Helper()
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(3*time.Second)))
	var msg Message
	require.NoError(t, ws.ReadJSON(&msg))
	return msg
}

func readState(t *testing.T, ws *websocket.Conn) game.Snapshot {
	t.Helper()
	msg := read(t, ws)
	require.Equal(t, MessageTypeState, msg.Type, "error: %+v", msg.Error)
	require.NotNil(t, msg.State)
	return *msg.State
}

func TestServerHealth(t *testing.T) {
	srv := NewServer("", testLogger())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.handleHealth(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestSessionStartsWithState(t *testing.T) {
	ts := newTestServer(t, WithEngineFactory(guidedEngines))
	ws := dial(t, ts)

	msg := read(t, ws)
	assert.Equal(t, MessageTypeState, msg.Type)
	assert.NotEmpty(t, msg.Session)
	require.NotNil(t, msg.State)
	assert.Equal(t, "Welcome! Deal a hand to begin.", msg.State.Message)
	assert.Equal(t, 0, msg.State.HandNumber)

	other := dial(t, ts)
	assert.NotEqual(t, msg.Session, read(t, other).Session)
}

func TestNewRoundHidesBotCards(t *testing.T) {
	ts := newTestServer(t, WithEngineFactory(guidedEngines))
	ws := dial(t, ts)
	readState(t, ws)

	require.NoError(t, ws.WriteJSON(Request{Type: MessageTypeNewRound}))
	s := readState(t, ws)

	assert.Equal(t, 1, s.HandNumber)
	assert.Equal(t, game.PreFlop, s.Stage)
	assert.Len(t, s.Human().Hand, 2)
	assert.Empty(t, s.Bot().Hand)
	assert.True(t, s.AwaitingAdvance)
	assert.Equal(t, 150, s.Pot)
}

func TestNewRoundRejectedMidHand(t *testing.T) {
	ts := newTestServer(t, WithEngineFactory(guidedEngines))
	ws := dial(t, ts)
	readState(t, ws)

	require.NoError(t, ws.WriteJSON(Request{Type: MessageTypeNewRound}))
	readState(t, ws)

	require.NoError(t, ws.WriteJSON(Request{Type: MessageTypeNewRound, RequestID: "again"}))
	msg := read(t, ws)
	require.Equal(t, MessageTypeError, msg.Type)
	assert.Equal(t, ErrCodeHandInProgress, msg.Error.Code)
	assert.Equal(t, "again", msg.RequestID)

	s := readState(t, ws)
	assert.Equal(t, 1, s.HandNumber)
	assert.Equal(t, 150, s.Pot)
	assert.Equal(t, 4000, s.ChipTotal())
	assert.Equal(t, "Finish the current hand before dealing a new one.", s.Message)
}

func TestAdvanceAndActions(t *testing.T) {
	ts := newTestServer(t, WithEngineFactory(guidedEngines))
	ws := dial(t, ts)
	readState(t, ws)

	require.NoError(t, ws.WriteJSON(Request{Type: MessageTypeNewRound}))
	readState(t, ws)

	// the bot acts first preflop, so the human is out of turn
	require.NoError(t, ws.WriteJSON(Request{Type: MessageTypeAction, Action: "call", RequestID: "r1"}))
	msg := read(t, ws)
	require.Equal(t, MessageTypeError, msg.Type)
	assert.Equal(t, ErrCodeOutOfTurn, msg.Error.Code)
	assert.Equal(t, "r1", msg.RequestID)
	assert.Equal(t, "It's not your turn.", readState(t, ws).Message)

	require.NoError(t, ws.WriteJSON(Request{Type: MessageTypeAdvance}))
	s := readState(t, ws)
	assert.False(t, s.AwaitingAdvance)
	assert.Greater(t, len(s.Actions), 2)

	if !s.HandOver() {
		require.True(t, s.HumanToAct)
		require.NoError(t, ws.WriteJSON(Request{Type: MessageTypeAction, Action: "fold"}))
		s = readState(t, ws)
		assert.True(t, s.HandOver())
	}
	assert.Equal(t, 4000, s.ChipTotal())
}

func TestInvalidRequests(t *testing.T) {
	ts := newTestServer(t, WithEngineFactory(guidedEngines))
	ws := dial(t, ts)
	readState(t, ws)

	require.NoError(t, ws.WriteJSON(Request{Type: "dance"}))
	msg := read(t, ws)
	require.Equal(t, MessageTypeError, msg.Type)
	assert.Equal(t, ErrCodeInvalidMessage, msg.Error.Code)

	require.NoError(t, ws.WriteJSON(Request{Type: MessageTypeAction, Action: "shove"}))
	msg = read(t, ws)
	require.Equal(t, MessageTypeError, msg.Type)
	assert.Equal(t, ErrCodeInvalidAction, msg.Error.Code)

	require.NoError(t, ws.WriteJSON(Request{Type: MessageTypeAdvance}))
	msg = read(t, ws)
	require.Equal(t, MessageTypeError, msg.Type)
	assert.Equal(t, ErrCodeNotBotTurn, msg.Error.Code)
}

func TestDifficultyGuidedAndGuidance(t *testing.T) {
	ts := newTestServer(t, WithEngineFactory(guidedEngines))
	ws := dial(t, ts)
	readState(t, ws)

	require.NoError(t, ws.WriteJSON(Request{Type: MessageTypeDifficulty, Difficulty: "hard"}))
	assert.Equal(t, bot.Hard, readState(t, ws).Difficulty)

	require.NoError(t, ws.WriteJSON(Request{Type: MessageTypeDifficulty}))
	assert.Equal(t, bot.Easy, readState(t, ws).Difficulty)

	off := false
	require.NoError(t, ws.WriteJSON(Request{Type: MessageTypeGuided, Guided: &off}))
	assert.False(t, readState(t, ws).Guided)

	require.NoError(t, ws.WriteJSON(Request{Type: MessageTypeGuided}))
	assert.True(t, readState(t, ws).Guided)

	require.NoError(t, ws.WriteJSON(Request{Type: MessageTypeNewRound}))
	readState(t, ws)

	require.NoError(t, ws.WriteJSON(Request{Type: MessageTypeGuidance}))
	msg := read(t, ws)
	require.Equal(t, MessageTypeGuidance, msg.Type)
	require.NotNil(t, msg.Guidance)
	assert.Equal(t, "Pre-Flop", msg.Guidance.Stage)
	assert.NotEmpty(t, msg.Guidance.Advice)
	assert.Equal(t, "(Hidden Hand)", msg.Guidance.OpponentHand)
}

func TestAutomaticModePacesBot(t *testing.T) {
	clock := quartz.NewMock(t)
	ts := newTestServer(t,
		WithClock(clock),
		WithBotDelay(time.Second),
		WithEngineFactory(func(l *log.Logger) *game.Engine {
			return game.New(l, game.WithRNG(randutil.New(3)))
		}))
	ws := dial(t, ts)
	readState(t, ws)

	require.NoError(t, ws.WriteJSON(Request{Type: MessageTypeNewRound}))
	s := readState(t, ws)
	require.True(t, s.BotToAct)
	before := len(s.Actions)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	clock.Advance(time.Second).MustWait(ctx)

	s = readState(t, ws)
	assert.Greater(t, len(s.Actions), before)
	assert.False(t, s.BotToAct)
}
