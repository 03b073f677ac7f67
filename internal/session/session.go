package session

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/arcanaland/fortune/internal/game"
)

// Session holds the current game and the location the player has picked
// up from. It turns clicks into moves; the engine stays unaware of
// selection.
type Session struct {
	ID       uuid.UUID
	State    game.GameState
	Selected game.Location

	rng    game.RNG
	logger *slog.Logger
	moves  int
}

// New deals a new game
func New(rng game.RNG, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{rng: rng, logger: logger}
	s.Restart()
	return s
}

// Restart deals a new game and clears the selection
func (s *Session) Restart() {
	s.ID = uuid.New()
	s.State = game.NewGame(s.rng)
	s.Selected = nil
	s.moves = 0
	s.logger.Debug("new game", "game_id", s.ID)
}

// Moves returns the number of accepted moves in this game
func (s *Session) Moves() int {
	return s.moves
}

// SelectCard handles a click on the topmost card of loc
func (s *Session) SelectCard(loc game.Location) {
	if s.Selected == nil {
		s.Selected = loc
		return
	}
	s.play(loc)
}

// ClickEmptySlot handles a click on an empty column
func (s *Session) ClickEmptySlot(loc game.Location) {
	if s.Selected == nil {
		return
	}
	s.play(loc)
}

// ClickReserve handles a click on the minor arcana foundation area. With
// nothing selected it picks up the reserved card, if any; otherwise it
// tries to park the selected card.
func (s *Session) ClickReserve() {
	if s.Selected == nil {
		if _, ok := s.State.Reserve(); ok {
			s.Selected = game.Reserve{}
		}
		return
	}
	s.play(game.Reserve{})
}

// Click dispatches a click on loc to the matching handler
func (s *Session) Click(loc game.Location) {
	switch loc.(type) {
	case game.Reserve:
		s.ClickReserve()
	case game.Column:
		if _, ok := s.State.CardAt(loc); ok {
			s.SelectCard(loc)
		} else {
			s.ClickEmptySlot(loc)
		}
	}
}

// Move plays move directly, bypassing selection. It reports whether the
// move was accepted.
func (s *Session) Move(move game.Move) bool {
	s.Selected = nil
	return s.apply(move)
}

// Undo restores the state before the last accepted move
func (s *Session) Undo() bool {
	s.Selected = nil
	prev, ok := game.Undo(s.State)
	if !ok {
		return false
	}
	s.State = prev
	s.moves--
	s.logger.Debug("undo", "game_id", s.ID)
	return true
}

// Won reports whether the current game is won
func (s *Session) Won() bool {
	return s.State.Won()
}

func (s *Session) play(target game.Location) {
	move := game.Move{Source: s.Selected, Target: target}
	s.Selected = nil
	s.apply(move)
}

func (s *Session) apply(move game.Move) bool {
	valid := game.IsValid(s.State, move)
	before := s.State.CardsRemaining()

	s.State = game.TryMakeMove(s.State, move)
	if valid {
		s.moves++
	}

	s.logger.Debug("move",
		"game_id", s.ID,
		"move", move.String(),
		"accepted", valid,
		"absorbed", before-s.State.CardsRemaining(),
		"remaining", s.State.CardsRemaining(),
	)
	if s.State.Won() {
		s.logger.Info("game won", "game_id", s.ID, "moves", s.moves)
	}
	return valid
}
