package domain

// GameRound is created by a start call and consumed once by a claim call
type GameRound struct {
	GameID string `json:"gameId"`
	Points int    `json:"points"`
}

// GameStart is the outcome of POST /api/v2/game/play.
// Exactly one of GameID or Message is set on a decodable response.
type GameStart struct {
	GameID  string `json:"gameId"`
	Message string `json:"message"`
}

// GameCannotStart is the message returned when no round can be started
const GameCannotStart = "cannot start game"
