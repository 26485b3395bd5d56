package component

// GameState is the singleton run record.
type GameState struct {
	Frame       int
	Kills       int
	Score       int
	PlayerAlive bool
	GameOver    bool
}

var GameStateComponent = NewComponent[GameState]()
