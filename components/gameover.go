package components

import "github.com/yohamta/donburi"

// GameOverOption represents the available game over menu selections
type GameOverOption int

const (
	GameOverRetry GameOverOption = iota
	GameOverMenu
)

// GameOverData stores the state of the game over screen
type GameOverData struct {
	SelectedOption GameOverOption
	FinalScore     int
	BestScore      int
	NewBest        bool
	Distance       float64
}

// GameOver is the component type for game over menu state
var GameOver = donburi.NewComponentType[GameOverData]()
