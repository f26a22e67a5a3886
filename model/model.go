package model

type Player struct {
	Name     string
	Position int
	Snakes   int
	Ladders  int
}

// Board maps landing squares to destinations. Ladders lead up, snakes lead down.
type Board struct {
	Start   int
	Finish  int
	Ladders map[int]int
	Snakes  map[int]int
}
