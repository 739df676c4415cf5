package loop

// HUD layout and text.
const (
	scoreFormat     = "Score: %d"
	scoreOffsetY    = 50 // Distance of the score line from the bottom edge
	gameOverMessage = "GAME OVER!"
)
