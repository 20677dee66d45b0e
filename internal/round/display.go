package round

//go:generate go tool mockgen -source=display.go -destination=mocks/display_mock.go -package=mocks

// Display is the scoreboard the controller pushes updates to.
// Calls are fire-and-forget.
type Display interface {
	UpdateScore(team uint8, score int)
	UpdateTimer(secondsLeft float64)
	ShowStartButton()
	HideStartButton()
}

// InputGate locks and unlocks player input.
type InputGate interface {
	SetInputEnabled(enabled bool)
}
