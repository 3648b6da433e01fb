package systems

import "errors"

var (
	ErrNothingSelected  = errors.New("nothing selected")
	ErrNoPlotsAvailable = errors.New("no plots available")
	ErrNotEnoughEnergy  = errors.New("not enough energy")
	ErrNotEnoughSeeds   = errors.New("not enough seeds")
	ErrNotEnoughGold    = errors.New("not enough gold")
	ErrNotEnoughCrops   = errors.New("not enough crops")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrNoCropChosen     = errors.New("no crop chosen")
)
