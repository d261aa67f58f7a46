package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/game"
)

var playerMoves = []engine.Command{
	engine.CommandMoveLeft,
	engine.CommandMoveRight,
	engine.CommandSoftDrop,
	engine.CommandRotate,
}

// randomPlayer issues one random move on a share of frames set by rate.
func randomPlayer(rng *rand.Rand, rate float64) game.InputSource {
	return func(float64) []engine.Command {
		if rng.Float64() >= rate {
			return nil
		}
		return []engine.Command{playerMoves[rng.IntN(len(playerMoves))]}
	}
}
