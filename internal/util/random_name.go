package util

import (
	"fmt"
	"math/rand"
	"time"
)

var adjectives = []string{
	"Lucky", "Bold", "Steady", "Sly", "Cool", "Quiet", "Daring", "Sharp", "Calm", "Brash",
	"Wily", "Cagey", "Lively", "Shrewd", "Stoic", "Nimble",
}

var nicknames = []string{
	"Shark", "Fish", "Ace", "Dealer", "Hustler", "Gambler", "Rounder", "Grinder", "Rock", "Maniac",
	"Nit", "Whale", "Joker", "Bluffer",
}

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

// GetRandomName returns a random player name by combining an adjective with a nickname
func GetRandomName() string {
	return fmt.Sprintf("%s %s", adjectives[random.Intn(len(adjectives))], nicknames[random.Intn(len(nicknames))])
}
