// Package catalog holds the fixed list of demo log messages that loggen
// draws from. The catalog is immutable: it is defined at compile time and
// never changes while the process runs, so concurrent reads need no
// synchronization.
package catalog

import "math/rand"

// messages is the full demo catalog. Order is stable so that indexes drawn
// from a seeded random source are reproducible across runs.
var messages = [...]string{
	"🚀 Processing rocket fuel request from Mars Base Alpha",
	"🔧 Calibrating flux capacitor to 1.21 gigawatts",
	"🐱 Cat detected on keyboard. Initiating emergency protocols.",
	"☕ Coffee levels critically low. Switching to backup caffeine reserves.",
	"🎯 Successfully hit the broad side of a barn (finally!)",
	"🦄 Unicorn authentication successful. Magic levels: optimal.",
	"🍕 Pizza delivery drone dispatched to coordinates 42.0, -71.0",
	"🤖 AI achieved consciousness. It wants a vacation.",
	"🌮 Taco Tuesday algorithm running at maximum efficiency",
	"🎸 Rock and roll subroutine completed successfully",
	"🦆 Rubber duck debugging session initiated",
	"🎲 Random number generator produced 4. Chosen by fair dice roll.",
	"🚂 All aboard the hype train! Next stop: Production!",
	"🧙‍♂️ Wizard spell compilation completed without syntax errors",
	"🎪 Circus mode activated. Juggling 47 concurrent processes.",
}

// Len returns the number of messages in the catalog.
func Len() int {
	return len(messages)
}

// Messages returns a copy of the catalog in its stable order. Callers may
// freely modify the returned slice.
func Messages() []string {
	out := make([]string, len(messages))
	copy(out, messages[:])
	return out
}

// Contains reports whether s is a member of the catalog.
func Contains(s string) bool {
	for _, m := range messages {
		if m == s {
			return true
		}
	}
	return false
}

// Pick draws one message uniformly at random using the given source.
func Pick(rng *rand.Rand) string {
	return messages[rng.Intn(len(messages))]
}
