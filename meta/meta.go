// meta/meta.go
package meta

import "time"

// GAMES defines the number of games per matchup.
const GAMES = 10

// PARALLEL_GAMES defines how many games of an experiment run at once.
const PARALLEL_GAMES = 4

// TIME_PER_K defines the time each agent has for a block of K moves.
const TIME_PER_K = 2 * time.Second

// K defines the number of moves sharing one TIME_PER_K block.
const K = 5

// SETUP_TIME defines the time an agent may take to construct itself.
const SETUP_TIME = 2 * time.Second

// OUTPUT_DIR defines where experiment records are written.
const OUTPUT_DIR = "experiments"
