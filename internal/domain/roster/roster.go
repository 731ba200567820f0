// Package roster holds the player candidate pool and the jersey-number
// selection rule.
package roster

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
)

// Team is the nested team record from the dataset.
type Team struct {
	ID       int    `json:"id"`
	FullName string `json:"full_name"`
}

// Player mirrors one record of the player dataset built by fetch-players.
type Player struct {
	ID           int    `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Position     string `json:"position"`
	Height       string `json:"height"`
	JerseyNumber string `json:"jersey_number"`
	Country      string `json:"country"`
	Team         Team   `json:"team"`
}

// Jersey returns the numeric jersey number, or false when the record
// has none (rookies and historical records sometimes lack one).
func (p Player) Jersey() (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(p.JerseyNumber))
	if err != nil {
		return 0, false
	}
	return n, true
}

// HighlightQuery builds the free-text video search query for a player.
func HighlightQuery(p Player) string {
	return fmt.Sprintf("%s %s %s highlights", p.FirstName, p.LastName, p.Team.FullName)
}

// Pool is a fixed candidate pool loaded once at startup.
type Pool struct {
	players []Player
}

// NewPool wraps a slice of players. The slice is not copied; the pool
// is read-only after construction.
func NewPool(players []Player) *Pool {
	return &Pool{players: players}
}

// Len returns the number of players in the pool.
func (p *Pool) Len() int {
	return len(p.players)
}

// ByJersey returns all players whose jersey number equals n exactly.
func (p *Pool) ByJersey(n int) []Player {
	var out []Player
	for _, pl := range p.players {
		if j, ok := pl.Jersey(); ok && j == n {
			out = append(out, pl)
		}
	}
	return out
}

// PickByJersey selects one player uniformly at random among those whose
// jersey number equals n. An empty candidate set fails with
// ErrNoMatchingPlayer; a single candidate is returned deterministically.
func (p *Pool) PickByJersey(n int, rng *rand.Rand) (Player, error) {
	candidates := p.ByJersey(n)
	if len(candidates) == 0 {
		return Player{}, fmt.Errorf("%w: jersey %d", ErrNoMatchingPlayer, n)
	}
	return candidates[rng.Intn(len(candidates))], nil
}

// datasetFile is the on-disk shape written by fetch-players. A bare
// JSON array of players is also accepted.
type datasetFile struct {
	Players []Player `json:"players"`
}

// Load parses a dataset from raw JSON.
func Load(data []byte) (*Pool, error) {
	var wrapped datasetFile
	if err := json.Unmarshal(data, &wrapped); err == nil && len(wrapped.Players) > 0 {
		return NewPool(wrapped.Players), nil
	}

	var bare []Player
	if err := json.Unmarshal(data, &bare); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, err)
	}
	return NewPool(bare), nil
}

// LoadFile reads and parses the dataset at path.
func LoadFile(path string) (*Pool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, err)
	}
	return Load(data)
}
