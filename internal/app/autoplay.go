package app

import (
	"context"
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/flipgrid/internal/flip"
	"github.com/five82/flipgrid/internal/ui"
)

const defaultAutoplayInterval = 2 * time.Second

// Sender delivers messages into a running program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// StartAutoplay launches a background goroutine that forces a random card to
// a random side at a fixed cadence. It never touches a state directly; every
// force goes through the program's message loop. It returns immediately.
func StartAutoplay(ctx context.Context, s Sender, interval time.Duration, items int, rng *rand.Rand) {
	if items <= 0 {
		return
	}
	if interval <= 0 {
		interval = defaultAutoplayInterval
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Send(nextForce(rng, items))
			}
		}
	}()
}

func nextForce(rng *rand.Rand, items int) ui.ForceMsg {
	return ui.ForceMsg{
		Position: rng.IntN(items),
		Side:     flip.Side(rng.IntN(flip.NumSides)),
	}
}
