package app

import (
	"context"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/flipgrid/internal/config"
	"github.com/five82/flipgrid/internal/flip"
	"github.com/five82/flipgrid/internal/ui"
)

type chanSender chan tea.Msg

func (c chanSender) Send(msg tea.Msg) { c <- msg }

func TestStartAutoplaySendsForces(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sent := make(chanSender, 64)
	StartAutoplay(ctx, sent, time.Millisecond, 7, rand.New(rand.NewPCG(1, 2)))

	for i := 0; i < 5; i++ {
		select {
		case msg := <-sent:
			force, ok := msg.(ui.ForceMsg)
			if !ok {
				t.Fatalf("sent %T, want ui.ForceMsg", msg)
			}
			if force.Position < 0 || force.Position >= 7 || !force.Side.Valid() {
				t.Fatalf("force out of range: %+v", force)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("autoplay sent %d forces, want 5", i)
		}
	}
}

func TestStartAutoplayStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sent := make(chanSender, 1024)
	StartAutoplay(ctx, sent, time.Millisecond, 3, nil)

	<-sent
	cancel()
	time.Sleep(20 * time.Millisecond)
	for len(sent) > 0 {
		<-sent
	}
	time.Sleep(30 * time.Millisecond)
	if n := len(sent); n != 0 {
		t.Fatalf("autoplay sent %d forces after cancel", n)
	}
}

func TestStartAutoplayWithoutItemsIsNoop(t *testing.T) {
	sent := make(chanSender, 1)
	StartAutoplay(context.Background(), sent, time.Millisecond, 0, nil)
	time.Sleep(10 * time.Millisecond)
	if len(sent) != 0 {
		t.Fatalf("autoplay ran with no items")
	}
}

func TestNextForceCoversBothSides(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	seen := map[flip.Side]bool{}
	for i := 0; i < 100; i++ {
		seen[nextForce(rng, 4).Side] = true
	}
	if !seen[flip.Front] || !seen[flip.Back] {
		t.Fatalf("sides seen = %v, want both", seen)
	}
}

func TestNewStatesUsesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Items = 5
	cfg.Flip.Duration = 80 * time.Millisecond

	states := NewStates(cfg)
	if len(states) != 5 {
		t.Fatalf("len = %d, want 5", len(states))
	}
	for i, st := range states {
		if st.ID() != i || st.CurrentSide() != flip.Front || st.Options().Duration != 80*time.Millisecond {
			t.Fatalf("state %d = id %d side %s", i, st.ID(), st.CurrentSide())
		}
	}
}

func TestSetupLoggingWritesDebugFile(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	defer log.SetPrefix("")

	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	closeLog, err := setupLogging(path)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}

	st := flip.NewState(3, flip.DefaultOptions())
	st.ForceTo(flip.Back)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "3: forcing to back") {
		t.Fatalf("debug log = %q, want the flip trace", data)
	}
}

func TestSetupLoggingWithoutPathDiscards(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	closeLog, err := setupLogging("")
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	closeLog()
	if log.Writer() == os.Stderr {
		t.Fatalf("standard logger still writes to stderr")
	}
}
