package game

import (
	"strings"
	"testing"
)

func TestBuildWindowReport_BucketsByTick(t *testing.T) {
	log := NewSimLog(false)
	log.Add(1, "G0", "decide", "turn", "none → left", 0)
	log.Add(99, "P", "pellet", "eaten", "(3,1)", 10)
	log.Add(100, "G1", "decide", "forced_reversal", "right", 0)
	log.Add(101, "P", "pellet", "power", "(5,1)", 0)
	log.Add(101, "--", "scatter", "on", "", 600)
	log.Add(150, "G0", "contact", "ghost_eaten", "chaser", 200)

	wr := BuildWindowReport(log, 200, 100)
	if len(wr.Windows) != 2 {
		t.Fatalf("windows=%d, want 2", len(wr.Windows))
	}

	w0 := wr.Windows[0]
	if w0.FromTick != 1 || w0.ToTick != 100 {
		t.Fatalf("window 0 range [%d..%d], want [1..100]", w0.FromTick, w0.ToTick)
	}
	if w0.Decisions != 1 || w0.Pellets != 1 || w0.ForcedReversals != 1 {
		t.Fatalf("window 0 = %+v, want decisions=1 pellets=1 reversals=1", w0)
	}

	w1 := wr.Windows[1]
	if w1.PowerPellets != 1 || w1.ScatterOn != 1 || w1.GhostsEaten != 1 {
		t.Fatalf("window 1 = %+v, want power=1 scatter=1 eaten=1", w1)
	}
}

func TestBuildWindowReport_ShortFinalWindow(t *testing.T) {
	log := NewSimLog(false)
	wr := BuildWindowReport(log, 250, 100)
	if len(wr.Windows) != 3 {
		t.Fatalf("windows=%d, want 3", len(wr.Windows))
	}
	last := wr.Windows[2]
	if last.FromTick != 201 || last.ToTick != 250 {
		t.Fatalf("final window [%d..%d], want [201..250]", last.FromTick, last.ToTick)
	}
}

func TestWindowReport_FormatContainsEveryWindow(t *testing.T) {
	log := NewSimLog(false)
	log.Add(5, "G0", "decide", "turn", "none → left", 0)
	wr := BuildWindowReport(log, 120, 60)
	out := wr.Format()
	if !strings.Contains(out, "1-60") || !strings.Contains(out, "61-120") {
		t.Fatalf("formatted report missing window rows:\n%s", out)
	}
}

func TestSimLog_FilterAndCount(t *testing.T) {
	log := NewSimLog(false)
	log.Add(1, "G0", "decide", "turn", "none → left", 0)
	log.Add(2, "G1", "decide", "turn", "none → right", 0)
	log.Add(3, "P", "pellet", "eaten", "(2,1)", 10)

	if n := log.CountCategory("decide", "turn"); n != 2 {
		t.Fatalf("count=%d, want 2", n)
	}
	if got := log.FilterActor("G1"); len(got) != 1 || got[0].Value != "none → right" {
		t.Fatalf("actor filter returned %v", got)
	}
	last, ok := log.LastOf("decide", "turn")
	if !ok || last.Tick != 2 {
		t.Fatalf("last decide/turn = %+v ok=%v, want tick 2", last, ok)
	}
}

func TestSimLog_VerboseGate(t *testing.T) {
	quiet := NewSimLog(false)
	quiet.AddVerbose(1, "P", "move", "position", "(1.00,1.00)", 0)
	if len(quiet.Entries()) != 0 {
		t.Fatal("verbose entry recorded on a quiet log")
	}
	loud := NewSimLog(true)
	loud.AddVerbose(1, "P", "move", "position", "(1.00,1.00)", 0)
	if len(loud.Entries()) != 1 {
		t.Fatal("verbose entry dropped on a verbose log")
	}
}
