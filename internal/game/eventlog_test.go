package game

import "testing"

func TestEventLog_RecentReturnsOldestFirst(t *testing.T) {
	el := NewEventLog()
	el.Add(1, "first")
	el.Add(2, "second")
	el.Add(3, "third")

	got := el.Recent(2)
	if len(got) != 2 {
		t.Fatalf("len=%d, want 2", len(got))
	}
	if got[0].Message != "second" || got[1].Message != "third" {
		t.Fatalf("got %v, want [second third]", got)
	}
}

func TestEventLog_EvictsOldestWhenFull(t *testing.T) {
	el := NewEventLog()
	for i := 0; i < eventLogMaxEntries+5; i++ {
		el.Add(i, "entry %d", i)
	}
	got := el.Recent(eventLogMaxEntries)
	if len(got) != eventLogMaxEntries {
		t.Fatalf("len=%d, want %d", len(got), eventLogMaxEntries)
	}
	if got[0].Tick != 5 {
		t.Fatalf("oldest surviving tick=%d, want 5", got[0].Tick)
	}
}

func TestHighScore_RoundTrip(t *testing.T) {
	path := t.TempDir() + "/highscore.json"

	if score, err := LoadHighScore(path); err != nil || score != 0 {
		t.Fatalf("missing file: score=%d err=%v, want 0,nil", score, err)
	}
	if err := SaveHighScore(path, 1240); err != nil {
		t.Fatalf("save: %v", err)
	}
	score, err := LoadHighScore(path)
	if err != nil || score != 1240 {
		t.Fatalf("load: score=%d err=%v, want 1240,nil", score, err)
	}
}
