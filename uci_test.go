package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/OhJayGee/SugaR/engine"
	"github.com/OhJayGee/SugaR/uci"
)

func runLoop(t *testing.T, script string) string {
	t.Helper()
	options := uci.NewOptionsMap()
	uci.Init(options)
	var out bytes.Buffer
	uciLoop(strings.NewReader(script), &out, options)
	return out.String()
}

func TestLoopUCIHandshake(t *testing.T) {
	out := runLoop(t, "uci\nisready\nquit\n")

	for _, want := range []string{
		"id name SugaR",
		"option name Hash type spin default 16 min 1 max",
		"option name Clear Hash type button",
		"option name Analysis_CT type combo default Both var Off var White var Black var Both",
		"uciok",
		"readyok",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLoopSetOption(t *testing.T) {
	runLoop(t, "setoption name Threads value 7\nquit\n")
	if got := engine.Threads.Size(); got != 7 {
		t.Fatalf("thread pool size = %d after setoption, want 7", got)
	}

	out := runLoop(t, "setoption name Nonexistent value 1\nquit\n")
	if !strings.Contains(out, "info string No such option: Nonexistent") {
		t.Fatalf("unknown option not reported:\n%s", out)
	}
}

func TestLoopSetOptionSpacedName(t *testing.T) {
	path := t.TempDir() + "/debug.log"
	runLoop(t, "setoption name Debug Log File value "+path+"\nquit\n")
	if !engine.Logger.Active() {
		t.Fatal("spaced option name did not reach its callback")
	}
	engine.Logger.Start("")
}

func TestLoopRejectedSetOptionKeepsValue(t *testing.T) {
	options := uci.NewOptionsMap()
	uci.Init(options)
	var out bytes.Buffer
	uciLoop(strings.NewReader("setoption name MultiPV value 9999\nquit\n"), &out, options)
	if got := options.Get("MultiPV").Int(); got != 1 {
		t.Fatalf("MultiPV = %d after out-of-range setoption, want 1", got)
	}
}

func TestLoopPositionAndGo(t *testing.T) {
	out := runLoop(t, "position startpos moves e2e4 e7e5\ngo\nquit\n")
	if !strings.Contains(out, "bestmove ") {
		t.Fatalf("go produced no bestmove:\n%s", out)
	}

	out = runLoop(t, "position fen 3qk3/8/8/8/8/8/8/3QK3 w - - 0 1\ngo\nquit\n")
	if !strings.Contains(out, "bestmove d1d8") {
		t.Fatalf("go in a won position answered:\n%s", out)
	}
}

func TestLoopStopRaisesFlag(t *testing.T) {
	engine.GlobalStop = false
	runLoop(t, "stop\nquit\n")
	if !engine.GlobalStop {
		t.Fatal("stop command did not raise the stop flag")
	}
	engine.GlobalStop = false
}

func TestLoopMalformedPosition(t *testing.T) {
	out := runLoop(t, "position\nposition sideways\nposition startpos moves e2e5\nquit\n")
	if strings.Count(out, "info string") != 3 {
		t.Fatalf("malformed position commands not all reported:\n%s", out)
	}
}

func TestLoopTuneCommand(t *testing.T) {
	out := runLoop(t, "tune\nquit\n")
	for _, want := range []string{
		"PawnValueMG,100,0,200,10,0.0020\n",
		"DeltaMargin,200,0,400,20,0.0020\n",
		"mBishopPairBonus,25,0,100,5,0.0020\n",
		"eBishopPairBonus,45,0,100,5,0.0020\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("tune output missing %q:\n%s", want, out)
		}
	}
}

func TestLoopTuneOptionsReadBack(t *testing.T) {
	oldPawn := engine.PawnValueMG
	defer func() {
		engine.PawnValueMG = oldPawn
		engine.SetPieceValues()
	}()

	runLoop(t, "tune\nsetoption name PawnValueMG value 120\nquit\n")
	if engine.PawnValueMG != 120 {
		t.Fatalf("PawnValueMG = %d after tuned setoption, want 120", engine.PawnValueMG)
	}
}

func TestParseSetOption(t *testing.T) {
	name, value := parseSetOption(strings.Fields("name Move Overhead value 100"))
	if name != "Move Overhead" || value != "100" {
		t.Fatalf("parsed (%q, %q)", name, value)
	}
	name, value = parseSetOption(strings.Fields("name Clear Hash"))
	if name != "Clear Hash" || value != "" {
		t.Fatalf("parsed button (%q, %q)", name, value)
	}
	name, _ = parseSetOption(strings.Fields("value 3"))
	if name != "" {
		t.Fatalf("missing name keyword parsed as %q", name)
	}
}
