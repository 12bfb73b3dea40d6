package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"agelife/src/universe"
)

func TestBuildOptionsDefaults(t *testing.T) {
	uo, err := buildOptions("", &cliOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if uo.Side != universe.DefSide || uo.Ratio != universe.DefRatio || uo.Interval != universe.DefInterval {
		t.Fatalf("unexpected options %+v", uo)
	}
}

func TestBuildOptionsOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agelife.yaml")
	if err := os.WriteFile(path, []byte("side: 30\nratio: 0.4\ninterval: 1s\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	uo, err := buildOptions(path, &cliOptions{side: 10, engine: "multithreaded"})
	if err != nil {
		t.Fatal(err)
	}
	if uo.Side != 10 || uo.Ratio != 0.4 || uo.Interval != time.Second || uo.Engine != "multithreaded" {
		t.Fatalf("unexpected options %+v", uo)
	}
}

func TestBuildOptionsInvalid(t *testing.T) {
	if _, err := buildOptions("", &cliOptions{engine: "nope"}); !errors.Is(err, universe.ErrInvalidOptions) {
		t.Fatalf("buildOptions() = %v, want ErrInvalidOptions", err)
	}
}

func TestRunFrameLimit(t *testing.T) {
	uo := universe.DefaultOptions
	uo.Interval = time.Millisecond
	uo.Seed = 5
	var out bytes.Buffer
	eo := &EnvOptions{frames: 3, noColor: true}
	if err := run(context.Background(), eo, uo, strings.NewReader("z\nhello\n"), &out); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out.String(), "frame: "); n != 3 {
		t.Fatalf("rendered %d frames, want 3", n)
	}
	if !strings.Contains(out.String(), "frame: 3 - ") {
		t.Fatalf("last frame missing:\n%s", out.String())
	}
}

func TestRunQuit(t *testing.T) {
	uo := universe.DefaultOptions
	uo.Interval = time.Millisecond
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	var out bytes.Buffer
	if err := run(ctx, &EnvOptions{noColor: true}, uo, strings.NewReader("p\nq\n"), &out); err != nil {
		t.Fatal(err)
	}
	if ctx.Err() != nil {
		t.Fatal("run did not stop on quit")
	}
}
