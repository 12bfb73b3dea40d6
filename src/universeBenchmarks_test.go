package main

import (
	"context"
	"io"
	"strings"
	"testing"

	"agelife/src/universe"
)

var (
	testTemplate = [][]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 3}, {4, 2}, {4, 3}, {5, 3}}
)

func universeRun(engine string, b *testing.B) {
	uo := universe.DefaultOptions
	uo.Side = 200
	uo.Interval = 0
	uo.Engine = engine
	uo.Pattern = testTemplate
	eo := &EnvOptions{frames: 50, noColor: true}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := run(context.Background(), eo, uo, strings.NewReader(""), io.Discard); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Universe(b *testing.B) {
	for _, e := range engineNames() {
		b.Run(e, func(b *testing.B) {
			universeRun(e, b)
		})
	}
}
