package worker

import (
	"sort"
	"testing"

	"github.com/hadron43/pgn-manager/internal/pgn"
	"github.com/hadron43/pgn-manager/internal/testutil"
)

func countingProcess(item Item) Result {
	return Result{Index: item.Index, Game: item.Game, PlyCount: len(item.Game.Moves)}
}

func TestPool_ProcessesAllItems(t *testing.T) {
	pool := NewPool(countingProcess, WithWorkers(4), WithBufferSize(8))
	testutil.AssertEqual(t, pool.NumWorkers(), 4)
	pool.Start()

	const n = 50
	go func() {
		for i := 0; i < n; i++ {
			g := &pgn.Game{}
			for j := 0; j <= i%5; j++ {
				g.AppendMove(&pgn.Move{Text: "e4"})
			}
			pool.Submit(Item{Game: g, Index: i})
		}
		pool.Close()
	}()

	var results []Result
	for r := range pool.Results() {
		results = append(results, r)
	}
	testutil.AssertEqual(t, len(results), n)

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	for i, r := range results {
		testutil.AssertEqual(t, r.Index, i)
		testutil.AssertEqual(t, r.PlyCount, i%5+1, "result %d", i)
	}
}

func TestPool_Defaults(t *testing.T) {
	pool := NewPool(countingProcess)
	testutil.AssertEqual(t, pool.NumWorkers(), 1)

	pool = NewPool(countingProcess, WithWorkers(0), WithBufferSize(0))
	testutil.AssertEqual(t, pool.NumWorkers(), 1, "non-positive worker counts are ignored")
}

func TestPool_StopDrains(t *testing.T) {
	pool := NewPool(countingProcess, WithWorkers(2))
	pool.Start()
	pool.Stop()

	go func() {
		for i := 0; i < 10; i++ {
			pool.Submit(Item{Game: &pgn.Game{}, Index: i})
		}
		pool.Close()
	}()

	count := 0
	for range pool.Results() {
		count++
	}
	testutil.AssertEqual(t, count, 0, "stopped pool drains without processing")
}
