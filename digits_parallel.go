package bigfft

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// parallelSplitFloor is the shortest input parseDigitsParallel will still
// split across goroutines. Below it the fork/join overhead dominates the
// work it would save, so parsing falls back to parseDigitsRecursive.
const parallelSplitFloor = RecursionThreshold * 64

// parseDigitsParallel parses data the same way parseDigitsRecursive does —
// split at digitSplitLength, recombine as left*10^rightLen + right — but
// runs each half's parse in its own goroutine, bounded to
// floor(log2(runtime.GOMAXPROCS(0))) levels of fork depth so the goroutine
// count stays proportional to available parallelism instead of the full
// recursion depth.
func parseDigitsParallel(data []byte) (*Int, error) {
	return parseDigitsParallelDepth(data, maxForkDepth())
}

func maxForkDepth() int {
	depth := 0
	for n := runtime.GOMAXPROCS(0); n > 1; n >>= 1 {
		depth++
	}
	return depth
}

func parseDigitsParallelDepth(data []byte, depth int) (*Int, error) {
	if depth <= 0 || len(data) <= parallelSplitFloor {
		return parseDigitsRecursive(data)
	}

	rightLen := digitSplitLength(len(data))
	leftData := data[:len(data)-rightLen]
	rightData := data[len(data)-rightLen:]

	g, _ := errgroup.WithContext(context.Background())
	var left, right *Int
	g.Go(func() error {
		v, err := parseDigitsParallelDepth(leftData, depth-1)
		left = v
		return err
	})
	g.Go(func() error {
		v, err := parseDigitsParallelDepth(rightData, depth-1)
		right = v
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return combineDigitParts(left, right, rightLen)
}
