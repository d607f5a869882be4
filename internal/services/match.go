package services

import (
	"github.com/yungbote/eurojackpot-backend/internal/types"
)

// CountMatches computes how many numbers a prediction shares with a draw,
// split by main/euro plus their sum. Pure function over two fixed-size sets.
func CountMatches(pred *types.Prediction, draw *types.Draw) types.MatchResult {
	main := intersectCount(pred.Main, draw.Main)
	euro := intersectCount(pred.Euro, draw.Euro)
	return types.MatchResult{Main: main, Euro: euro, Total: main + euro}
}

func intersectCount(a, b []int) int {
	seen := make(map[int]struct{}, len(a))
	for _, n := range a {
		seen[n] = struct{}{}
	}
	count := 0
	for _, n := range b {
		if _, ok := seen[n]; ok {
			count++
			// each shared value counts once
			delete(seen, n)
		}
	}
	return count
}
