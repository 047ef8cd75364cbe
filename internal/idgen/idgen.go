// Package idgen generates record identifiers. Identifiers are wall-clock
// milliseconds made strictly monotonic process-wide, so rapid successive
// creations never collide while values remain comparable to ids minted by
// earlier versions of the exchange format.
package idgen

import (
	"sync/atomic"
	"time"
)

var last atomic.Int64

// Next returns a fresh identifier. Values are strictly increasing within
// the process; when the wall clock lags behind the last issued id, the
// counter advances by one instead.
func Next() int64 {
	for {
		now := time.Now().UnixMilli()
		prev := last.Load()
		if now <= prev {
			now = prev + 1
		}
		if last.CompareAndSwap(prev, now) {
			return now
		}
	}
}
