package rng

import (
	"time"
)

func tickDuration() time.Duration {
	// Aim to be ready in a tenth of the reseed interval.
	msecsAvailable := cfg.ReseedAfter.Milliseconds() / 10

	// One tick contributes an eighth of a bit of entropy.
	ticksNeeded := int64(cfg.MinFeedEntropy) * 8

	tickMsecs := msecsAvailable / ticksNeeded

	// Below 10 msecs per tick the jitter quality degrades.
	if tickMsecs < 10 {
		tickMsecs = 10
	}

	return time.Duration(tickMsecs) * time.Millisecond
}

// tickFeeder collects the least significant bit of the current nanosecond
// unixtime every tick. The more work the program does, the better the
// quality, as the scheduler cannot immediately run the goroutine when it's
// ready.
func tickFeeder() error {
	var value int64
	var pushes int
	feeder := NewFeeder()
	tick := tickDuration()

	for {
		select {
		case <-time.After(tick):
			value = (value << 1) | (time.Now().UnixNano() % 2)

			pushes++
			if pushes >= 64 {
				// 64 jitter bits, conservatively counted as 8
				// bits of entropy.
				feeder.SupplyEntropyAsInt(value, 8)
				pushes = 0
			}

		case <-shutdownSignal:
			return nil
		}
	}
}
