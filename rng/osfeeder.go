package rng

import (
	"crypto/rand"
	"time"

	log "github.com/sirupsen/logrus"
)

// osFeeder periodically hands a full helping of OS entropy to the RNG.
func osFeeder() error {
	feeder := NewFeeder()
	for {
		minEntropyBytes := cfg.MinFeedEntropy/8 + 1
		if minEntropyBytes < 32 {
			minEntropyBytes = 64
		}

		osEntropy := make([]byte, minEntropyBytes)
		n, err := rand.Read(osEntropy)
		if err != nil {
			log.Errorf("rng: could not read entropy from os: %s", err)
			if !sleepOrShutdown(10 * time.Second) {
				return nil
			}
			continue
		}
		if n != minEntropyBytes {
			log.Errorf("rng: could not read enough entropy from os: got only %d bytes instead of %d", n, minEntropyBytes)
			if !sleepOrShutdown(10 * time.Second) {
				return nil
			}
			continue
		}

		feeder.SupplyEntropy(osEntropy, minEntropyBytes*8)

		// The OS source alone could keep the pool saturated. Back off
		// so the jitter source contributes too.
		if !sleepOrShutdown(cfg.ReseedAfter / 2) {
			return nil
		}
	}
}

// sleepOrShutdown sleeps for d and reports false when the module shut down
// instead.
func sleepOrShutdown(d time.Duration) bool {
	select {
	case <-time.After(d):
		return true
	case <-shutdownSignal:
		return false
	}
}
