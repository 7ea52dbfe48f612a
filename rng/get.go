package rng

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"time"

	log "github.com/sirupsen/logrus"
)

// Reader provides global io.Reader access to the secure stream.
var Reader io.Reader = reader{}

type reader struct{}

func (reader) Read(p []byte) (int, error) {
	return Read(p)
}

// getBytes serves n bytes from the generator, reseeding opportunistically
// when the stream ran too long or too far since the last reseed.
func getBytes(n int) ([]byte, error) {
	if !rngReady.IsSet() {
		return nil, errors.New("rng: not started")
	}

	rngLock.Lock()
	defer rngLock.Unlock()

	if servedSinceReseed+n > cfg.ReseedAfterBytes || time.Since(lastReseed) > cfg.ReseedAfter {
		osSeed := make([]byte, initialSeedSize)
		if _, err := rand.Read(osSeed); err != nil {
			// Not fatal, the stream stays secure, just reseeds later.
			log.Warnf("rng: could not read entropy from os for reseeding: %s", err)
		} else {
			rng.Reseed(osSeed)
			lastReseed = time.Now()
			servedSinceReseed = 0
			reseedsTotal.Inc()
		}
	}

	b := rng.PseudoRandomData(uint(n))
	servedSinceReseed += n
	servedBytes.Add(n)
	return b, nil
}

// Read fills p with random data. It always fills the whole slice.
func Read(p []byte) (n int, err error) {
	b, err := getBytes(len(p))
	if err != nil {
		return 0, err
	}
	copy(p, b)
	return len(p), nil
}

// Bytes returns n bytes of random data.
func Bytes(n int) ([]byte, error) {
	return getBytes(n)
}

// Number returns an unbiased random number in [0, max). It fails if max
// is 0 or the module is not started.
func Number(max uint64) (uint64, error) {
	if max == 0 {
		return 0, errors.New("rng: cannot draw a number below 0")
	}

	// Reject candidates from the biased tail of the 64-bit range.
	secureLimit := math.MaxUint64 - (math.MaxUint64 % max)
	for {
		b, err := getBytes(8)
		if err != nil {
			return 0, err
		}
		candidate := binary.LittleEndian.Uint64(b)
		if candidate < secureLimit {
			return candidate % max, nil
		}
	}
}
