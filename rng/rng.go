// Package rng provides a Fortuna-based cryptographically secure random
// number generator that continuously collects entropy from the OS and from
// scheduler jitter. It also exposes the secure stream through the bitgen
// contract, so code written against bitgen.Generator can run on it
// unmodified.
//
// The module must be started before use and stopped when retired. Byte
// access (Read, Bytes, Number) reports failure explicitly; the bitgen draw
// path cannot, so it is only valid between Start and Stop.
package rng

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/aead/serpent"
	"github.com/seehuhn/fortuna"
	"github.com/tevino/abool"
	"golang.org/x/sync/errgroup"
)

const initialSeedSize = 32

var (
	rng               *fortuna.Generator
	rngLock           sync.Mutex
	rngReady          = abool.New()
	lastReseed        time.Time
	servedSinceReseed int

	cfg Config

	feedInput      chan *entropyData
	shutdownSignal chan struct{}
	feeders        *errgroup.Group

	reseedsTotal   = metrics.NewCounter("randbase_rng_reseeds_total")
	entropyFedBits = metrics.NewCounter("randbase_rng_entropy_fed_bits_total")
	servedBytes    = metrics.NewCounter("randbase_rng_served_bytes_total")
)

func newCipher(key []byte) (cipher.Block, error) {
	switch cfg.Cipher {
	case "aes":
		return aes.NewCipher(key)
	case "serpent":
		return serpent.NewCipher(key)
	default:
		return nil, fmt.Errorf("unknown or unsupported cipher: %s", cfg.Cipher)
	}
}

// Start initializes the generator with the given config, seeds it from the
// OS and launches the entropy feeders. Everything that can fail does so
// here: after a successful Start, draws always succeed until Stop.
func Start(config Config) error {
	rngLock.Lock()
	defer rngLock.Unlock()

	if rngReady.IsSet() {
		return errors.New("rng: already started")
	}
	if err := config.check(); err != nil {
		return err
	}
	cfg = config

	rng = fortuna.NewGenerator(newCipher)

	// Seed straight from the OS so the generator serves data before the
	// feeders deliver their first round.
	seed := make([]byte, initialSeedSize)
	if _, err := rand.Read(seed); err != nil {
		return fmt.Errorf("rng: could not read initial seed from os: %w", err)
	}
	rng.Reseed(seed)
	lastReseed = time.Now()
	servedSinceReseed = 0

	shutdownSignal = make(chan struct{})
	feedInput = make(chan *entropyData)
	feeders = &errgroup.Group{}
	feeders.Go(fullFeeder)
	feeders.Go(osFeeder)
	feeders.Go(tickFeeder)

	rngReady.Set()
	return nil
}

// Stop shuts down the entropy feeders and retires the generator. Draws
// through previously created Generators become invalid.
func Stop() error {
	if !rngReady.SetToIf(true, false) {
		return nil
	}
	close(shutdownSignal)
	return feeders.Wait()
}

// reseed mixes the collected entropy pool into the generator.
func reseed(pool []byte) {
	rngLock.Lock()
	defer rngLock.Unlock()

	rng.Reseed(pool)
	lastReseed = time.Now()
	servedSinceReseed = 0
	reseedsTotal.Inc()
}
