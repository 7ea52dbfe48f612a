// Package seeds turns arbitrary-quality entropy into high-quality seed
// material for bit generators, and spawns independent child sequences for
// parallel streams.
//
// The mixing algorithm is derived from Melissa E. O'Neill's C++11
// std::seed_seq alternative:
// http://www.pcg-random.org/posts/developing-a-seed_seq-alternative.html
package seeds

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math/big"
)

// DefaultPoolSize is the default and minimum entropy pool size in 32-bit
// words. 128 bits of pool state is enough to seed any generator in this
// repo without collision worries.
const DefaultPoolSize = 4

const (
	initA    uint32 = 0x43b0d7e5
	multA    uint32 = 0x931e8875
	initB    uint32 = 0x8b51f9dd
	multB    uint32 = 0x58f38ded
	mixMultL uint32 = 0xca01f9dd
	mixMultR uint32 = 0x4973f715
	xshift          = 16
)

// Seq is one seed sequence: an entropy pool mixed from run entropy,
// optional program entropy and the spawn key. Two sequences built from the
// same inputs generate identical words; any difference in inputs, including
// the spawn key alone, decorrelates them.
type Seq struct {
	entropy  []uint32
	program  []uint32
	spawnKey []uint32
	pool     []uint32
	spawned  uint64
}

// Options adjusts sequence construction beyond the common case.
type Options struct {
	// Program is entropy fixed per deployment (eg. a worker ID), mixed
	// in after the run entropy. Same accepted kinds as Words.
	Program any

	// PoolSize is the entropy pool size in 32-bit words. Zero means
	// DefaultPoolSize; smaller values are rejected.
	PoolSize int
}

// New builds a sequence from the given entropy material (see Words for the
// accepted kinds). With no material, fresh entropy is read from the OS.
func New(entropy ...any) (*Seq, error) {
	return NewWithOptions(Options{}, entropy...)
}

// NewWithOptions is New with explicit Options.
func NewWithOptions(opts Options, entropy ...any) (*Seq, error) {
	poolSize := opts.PoolSize
	if poolSize == 0 {
		poolSize = DefaultPoolSize
	}
	if poolSize < DefaultPoolSize {
		return nil, fmt.Errorf("seeds: pool size must be at least %d words, got %d", DefaultPoolSize, poolSize)
	}

	var entropyWords []uint32
	var err error
	if len(entropy) == 0 {
		entropyWords, err = osEntropy(poolSize)
	} else {
		entropyWords, err = Words(entropy...)
	}
	if err != nil {
		return nil, fmt.Errorf("seeds: %w", err)
	}

	var programWords []uint32
	if opts.Program != nil {
		programWords, err = Words(opts.Program)
		if err != nil {
			return nil, fmt.Errorf("seeds: program entropy: %w", err)
		}
	}

	return newSeq(entropyWords, programWords, nil, poolSize), nil
}

func newSeq(entropy, program, spawnKey []uint32, poolSize int) *Seq {
	s := &Seq{
		entropy:  entropy,
		program:  program,
		spawnKey: spawnKey,
		pool:     make([]uint32, poolSize),
	}
	s.mix(s.assembled())
	return s
}

// assembled concatenates all entropy sources in their fixed order.
func (s *Seq) assembled() []uint32 {
	out := make([]uint32, 0, len(s.entropy)+len(s.program)+len(s.spawnKey))
	out = append(out, s.entropy...)
	out = append(out, s.program...)
	out = append(out, s.spawnKey...)
	return out
}

// mix folds the assembled entropy into the pool. Every input bit can affect
// every pool bit, including entropy beyond the pool size.
func (s *Seq) mix(ent []uint32) {
	hashConst := initA
	hash := func(v uint32) uint32 {
		// The multiplier changes with every hashed word.
		v ^= hashConst
		hashConst *= multA
		v *= hashConst
		v ^= v >> xshift
		return v
	}
	mix := func(x, y uint32) uint32 {
		r := mixMultL*x - mixMultR*y
		r ^= r >> xshift
		return r
	}

	pool := s.pool
	for i := range pool {
		if i < len(ent) {
			pool[i] = hash(ent[i])
		} else {
			// Pool is bigger than the entropy, keep running the
			// hash out.
			pool[i] = hash(0)
		}
	}

	// Mix all pool words together so late bits can affect earlier bits.
	for src := range pool {
		for dst := range pool {
			if src != dst {
				pool[dst] = mix(pool[dst], hash(pool[src]))
			}
		}
	}

	// Fold in entropy beyond the pool size, each word into each pool word.
	for src := len(pool); src < len(ent); src++ {
		for dst := range pool {
			pool[dst] = mix(pool[dst], hash(ent[src]))
		}
	}
}

// Generate returns n words of seed material. Repeated calls return the same
// words; the pool does not advance.
func (s *Seq) Generate(n int) []uint32 {
	hashConst := initB
	out := make([]uint32, n)
	for i := range out {
		v := s.pool[i%len(s.pool)]
		v ^= hashConst
		hashConst *= multB
		v *= hashConst
		v ^= v >> xshift
		out[i] = v
	}
	return out
}

// GenerateUint64 returns n 64-bit words of seed material, each assembled
// from two 32-bit words, low word first.
func (s *Seq) GenerateUint64(n int) []uint64 {
	words := s.Generate(2 * n)
	out := make([]uint64, n)
	for i := range out {
		out[i] = uint64(words[2*i]) | uint64(words[2*i+1])<<32
	}
	return out
}

// Spawn derives n child sequences by extending the spawn key with a running
// child index. Children are decorrelated from the parent and from each
// other, and the numbering continues across calls.
func (s *Seq) Spawn(n int) []*Seq {
	out := make([]*Seq, 0, n)
	for i := uint64(0); i < uint64(n); i++ {
		key := make([]uint32, 0, len(s.spawnKey)+2)
		key = append(key, s.spawnKey...)
		key = appendUintWords(key, s.spawned+i)
		out = append(out, newSeq(s.entropy, s.program, key, len(s.pool)))
	}
	s.spawned += uint64(n)
	return out
}

// Entropy returns a copy of the run entropy words. Together with SpawnKey
// this is enough to reconstruct the sequence.
func (s *Seq) Entropy() []uint32 {
	out := make([]uint32, len(s.entropy))
	copy(out, s.entropy)
	return out
}

// EntropyBig returns the run entropy as one integer, for display.
func (s *Seq) EntropyBig() *big.Int {
	n := new(big.Int)
	for i := len(s.entropy) - 1; i >= 0; i-- {
		n.Lsh(n, 32)
		n.Or(n, big.NewInt(int64(s.entropy[i])))
	}
	return n
}

// SpawnKey returns a copy of the spawn key words.
func (s *Seq) SpawnKey() []uint32 {
	out := make([]uint32, len(s.spawnKey))
	copy(out, s.spawnKey)
	return out
}

func osEntropy(words int) ([]uint32, error) {
	buf := make([]byte, words*4)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("could not read entropy from os: %w", err)
	}
	out := make([]uint32, words)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(buf[i*4:])
	}
	return out, nil
}
