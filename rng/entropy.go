package rng

import "encoding/binary"

type entropyData struct {
	data    []byte
	entropy int // bits
}

// Feeder supplies entropy from one source to the RNG. Supplying blocks
// until the full feeder accepts the data, which paces sources that deliver
// faster than entropy is consumed.
type Feeder struct {
	input chan *entropyData
}

// NewFeeder returns a Feeder connected to the running module.
func NewFeeder() *Feeder {
	return &Feeder{
		input: feedInput,
	}
}

// SupplyEntropy hands data with the given estimated entropy (in bits) to
// the RNG. Returns without feeding when the module is shutting down.
func (f *Feeder) SupplyEntropy(data []byte, bits int) {
	select {
	case f.input <- &entropyData{data: data, entropy: bits}:
	case <-shutdownSignal:
	}
}

// SupplyEntropyAsInt feeds a single integer value.
func (f *Feeder) SupplyEntropyAsInt(value int64, bits int) {
	data := make([]byte, 8)
	binary.LittleEndian.PutUint64(data, uint64(value))
	f.SupplyEntropy(data, bits)
}

// fullFeeder collects supplied entropy and reseeds the generator every time
// the configured minimum has accumulated.
func fullFeeder() error {
	var pool []byte
	var poolBits int

	for {
		select {
		case ed := <-feedInput:
			pool = append(pool, ed.data...)
			poolBits += ed.entropy
			entropyFedBits.Add(ed.entropy)
			if poolBits >= cfg.MinFeedEntropy {
				reseed(pool)
				pool = pool[:0]
				poolBits = 0
			}
		case <-shutdownSignal:
			return nil
		}
	}
}
