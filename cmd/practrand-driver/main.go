// Command practrand-driver streams generator output to stdout for
// empirical testing, eg.:
//
//	practrand-driver -algorithm jsf -seed 0xdeadbeef | RNG_test stdin64
//
// It spawns a tree of seed sequences, builds one generator per leaf and
// interleaves their raw output. Correlations between the spawned streams
// show up as PractRand failures, so this exercises the spawning contract
// as well as the core algorithm.
package main

import (
	"bufio"
	"encoding/binary"
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/safing/randbase/bitgen"
	"github.com/safing/randbase/bitgen/jsf"
	"github.com/safing/randbase/bitgen/mtwister"
	"github.com/safing/randbase/bitgen/pcg"
	"github.com/safing/randbase/bitgen/sfc"
	"github.com/safing/randbase/bitgen/xoshiro"
	"github.com/safing/randbase/seeds"
)

const drawsPerRound = 1024

func newGenerator(algorithm string, seq *seeds.Seq) (bitgen.Generator, error) {
	switch algorithm {
	case "jsf":
		g, err := jsf.New(seq)
		return g, err
	case "sfc":
		g, err := sfc.New(seq)
		return g, err
	case "pcg":
		g, err := pcg.New(seq)
		return g, err
	case "mtwister":
		g, err := mtwister.New(seq)
		return g, err
	case "xoshiro":
		g, err := xoshiro.New(seq)
		return g, err
	default:
		return nil, fmt.Errorf("unknown algorithm: %s", algorithm)
	}
}

func main() {
	seed := flag.String("seed", "", "root seed, decimal or 0x-prefixed hex; fresh OS entropy when empty")
	depth := flag.Int("depth", 4, "depth of the spawn tree")
	ply := flag.Int("ply", 8, "number of spawns at each level")
	algorithm := flag.String("algorithm", "jsf", "generator to stream: jsf, sfc, pcg, mtwister or xoshiro")
	flag.Parse()

	log.SetOutput(os.Stderr)

	var root *seeds.Seq
	var err error
	if *seed == "" {
		root, err = seeds.New()
	} else {
		root, err = seeds.New(*seed)
	}
	if err != nil {
		log.Fatalf("could not build root seed sequence: %s", err)
	}
	// Echo the root entropy so an interesting run can be reproduced.
	log.Infof("seed = %s", root.EntropyBig())

	// Generate ply^depth leaf sequences through the spawn API.
	nodes := []*seeds.Seq{root}
	for i := 0; i < *depth; i++ {
		var children []*seeds.Seq
		for _, node := range nodes {
			children = append(children, node.Spawn(*ply)...)
		}
		nodes = children
	}

	gens := make([]bitgen.Generator, len(nodes))
	for i, leaf := range nodes {
		gens[i], err = newGenerator(*algorithm, leaf)
		if err != nil {
			log.Fatalf("could not build generator: %s", err)
		}
	}
	log.Infof("streaming %d interleaved %s generators", len(gens), *algorithm)

	out := bufio.NewWriterSize(os.Stdout, 1<<16)
	draws := make([][]uint64, len(gens))
	for i := range draws {
		draws[i] = make([]uint64, drawsPerRound)
	}
	var word [8]byte
	for {
		for gi, g := range gens {
			for i := range draws[gi] {
				draws[gi][i] = g.Raw()
			}
		}
		for i := 0; i < drawsPerRound; i++ {
			for gi := range gens {
				binary.LittleEndian.PutUint64(word[:], draws[gi][i])
				if _, err := out.Write(word[:]); err != nil {
					log.Info("exiting")
					return
				}
			}
		}
		if err := out.Flush(); err != nil {
			// stdout closed, usually the test harness finishing.
			log.Info("exiting")
			return
		}
	}
}
