package loudness

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

const (
	blockDuration = 0.4  // seconds
	blockOverlap  = 0.75 // fraction shared by consecutive blocks
)

// Block is one gating block.
type Block struct {
	// Start is the index of the first sample in the block.
	Start int

	// Length is the number of samples averaged. It is the nominal 400 ms
	// block length except for signals shorter than one block.
	Length int

	// Energy holds the mean square of the K-weighted signal per channel.
	Energy []float64
}

// blockLayout returns the block length, hop and block count for n samples.
//
// A signal shorter than one block yields a single block over all n samples.
func blockLayout(n, sampleRate int) (size, hop, count int) {
	size = int(math.Round(blockDuration * float64(sampleRate)))
	hop = max(int(math.Round(float64(size)*(1-blockOverlap))), 1)

	if n < size {
		return n, hop, 1
	}

	return size, hop, (n-size)/hop + 1
}

// channelEnergies returns the mean square of every block of one filtered
// channel.
func channelEnergies(filtered []float64, size, hop, count int) []float64 {
	out := make([]float64, count)
	inv := 1 / float64(size)

	for j := range out {
		win := filtered[j*hop : j*hop+size]
		out[j] = vecmath.DotProduct(win, win) * inv
	}

	return out
}

// assembleBlocks transposes per-channel energies into blocks.
func assembleBlocks(energies [][]float64, size, hop, count int) []Block {
	blocks := make([]Block, count)

	for j := range blocks {
		e := make([]float64, len(energies))
		for c := range energies {
			e[c] = energies[c][j]
		}

		blocks[j] = Block{Start: j * hop, Length: size, Energy: e}
	}

	return blocks
}
