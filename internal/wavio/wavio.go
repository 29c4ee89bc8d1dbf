// Package wavio decodes and encodes integer PCM WAV files as channel-major
// float64 waveforms.
package wavio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/cwbudde/algo-vecmath"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

var (
	// ErrInvalidFile is returned when the input is not a readable WAV file.
	ErrInvalidFile = errors.New("wavio: invalid WAV file")

	// ErrUnsupportedFormat is returned for encodings other than 8/16/24/32-bit
	// integer PCM.
	ErrUnsupportedFormat = errors.New("wavio: unsupported WAV format")
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

// Audio is a decoded waveform.
type Audio struct {
	// Samples is channel-major, scaled to [-1, 1).
	Samples [][]float64

	SampleRate int

	// BitDepth is the source sample size in bits.
	BitDepth int
}

// Channels returns the number of channels.
func (a Audio) Channels() int { return len(a.Samples) }

// Frames returns the number of samples per channel.
func (a Audio) Frames() int {
	if len(a.Samples) == 0 {
		return 0
	}

	return len(a.Samples[0])
}

// Load decodes the WAV file at path.
func Load(path string) (Audio, error) {
	f, err := os.Open(path)
	if err != nil {
		return Audio{}, err
	}
	defer f.Close()

	a, err := Decode(f)
	if err != nil {
		return Audio{}, fmt.Errorf("%s: %w", path, err)
	}

	return a, nil
}

// Decode reads a whole WAV stream.
func Decode(r io.ReadSeeker) (Audio, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return Audio{}, ErrInvalidFile
	}

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return Audio{}, fmt.Errorf("%w: audio format %#x", ErrUnsupportedFormat, dec.WavAudioFormat)
	}

	bits := int(dec.BitDepth)
	if !supportedDepth(bits) {
		return Audio{}, fmt.Errorf("%w: %d-bit samples", ErrUnsupportedFormat, bits)
	}

	channels := int(dec.NumChans)
	if channels == 0 || dec.SampleRate == 0 {
		return Audio{}, fmt.Errorf("%w: %d channels at %d Hz", ErrInvalidFile, channels, dec.SampleRate)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Audio{}, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	frames := len(buf.Data) / channels
	scale := 1 / fullScale(bits)

	offset := 0
	if bits == 8 {
		offset = 128
	}

	samples := make([][]float64, channels)
	for c := range samples {
		ch := make([]float64, frames)
		for i := range ch {
			ch[i] = float64(buf.Data[i*channels+c]-offset) * scale
		}

		samples[c] = ch
	}

	return Audio{Samples: samples, SampleRate: int(dec.SampleRate), BitDepth: bits}, nil
}

// Encode writes a as integer PCM at bitDepth. Samples are rounded to the
// nearest step and clipped to the representable range.
func Encode(w io.WriteSeeker, a Audio, bitDepth int) error {
	if !supportedDepth(bitDepth) {
		return fmt.Errorf("%w: %d-bit samples", ErrUnsupportedFormat, bitDepth)
	}

	channels := a.Channels()
	if channels == 0 || a.SampleRate <= 0 {
		return fmt.Errorf("%w: %d channels at %d Hz", ErrInvalidFile, channels, a.SampleRate)
	}

	frames := a.Frames()
	for c, ch := range a.Samples {
		if len(ch) != frames {
			return fmt.Errorf("%w: channel %d has %d samples, channel 0 has %d", ErrInvalidFile, c, len(ch), frames)
		}
	}

	full := fullScale(bitDepth)
	lo, hi := -full, full-1

	offset := 0
	if bitDepth == 8 {
		offset = 128
	}

	data := make([]int, frames*channels)
	for c, ch := range a.Samples {
		for i, v := range ch {
			q := math.Max(lo, math.Min(hi, math.Round(v*full)))
			data[i*channels+c] = int(q) + offset
		}
	}

	enc := wav.NewEncoder(w, a.SampleRate, bitDepth, channels, formatPCM)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: a.SampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return err
	}

	return enc.Close()
}

// Save encodes a to a new file at path.
func Save(path string, a Audio, bitDepth int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Encode(f, a, bitDepth); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return f.Close()
}

// Dither returns a copy of a with TPDF dither of one LSB at bitDepth added
// to every channel. The noise is deterministic for a given seed.
func Dither(a Audio, bitDepth int, seed int64) (Audio, error) {
	if !supportedDepth(bitDepth) {
		return Audio{}, fmt.Errorf("%w: %d-bit samples", ErrUnsupportedFormat, bitDepth)
	}

	state := vecmath.NewDitherState(seed)
	lsb := 1 / fullScale(bitDepth)

	out := a
	out.Samples = make([][]float64, len(a.Samples))

	for c, ch := range a.Samples {
		d := append([]float64(nil), ch...)
		vecmath.AddDitherTPDF(d, lsb, state)
		out.Samples[c] = d
	}

	return out, nil
}

func supportedDepth(bits int) bool {
	switch bits {
	case 8, 16, 24, 32:
		return true
	default:
		return false
	}
}

func fullScale(bits int) float64 {
	return math.Ldexp(1, bits-1)
}
