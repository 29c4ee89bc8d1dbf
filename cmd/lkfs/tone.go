package main

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-lkfs/dsp/core"
	"github.com/cwbudde/algo-lkfs/internal/wavio"
)

type toneCmd struct {
	Freq     float64 `default:"1000" help:"Frequency in Hz."`
	Level    float64 `default:"-23" help:"Peak level in dBFS."`
	Duration float64 `default:"20" help:"Length in seconds."`
	Channels int     `default:"2" help:"Number of identical channels."`
	Rate     int     `default:"48000" help:"Sample rate in Hz."`
	Bits     int     `default:"24" help:"Bit depth: 8, 16, 24 or 32."`
	Dither   bool    `help:"Add TPDF dither of one LSB before quantizing."`
	Seed     int64   `default:"1" help:"Dither noise seed."`

	Out string `arg:"" name:"out" help:"Output WAV file." type:"path"`
}

func (c *toneCmd) Run(log *zap.Logger) error {
	a, err := c.generate()
	if err != nil {
		return err
	}

	if c.Dither {
		if a, err = wavio.Dither(a, c.Bits, c.Seed); err != nil {
			return err
		}
	}

	if err := wavio.Save(c.Out, a, c.Bits); err != nil {
		return err
	}

	log.Debug("tone written",
		zap.String("file", c.Out),
		zap.Float64("freq", c.Freq),
		zap.Float64("level", c.Level),
		zap.Int("frames", a.Frames()),
		zap.Bool("dither", c.Dither),
	)

	return nil
}

func (c *toneCmd) generate() (wavio.Audio, error) {
	switch {
	case c.Rate <= 0:
		return wavio.Audio{}, fmt.Errorf("sample rate %d must be positive", c.Rate)
	case c.Channels <= 0:
		return wavio.Audio{}, fmt.Errorf("channel count %d must be positive", c.Channels)
	case c.Duration <= 0:
		return wavio.Audio{}, fmt.Errorf("duration %v must be positive", c.Duration)
	case c.Freq <= 0 || c.Freq >= float64(c.Rate)/2:
		return wavio.Audio{}, fmt.Errorf("frequency %v Hz must lie in (0, %d)", c.Freq, c.Rate/2)
	case c.Level > 0:
		return wavio.Audio{}, fmt.Errorf("level %v dBFS clips", c.Level)
	}

	n := int(math.Round(c.Duration * float64(c.Rate)))
	amp := core.DBToLinear(c.Level)
	step := 2 * math.Pi * c.Freq / float64(c.Rate)

	sine := make([]float64, n)
	for i := range sine {
		sine[i] = amp * math.Sin(step*float64(i))
	}

	samples := make([][]float64, c.Channels)
	for ch := range samples {
		samples[ch] = sine
	}

	return wavio.Audio{Samples: samples, SampleRate: c.Rate}, nil
}
