package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-lkfs/dsp/filter/weighting"
	"github.com/cwbudde/algo-lkfs/internal/wavio"
	"github.com/cwbudde/algo-lkfs/measure/loudness"
	"github.com/cwbudde/algo-lkfs/stats/level"
)

var errMeasureFailed = errors.New("one or more files could not be measured")

type measureCmd struct {
	Filter  string    `enum:"bs1770,rbj" default:"bs1770" help:"K-weighting design (${enum})."`
	Weights []float64 `sep:"," help:"Per-channel weights, one per channel in file order."`
	JSON    bool      `name:"json" help:"Print one JSON object per file."`

	Files []string `arg:"" name:"files" help:"WAV files to measure." type:"path"`
}

// report is the outcome for one file.
type report struct {
	File              string    `json:"file"`
	SampleRate        int       `json:"sample_rate,omitempty"`
	Channels          int       `json:"channels,omitempty"`
	Duration          float64   `json:"duration_s,omitempty"`
	SamplePeak        *float64  `json:"sample_peak_dbfs,omitempty"`
	Clipped           int       `json:"clipped,omitempty"`
	Integrated        *float64  `json:"integrated_lkfs,omitempty"`
	Blocks            int       `json:"blocks,omitempty"`
	AbsoluteGated     int       `json:"absolute_gated,omitempty"`
	RelativeGated     int       `json:"relative_gated,omitempty"`
	RelativeThreshold *float64  `json:"relative_threshold_lkfs,omitempty"`
	RelativeFallback  bool      `json:"relative_fallback,omitempty"`
	Weights           []float64 `json:"weights,omitempty"`
	Error             string    `json:"error,omitempty"`
}

func (c *measureCmd) Run(log *zap.Logger) error {
	return c.run(os.Stdout, log)
}

func (c *measureCmd) options() ([]loudness.Option, error) {
	t, ok := weighting.ParseType(c.Filter)
	if !ok {
		return nil, fmt.Errorf("unknown filter %q", c.Filter)
	}

	opts := []loudness.Option{loudness.WithKWeighting(t)}
	if len(c.Weights) > 0 {
		opts = append(opts, loudness.WithChannelWeights(c.Weights))
	}

	return opts, nil
}

func (c *measureCmd) run(w io.Writer, log *zap.Logger) error {
	opts, err := c.options()
	if err != nil {
		return err
	}

	reports := make([]report, 0, len(c.Files))
	failed := 0

	for _, path := range c.Files {
		r := measureFile(path, opts, log)
		if r.Error != "" {
			failed++
		}

		reports = append(reports, r)
	}

	if c.JSON {
		err = writeJSON(w, reports)
	} else {
		err = writeTable(w, reports)
	}

	if err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errMeasureFailed, failed, len(c.Files))
	}

	return nil
}

func measureFile(path string, opts []loudness.Option, log *zap.Logger) report {
	log = log.With(zap.String("file", path))

	a, err := wavio.Load(path)
	if err != nil {
		log.Error("decode failed", zap.Error(err))
		return report{File: path, Error: err.Error()}
	}

	log.Debug("decoded",
		zap.Int("sample_rate", a.SampleRate),
		zap.Int("channels", a.Channels()),
		zap.Int("frames", a.Frames()),
		zap.Int("bit_depth", a.BitDepth),
	)

	r := report{
		File:       path,
		SampleRate: a.SampleRate,
		Channels:   a.Channels(),
		Duration:   float64(a.Frames()) / float64(a.SampleRate),
	}

	if lv := level.Programme(a.Samples); !math.IsInf(lv.PeakDBFS, 0) {
		r.SamplePeak = &lv.PeakDBFS
		r.Clipped = lv.Clipped
	}

	res, err := loudness.Measure(a.Samples, a.SampleRate, opts...)
	if err != nil {
		log.Error("measurement failed", zap.Error(err))
		r.Error = err.Error()

		return r
	}

	log.Debug("measured",
		zap.Float64("integrated", res.Integrated),
		zap.Int("blocks", res.Blocks),
		zap.Int("absolute_gated", res.AbsoluteGated),
		zap.Int("relative_gated", res.RelativeGated),
		zap.Float64("relative_threshold", res.RelativeThreshold),
	)

	if res.RelativeFallback {
		log.Warn("no block passed the relative gate, using absolute-gate mean")
	}

	r.Integrated = &res.Integrated
	r.Blocks = res.Blocks
	r.AbsoluteGated = res.AbsoluteGated
	r.RelativeGated = res.RelativeGated
	r.RelativeThreshold = &res.RelativeThreshold
	r.RelativeFallback = res.RelativeFallback
	r.Weights = res.Weights

	return r
}

func writeJSON(w io.Writer, reports []report) error {
	enc := json.NewEncoder(w)
	for _, r := range reports {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}

	return nil
}

// writeTable aligns plain cells first and styles whole lines afterwards, so
// escape sequences never count towards column widths.
func writeTable(w io.Writer, reports []report) error {
	var plain bytes.Buffer

	tw := tabwriter.NewWriter(&plain, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "File\tIntegrated\tRel. gate\tBlocks\tPeak\tFormat")

	for _, r := range reports {
		if r.Error != "" {
			fmt.Fprintf(tw, "%s\terror\t\t\t\t%s\n", r.File, r.Error)
			continue
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%d/%d/%d\t%s\t%d Hz, %d ch, %.1f s\n",
			r.File,
			formatLKFS(r.Integrated),
			formatLKFS(r.RelativeThreshold),
			r.RelativeGated, r.AbsoluteGated, r.Blocks,
			formatPeak(r),
			r.SampleRate, r.Channels, r.Duration,
		)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	lines := strings.Split(strings.TrimSuffix(plain.String(), "\n"), "\n")
	for i, line := range lines {
		style := rowStyle
		switch {
		case i == 0:
			style = headerStyle
		case reports[i-1].Error != "" || reports[i-1].Clipped > 0:
			style = errorStyle
		}

		if _, err := fmt.Fprintln(w, style.Render(line)); err != nil {
			return err
		}
	}

	return nil
}

func formatLKFS(v *float64) string {
	if v == nil {
		return "-"
	}

	return fmt.Sprintf("%.1f LKFS", *v)
}

func formatPeak(r report) string {
	if r.SamplePeak == nil {
		return "-"
	}

	s := fmt.Sprintf("%.1f dBFS", *r.SamplePeak)
	if r.Clipped > 0 {
		s += fmt.Sprintf(" (%d clipped)", r.Clipped)
	}

	return s
}
