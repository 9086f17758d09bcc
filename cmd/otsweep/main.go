// Command otsweep runs Sample 3 across a grid of (PrimeBits, BlockCount)
// parameter choices and renders an interactive go-echarts scatter of
// modulus size against wall-clock cost.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/neopeer/neopeer/internal/otprof"
	"github.com/neopeer/neopeer/otcore"
)

type sweepPoint struct {
	primeBits  int
	blockCount int
	nBits      int
	setupMS    float64
	respMS     float64
	val        []interface{}
}

func parseIntList(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", part, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty list")
	}
	return out, nil
}

func runOne(primeBits, blockCount int) (sweepPoint, error) {
	params, err := otcore.NewParams(otcore.Params{
		PrimeBits:             primeBits,
		ModulusBits:           primeBits * 8,
		BlockCount:            blockCount,
		PolyCount:             4,
		BraidElementCount:     3,
		SigCoefficientMaxBits: 10,
	})
	if err != nil {
		return sweepPoint{}, err
	}

	setupStart := time.Now()
	moduli, err := otcore.NewModuli(rand.Reader, params)
	if err != nil {
		return sweepPoint{}, err
	}
	blocks, err := otcore.GenerateBlocks(rand.Reader, moduli, params.BlockCount)
	if err != nil {
		return sweepPoint{}, err
	}
	bs, err := otcore.NewBlindingState(rand.Reader, moduli)
	if err != nil {
		return sweepPoint{}, err
	}
	sel, err := otcore.NewSelection(rand.Reader)
	if err != nil {
		return sweepPoint{}, err
	}
	rs, err := otcore.NewRandomisers(rand.Reader, moduli, bs, sel)
	if err != nil {
		return sweepPoint{}, err
	}
	ctx := otcore.NewContext(params, moduli, false)
	carry, err := otcore.NewS3Carry(ctx, moduli, rs)
	if err != nil {
		return sweepPoint{}, err
	}
	otprof.Track(setupStart, "setup")
	setupMS := float64(time.Since(setupStart).Microseconds()) / 1000.0

	respStart := time.Now()
	responses := otcore.ResponseAllBlocksS3(ctx, carry, blocks)
	otprof.Track(respStart, "response")
	respMS := float64(time.Since(respStart).Microseconds()) / 1000.0

	for i, b := range responses {
		decode := otcore.DecodeS3(ctx, moduli, bs, b)
		if err := otcore.CheckDecode(i, decode, blocks[i].Value(sel.SIndex)); err != nil {
			return sweepPoint{}, fmt.Errorf("primebits=%d blockcount=%d: %w", primeBits, blockCount, err)
		}
	}

	nBits := moduli.N.BitLen()
	val := []interface{}{nBits, respMS, setupMS, primeBits, blockCount}
	return sweepPoint{
		primeBits:  primeBits,
		blockCount: blockCount,
		nBits:      nBits,
		setupMS:    setupMS,
		respMS:     respMS,
		val:        val,
	}, nil
}

func main() {
	primeBitsFlag := flag.String("primebits", "64,96,128", "comma-separated PrimeBits values to sweep")
	blockCountsFlag := flag.String("blockcounts", "100,500,1000", "comma-separated BlockCount values to sweep")
	outPath := flag.String("out", "otsweep.html", "output HTML file")
	flag.Parse()

	primeBitsList, err := parseIntList(*primeBitsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "otsweep: -primebits: %v\n", err)
		os.Exit(1)
	}
	blockCountsList, err := parseIntList(*blockCountsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "otsweep: -blockcounts: %v\n", err)
		os.Exit(1)
	}

	var points []sweepPoint
	for _, pb := range primeBitsList {
		for _, bc := range blockCountsList {
			fmt.Fprintf(os.Stderr, "[sweep] primebits=%d blockcount=%d\n", pb, bc)
			p, err := runOne(pb, bc)
			if err != nil {
				fmt.Fprintf(os.Stderr, "[sweep] skip: %v\n", err)
				continue
			}
			points = append(points, p)
		}
	}
	if len(points) == 0 {
		fmt.Fprintln(os.Stderr, "otsweep: no successful sweep points")
		os.Exit(1)
	}

	for _, e := range otprof.SnapshotAndReset() {
		fmt.Fprintf(os.Stderr, "[sweep] %-10s n=%-4d mean=%-10s min=%-10s max=%s\n",
			e.Label, e.Count, e.Mean(), e.Min, e.Max)
	}

	sort.Slice(points, func(i, j int) bool { return points[i].nBits < points[j].nBits })

	minMS, maxMS := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		if p.respMS < minMS {
			minMS = p.respMS
		}
		if p.respMS > maxMS {
			maxMS = p.respMS
		}
	}
	if maxMS <= minMS {
		maxMS = minMS + 1
	}

	page := components.NewPage().SetPageTitle("Modulus size vs. Sample-3 cost")

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Modulus size vs. Sample-3 cost"}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "item",
			Formatter: opts.FuncOpts(`
function (p) {
  var v = p.value || [];
  return [
    'n bits: ' + v[0],
    'response time: ' + v[1].toFixed(2) + ' ms',
    'setup time: ' + v[2].toFixed(2) + ' ms',
    'primebits: ' + v[3] + ', blockcount: ' + v[4]
  ].join('<br/>');
}`),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "n bit-length",
			Type: "value",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Sample-3 response time (ms)",
			Type: "value",
		}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "inside"},
			opts.DataZoom{Type: "slider"},
		),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: opts.Bool(true)},
				Restore:     &opts.ToolBoxFeatureRestore{Show: opts.Bool(true)},
				DataZoom:    &opts.ToolBoxFeatureDataZoom{Show: opts.Bool(true)},
			},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Type:       "continuous",
			Dimension:  "1",
			Min:        float32(minMS),
			Max:        float32(maxMS),
			Calculable: opts.Bool(true),
			Left:       "left",
			Top:        "middle",
			InRange:    &opts.VisualMapInRange{Color: []string{"#0ea5e9", "#22c55e", "#ef4444"}},
		}),
	)

	items := make([]opts.ScatterData, 0, len(points))
	for _, p := range points {
		items = append(items, opts.ScatterData{Value: p.val})
	}
	sc.AddSeries("Sample-3 sweep", items,
		charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "circle", SymbolSize: 9}),
	)

	page.AddCharts(sc)

	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "otsweep: create %s: %v\n", *outPath, err)
		os.Exit(1)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		fmt.Fprintf(os.Stderr, "otsweep: render: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %s | points: %d\n", *outPath, len(points))
}
