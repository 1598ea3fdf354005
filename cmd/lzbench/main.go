// lzbench - LZTOK size benchmark runner
//
// Compares LZTOK tokens against deflate and brotli baselines:
//   - Bytes on wire (escaped token vs raw compressed bytes)
//   - Compression ratio per sample
//
// The baselines produce binary output that would still need
// base64-style expansion (~4/3) to travel in a URL; the report shows
// raw baseline bytes and leaves that adjustment to the reader.
//
// Usage:
//
//	lzbench [--corpus=dir] [--format=csv|markdown] [--chart=out.svg]
//
// Without --corpus a built-in sample set is used. With --corpus every
// regular file in the directory becomes one sample.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/flate"
	flag "github.com/spf13/pflag"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/queueworks/lztok/lztok"
	"github.com/queueworks/lztok/transport"
)

type caseResult struct {
	Name         string
	InputBytes   int
	TokenSymbols int
	EscapedBytes int
	DeflateBytes int
	BrotliBytes  int
}

// tokenPct is the escaped token size as a percentage of the input.
func (r caseResult) tokenPct() float64 {
	if r.InputBytes == 0 {
		return 0
	}
	return 100 * float64(r.EscapedBytes) / float64(r.InputBytes)
}

var builtinSamples = []struct {
	name string
	text string
}{
	{"short_label", "queued"},
	{"csv_rows", "id,name,status\n1,alpha,queued\n2,bravo,queued\n3,charlie,done\n4,delta,queued\n5,echo,queued\n"},
	{"prose", "During tattooing the artist repeatedly dips the needle, wipes the skin, and checks the stencil against the outline before continuing with the shading."},
	{"repeated", "the cat sat on the mat. the cat sat on the mat. the cat sat on the mat. the cat sat on the mat. "},
	{"unicode", "日本語テキスト圧縮のサンプル。日本語テキスト圧縮のサンプル。"},
	{"url_list", "https://example.com/a?x=1\nhttps://example.com/b?x=2\nhttps://example.com/c?x=3\n"},
}

func main() {
	corpusDir := flag.String("corpus", "", "directory of sample files (one sample per file)")
	format := flag.String("format", "markdown", "output format: csv or markdown")
	chartPath := flag.String("chart", "", "write an SVG scatter chart of ratio vs input size")
	flag.Parse()

	samples, err := loadSamples(*corpusDir)
	if err != nil {
		fatal("%v", err)
	}
	if len(samples) == 0 {
		fatal("no samples to measure")
	}

	results := make([]caseResult, 0, len(samples))
	for _, s := range samples {
		r, err := measure(s.name, s.text)
		if err != nil {
			fatal("measure %s: %v", s.name, err)
		}
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].InputBytes < results[j].InputBytes
	})

	switch *format {
	case "csv":
		printCSV(results)
	case "markdown":
		printMarkdown(results)
	default:
		fatal("unknown format: %s", *format)
	}

	if *chartPath != "" {
		if err := renderChart(*chartPath, results); err != nil {
			fatal("render chart: %v", err)
		}
		fmt.Fprintf(os.Stderr, "chart written to %s\n", *chartPath)
	}
}

type sample struct {
	name string
	text string
}

func loadSamples(dir string) ([]sample, error) {
	if dir == "" {
		samples := make([]sample, 0, len(builtinSamples))
		for _, s := range builtinSamples {
			samples = append(samples, sample{s.name, s.text})
		}
		return samples, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	var samples []sample
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read sample: %w", err)
		}
		samples = append(samples, sample{entry.Name(), string(data)})
	}
	return samples, nil
}

func measure(name, text string) (caseResult, error) {
	token := lztok.Compress(text)

	df, err := deflateSize(text)
	if err != nil {
		return caseResult{}, err
	}
	br, err := brotliSize(text)
	if err != nil {
		return caseResult{}, err
	}

	return caseResult{
		Name:         name,
		InputBytes:   len(text),
		TokenSymbols: len(token),
		EscapedBytes: len(transport.EscapeToken(token)),
		DeflateBytes: df,
		BrotliBytes:  br,
	}, nil
}

func deflateSize(text string) (int, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return 0, err
	}
	if _, err := w.Write([]byte(text)); err != nil {
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

func brotliSize(text string) (int, error) {
	var buf bytes.Buffer
	w := brotli.NewWriterLevel(&buf, brotli.BestCompression)
	if _, err := w.Write([]byte(text)); err != nil {
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

func printCSV(results []caseResult) {
	fmt.Println("name,input_bytes,token_symbols,escaped_bytes,token_pct,deflate_bytes,brotli_bytes")
	for _, r := range results {
		fmt.Printf("%s,%d,%d,%d,%.1f,%d,%d\n",
			r.Name, r.InputBytes, r.TokenSymbols, r.EscapedBytes, r.tokenPct(),
			r.DeflateBytes, r.BrotliBytes)
	}
}

func printMarkdown(results []caseResult) {
	fmt.Println("| sample | input | token | escaped | token % | deflate | brotli |")
	fmt.Println("|--------|------:|------:|--------:|--------:|--------:|-------:|")
	for _, r := range results {
		fmt.Printf("| %s | %d | %d | %d | %.1f%% | %d | %d |\n",
			r.Name, r.InputBytes, r.TokenSymbols, r.EscapedBytes, r.tokenPct(),
			r.DeflateBytes, r.BrotliBytes)
	}
}

// renderChart writes a scatter plot of token ratio against input
// size, one point per sample.
func renderChart(path string, results []caseResult) error {
	xvals := make([]float64, 0, len(results))
	yvals := make([]float64, 0, len(results))
	for _, r := range results {
		xvals = append(xvals, float64(r.InputBytes))
		yvals = append(yvals, r.tokenPct())
	}

	graph := chart.Chart{
		XAxis: chart.XAxis{Name: "input bytes"},
		YAxis: chart.YAxis{Name: "token size %"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style:   chart.Style{DotWidth: 4},
				XValues: xvals,
				YValues: yvals,
			},
		},
	}

	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fh.Close()
	return graph.Render(chart.SVG, fh)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "lzbench: "+format+"\n", args...)
	os.Exit(1)
}
