package lztok

import (
	"bytes"
	"strings"
	"testing"

	"github.com/klauspost/compress/flate"
)

// deflateSize returns the deflate-compressed size of text at best
// compression. Used as a baseline, not as a competitor: deflate
// produces binary output that still needs base64-style expansion
// before it can travel in a URL.
func deflateSize(tb testing.TB, text string) int {
	tb.Helper()
	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		tb.Fatalf("flate writer: %v", err)
	}
	if _, err := fw.Write([]byte(text)); err != nil {
		tb.Fatalf("flate write: %v", err)
	}
	if err := fw.Close(); err != nil {
		tb.Fatalf("flate close: %v", err)
	}
	return buf.Len()
}

func TestSavingsSummary(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"short_label", "queued"},
		{"csv_rows", "id,name,status\n1,alpha,queued\n2,bravo,queued\n3,charlie,done\n4,delta,queued\n"},
		{"repeated_sentence", strings.Repeat("the cat sat on the mat. ", 20)},
		{"prose", "During tattooing the artist repeatedly dips the needle, wipes the skin, and checks the stencil against the outline."},
		{"unicode", strings.Repeat("日本語テキスト圧縮 ", 12)},
	}

	t.Log("")
	t.Log("sample              input  token  token%  deflate")
	t.Log("--------------------------------------------------")
	for _, c := range cases {
		inBytes := len(c.text)
		token := Compress(c.text)
		df := deflateSize(t, c.text)
		t.Logf("%-18s %6d %6d %6.1f%% %8d", c.name, inBytes, len(token),
			100*float64(len(token))/float64(inBytes), df)

		// Sanity: tokens for repetitive text must actually shrink.
		if strings.Contains(c.name, "repeated") && len(token) >= inBytes {
			t.Errorf("%s: token (%d symbols) did not shrink below input (%d bytes)",
				c.name, len(token), inBytes)
		}
	}
}

func BenchmarkCompress(b *testing.B) {
	text := strings.Repeat("id,name,status\n42,row forty two,queued\n", 50)
	b.SetBytes(int64(len(text)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Compress(text)
	}
}

func BenchmarkDecompress(b *testing.B) {
	text := strings.Repeat("id,name,status\n42,row forty two,queued\n", 50)
	token := Compress(text)
	b.SetBytes(int64(len(text)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Decompress(token); err != nil {
			b.Fatal(err)
		}
	}
}
