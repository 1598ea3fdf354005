// lztok - LZTOK codec CLI tool
//
// Usage:
//
//	lztok encode [--raw] [file]              Compress text to a URL-safe token
//	lztok decode [--raw] [file]              Decode a token back to text
//	lztok link --url=U [--param=P] [file]    Compress text and embed it in a URL
//	lztok extract --url=U [--param=P]        Pull a token out of a URL and decode it
//	lztok version                            Print version info
//
// If no file is given, reads from stdin. encode writes the
// percent-escaped token unless --raw is set; decode accepts either
// form.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/queueworks/lztok/lztok"
	"github.com/queueworks/lztok/transport"
)

const libVersion = "0.3.0"

// defaultParam is the query/fragment parameter name the queue manager
// uses for shared-row links.
const defaultParam = "rows"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "encode":
		cmdEncode(os.Args[2:])
	case "decode":
		cmdDecode(os.Args[2:])
	case "link":
		cmdLink(os.Args[2:])
	case "extract":
		cmdExtract(os.Args[2:])
	case "version":
		fmt.Printf("lztok %s (alphabet %q)\n", libVersion, lztok.Alphabet)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "lztok: unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func cmdEncode(args []string) {
	flags := flag.NewFlagSet("encode", flag.ExitOnError)
	raw := flags.Bool("raw", false, "emit the bare symbol string, skip percent-escaping")
	flags.Parse(args)

	text := readInput(flags.Args())
	token := lztok.Compress(text)
	if !*raw {
		token = transport.EscapeToken(token)
	}
	fmt.Println(token)
}

func cmdDecode(args []string) {
	flags := flag.NewFlagSet("decode", flag.ExitOnError)
	raw := flags.Bool("raw", false, "treat input as a bare symbol string, skip unescaping")
	flags.Parse(args)

	token := strings.TrimRight(readInput(flags.Args()), "\r\n")
	if !*raw {
		var err error
		token, err = transport.UnescapeToken(token)
		if err != nil {
			fatal("%v", err)
		}
	}

	text, err := lztok.Decompress(token)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Print(text)
}

func cmdLink(args []string) {
	flags := flag.NewFlagSet("link", flag.ExitOnError)
	rawURL := flags.String("url", "", "URL to embed the token into (required)")
	param := flags.String("param", defaultParam, "parameter name for the token")
	flags.Parse(args)

	if *rawURL == "" {
		fatal("link: --url is required")
	}

	text := readInput(flags.Args())
	token := lztok.Compress(text)
	link, err := transport.Embed(*rawURL, *param, token)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Println(link)
}

func cmdExtract(args []string) {
	flags := flag.NewFlagSet("extract", flag.ExitOnError)
	rawURL := flags.String("url", "", "URL carrying the token (required)")
	param := flags.String("param", defaultParam, "parameter name for the token")
	flags.Parse(args)

	if *rawURL == "" {
		fatal("extract: --url is required")
	}

	token, found, err := transport.Extract(*rawURL, *param)
	if err != nil {
		fatal("%v", err)
	}
	if !found {
		fatal("extract: no %q parameter in URL", *param)
	}

	text, err := lztok.Decompress(token)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Print(text)
}

// readInput reads the first file argument, or stdin when none is
// given or the argument is "-".
func readInput(args []string) string {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fatal("read input: %v", err)
		}
		return string(data)
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("read stdin: %v", err)
	}
	return string(data)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "lztok: "+format+"\n", args...)
	os.Exit(1)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `lztok - compact URL-safe text codec

Usage:
  lztok encode [--raw] [file]              Compress text to a URL-safe token
  lztok decode [--raw] [file]              Decode a token back to text
  lztok link --url=U [--param=P] [file]    Compress text and embed it in a URL
  lztok extract --url=U [--param=P]        Pull a token out of a URL and decode it
  lztok version                            Print version info

If no file is given, input is read from stdin.`)
}
