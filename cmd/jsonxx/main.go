// Command jsonxx converts JSON (or YAML) documents between the formats the
// library understands: compact JSON, verbose "jsonx" XML, and compact "jxml"
// XML. Input comes from a file argument or stdin; output goes to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	jsonxx "github.com/jsonxx/jsonxx"
)

func main() {
	var (
		format = flag.String("format", "json", "output format: json | jsonx | jxml")
		strict = flag.Bool("strict", false, "reject relaxed-mode input (canonical JSON only)")
		isYAML = flag.Bool("yaml", false, "treat input as YAML instead of JSON")
	)
	flag.Usage = usage
	flag.Parse()

	data, err := readInput(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsonxx: %v\n", err)
		os.Exit(1)
	}

	v, err := parseInput(data, *strict, *isYAML)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsonxx: %v\n", err)
		os.Exit(1)
	}

	out, err := render(v, *format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsonxx: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(out)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: jsonxx [-format json|jsonx|jxml] [-strict] [-yaml] [file]")
	flag.PrintDefaults()
}

func readInput(args []string) ([]byte, error) {
	switch len(args) {
	case 0:
		return io.ReadAll(os.Stdin)
	case 1:
		return os.ReadFile(args[0])
	default:
		usage()
		os.Exit(2)
		return nil, nil
	}
}

func parseInput(data []byte, strict, isYAML bool) (*jsonxx.Value, error) {
	if isYAML {
		return jsonxx.FromYAML(data)
	}
	return jsonxx.Parse(jsonxx.Bytes(data), jsonxx.ParseOpt{Strict: strict})
}

func render(v *jsonxx.Value, format string) (string, error) {
	switch format {
	case "json":
		return v.JSON() + "\n", nil
	case "jsonx", "jxml":
		f := jsonxx.JSONx
		if format == "jxml" {
			f = jsonxx.JXML
		}
		switch v.Kind() {
		case jsonxx.KindObject:
			return v.Object().XML(f), nil
		case jsonxx.KindArray:
			return v.Array().XML(f), nil
		default:
			return "", fmt.Errorf("%s output needs an object or array at the root, got %s", format, v.Kind())
		}
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}
