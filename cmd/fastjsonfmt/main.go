// Command fastjsonfmt builds a small sample Value tree and reformats it
// under a caller-selected combination of layout flags, as a worked
// demonstration of the library's serializer entry points.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/rsyslog/libfastjson"
)

var (
	pretty         = flag.Bool("pretty", false, "Insert newlines and indent nested levels.")
	prettyTab      = flag.Bool("tab", false, "With -pretty, indent with tabs instead of two spaces.")
	spaced         = flag.Bool("spaced", true, "Insert a space after ':' and inside container brackets.")
	noTrailingZero = flag.Bool("no-trailing-zero", false, "Trim trailing zeros from formatted doubles.")
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "  builds a sample value tree and prints it under the selected layout flags.")
		flag.PrintDefaults()
	}
}

func sampleTree() *fastjson.Value {
	root, _ := fastjson.NewObject().Object()
	root.Add("name", fastjson.NewString("fastjsonfmt"), 0)
	root.Add("version", fastjson.NewInt(1), 0)
	root.Add("ratio", fastjson.NewDouble(0.3333300000), 0)
	root.Add("stable", fastjson.NewBool(true), 0)
	root.Add("notes", nil, 0)

	tags, _ := fastjson.NewArray().Array()
	tags.Append(fastjson.NewString("json"))
	tags.Append(fastjson.NewString("serializer"))
	tags.Append(fastjson.NewString("demo"))
	root.Add("tags", tags.Value(), 0)

	return root.Value()
}

func main() {
	flag.Parse()
	logger := log.New(os.Stderr, "fastjsonfmt: ", log.LstdFlags)

	var flags fastjson.Flags
	if *pretty {
		flags |= fastjson.Pretty
	}
	if *prettyTab {
		flags |= fastjson.PrettyTab
	}
	if *spaced {
		flags |= fastjson.Spaced
	}
	if *noTrailingZero {
		flags |= fastjson.NoTrailingZero
	}

	root := sampleTree()
	defer root.Release()

	if _, err := root.EncodeTo(os.Stdout, flags); err != nil {
		logger.Fatalf("failed to write output: %s", err)
	}
	fmt.Fprintln(os.Stdout)
}
