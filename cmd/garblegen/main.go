// garblegen generates Garble methods for named struct types, in the
// manner of stringer. The generated methods take precedence over the
// reflection walker in pkg/garble and additionally cover unexported
// fields.
//
// Usage:
//
//	garblegen -type Record,Pair [-output file.go] [package]
//
// The package argument is a go/packages pattern and defaults to the
// current directory. With no -output the generated source is written
// to stdout.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hsiuhsiu/garble-go/internal/gen"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("garblegen: ")

	typeNames := flag.String("type", "", "comma-separated list of struct type names; required")
	output := flag.String("output", "", "output file name; default stdout")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: garblegen -type T1,T2 [-output file.go] [package]")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *typeNames == "" {
		flag.Usage()
		os.Exit(2)
	}

	pattern := "."
	if args := flag.Args(); len(args) > 0 {
		pattern = args[0]
	}

	src, err := gen.Generate(gen.Options{
		Pattern: pattern,
		Types:   strings.Split(*typeNames, ","),
	})
	if err != nil {
		log.Fatal(err)
	}

	if *output == "" {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(*output, src, 0o644); err != nil {
		log.Fatal(err)
	}
}
