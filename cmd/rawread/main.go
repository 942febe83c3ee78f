// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/ezrec/rawread/dump"
	"github.com/ezrec/rawread/physmem"
	"github.com/ezrec/rawread/request"
	"github.com/ezrec/rawread/translate"
)

var f = translate.From

type options struct {
	device    string
	sentinels string
	color     string
	verbose   bool
}

func main() {
	var opts options

	flag.StringVar(&opts.device, "d", physmem.DEFAULT_DEVICE, "Physical memory device")
	flag.StringVar(&opts.sentinels, "s", "", "Starlark sentinel configuration file")
	flag.StringVar(&opts.color, "color", "auto", "Highlighting: auto, always, or never")
	flag.BoolVar(&opts.verbose, "v", false, "Verbose mode")

	flag.Usage = func() {
		out := flag.CommandLine.Output()
		translate.Fprintf(out, "usage: %v [flags] <start_addr> <size_bytes> <per_row>\n", os.Args[0])
		translate.Fprintf(out, "Display hex dump of physical memory\n\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() != 3 {
		flag.Usage()
		log.Fatalf("%v: %v", os.Args[0], f("expected 3 arguments, got %v", flag.NArg()))
	}

	err := run(opts, flag.Args(), os.Stdout)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}

// run validates the arguments, maps the requested range, and dumps it to out.
func run(opts options, args []string, out io.Writer) (err error) {
	req, err := request.Parse(args[0], args[1], args[2])
	if err != nil {
		return
	}

	dmp := dump.NewDumper(out)

	switch opts.color {
	case "auto":
	case "always":
		dmp.Highlight.EnableColor()
	case "never":
		dmp.Highlight.DisableColor()
	default:
		err = errColorMode(opts.color)
		return
	}

	if len(opts.sentinels) != 0 {
		dmp.Sentinels, err = dump.LoadSentinels(opts.sentinels, nil)
		if err != nil {
			return
		}
	}

	if opts.verbose {
		log.Printf("language: %v", translate.Language())
		log.Printf("request:\n%v", req)
		log.Printf("sentinels: %#08x", dmp.Sentinels.Words())
	}

	mp, err := physmem.Map(opts.device, req.Address(), req.Size())
	if err != nil {
		return
	}
	defer mp.Close()

	if opts.verbose {
		log.Printf("mapped %v: %#x bytes at %#x", mp.Device, mp.Len(), mp.Offset)
	}

	err = dmp.Dump(req, mp.Bytes())
	return
}

type errColorMode string

func (err errColorMode) Error() string {
	return f("'%v' is not a color mode", string(err))
}
