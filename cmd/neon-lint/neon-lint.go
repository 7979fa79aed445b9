package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/neon"
)

type cmdopts struct {
	Format  bool `long:"format" description:"reindent the output"`
	NoEnt   bool `long:"noent" description:"do not substitute entity references"`
	Version bool `long:"version" description:"display the version of the library"`
}

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("neon-lint: using neon version %s\n", neon.Version)
}

func showUsage() {
	fmt.Printf(`Usage : neon-lint [options] XMLfiles ...
	Parse the XML files and output the result of the parsing.
	Reads from stdin when no files are given.
	--version : display the version of the XML library used
`)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	var inputs []io.Reader
	if len(args) > 0 {
		for _, f := range args {
			fh, err := os.Open(f)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s\n", err)
				return 1
			}
			defer fh.Close()
			inputs = append(inputs, fh)
		}
	} else {
		inputs = append(inputs, os.Stdin)
	}

	var popts []neon.ParseOption
	if opts.NoEnt {
		popts = append(popts, neon.WithEntityDecoding(false))
	}

	d := neon.Dumper{}
	if opts.Format {
		d.Indent = "  "
	}

	for _, in := range inputs {
		doc, err := neon.ParseReader(in, popts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}

		if err := d.DumpDoc(os.Stdout, doc); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
		fmt.Println()
	}

	return 0
}
