package main

import (
	"flag"
	"fmt"
	"os"

	huffman "github.com/chronos-tachyon/bytehuffman"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

func main() {
	train := flag.String("train", "", "file whose byte frequencies define the code")
	mode := flag.String("mode", "encode", "one of: encode, decode, codes")
	infile := flag.String("i", "", "input file")
	outfile := flag.String("o", "", "output file")
	verbose := flag.Bool("v", false, "enable debug logging")
	cpuProfile := flag.String("cpuprofile", "", "write a CPU profile into this directory")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	var p interface{ Stop() }
	if *cpuProfile != "" {
		p = profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuProfile), profile.Quiet)
	}

	err := run(*train, *mode, *infile, *outfile)
	if p != nil {
		p.Stop()
	}
	if err != nil {
		log.Errorf("%s failed: %v", *mode, err)
		os.Exit(1)
	}
}

func run(train, mode, infile, outfile string) error {
	if train == "" {
		return fmt.Errorf("-train must be specified")
	}

	codec, err := huffman.NewFromFile(train)
	if err != nil {
		return err
	}

	switch mode {
	case "codes":
		_, err = codec.PrintCodes(os.Stdout)
		return err
	case "encode", "decode":
		if infile == "" || outfile == "" {
			return fmt.Errorf("both -i and -o must be specified")
		}
		if mode == "encode" {
			return codec.EncodeFile(infile, outfile)
		}
		return codec.DecodeFile(infile, outfile)
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
}
