// bmp-editor applies a pixel transform to 24-bit bitmap files
package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/anas-shakeel/bmp-editor/internal/pipeline"
)

func main() {
	op := flag.String("op", "", "operation: red_blue_swap, grayscale or split")
	outDir := flag.String("out", "", "output directory (default: next to each input)")
	info := flag.Bool("info", false, "print bitmap metadata of each input")
	preview := flag.Bool("preview", false, "print the result in the terminal (small images only)")
	lenient := flag.Bool("lenient", false, "accept any header whose dimensions fit the file")
	verbose := flag.Bool("v", false, "verbose logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bmp-editor -op <operation> [flags] <file.bmp>...\n")
		fmt.Fprintf(os.Stderr, "Writes <operation>_<file.bmp> for every input\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	operation, err := pipeline.ParseOperation(*op)
	if err != nil {
		log.Fatal(err)
	}

	p := pipeline.New(
		pipeline.WithOutputDir(*outDir),
		pipeline.WithStrict(!*lenient),
	)

	failed := false
	for _, filename := range flag.Args() {
		if err := run(p, filename, operation, *info, *preview); err != nil {
			log.WithField("file", filename).Error(err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// Runs one file through the pipeline
func run(p *pipeline.Pipeline, filename string, op pipeline.Operation, info, preview bool) error {
	job, err := p.Load(filename)
	if err != nil {
		return err
	}

	if info {
		job.Source().PrintMetadata(os.Stdout)
	}

	if err := job.Apply(op); err != nil {
		return err
	}

	if preview {
		job.Result().PrintBitmap(os.Stdout)
	}

	_, err = job.Persist()
	return err
}
