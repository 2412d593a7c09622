// Command bjpegtool decodes a baseline JFIF file and writes it out as a
// PPM (P5 grayscale or P6 RGB) raster.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/lumenjpeg/decoder/jpeg"
)

func main() {
	var (
		inputPath  = flag.StringP("input", "i", "", "path to the input JPEG file (required)")
		outputPath = flag.StringP("output", "o", "", "path to write the decoded PPM raster (required)")
		logLevel   = flag.String("log-level", "warn", "log level: debug, info, warn, error")
	)
	flag.Parse()

	log := logrus.New()
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bjpegtool: invalid --log-level %q: %v\n", *logLevel, err)
		os.Exit(2)
	}
	log.SetLevel(level)

	if *inputPath == "" || *outputPath == "" {
		fmt.Fprintln(os.Stderr, "bjpegtool: both --input and --output are required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*inputPath, *outputPath, log); err != nil {
		if de, ok := jpeg.AsDecodeError(err); ok {
			log.WithField("kind", de.Kind.String()).Errorf("bjpegtool: decode failed: %v", de)
		} else {
			log.Errorf("bjpegtool: %v", err)
		}
		os.Exit(1)
	}
}

func run(inputPath, outputPath string, log *logrus.Logger) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	dec := jpeg.NewDecoder(in, jpeg.WithLogger(log))
	raster, err := dec.Decode(context.Background())
	if err != nil {
		return err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	return writePPM(out, raster)
}

// writePPM encodes raster as a binary PPM: P5 (grayscale) for a
// 1-channel raster, P6 (RGB) for a 3-channel one.
func writePPM(f *os.File, raster *jpeg.Raster) error {
	w := bufio.NewWriter(f)

	magic := "P6"
	if raster.Channels == 1 {
		magic = "P5"
	}
	if _, err := fmt.Fprintf(w, "%s\n%d %d\n255\n", magic, raster.Width, raster.Height); err != nil {
		return err
	}
	if _, err := w.Write(raster.Pix); err != nil {
		return err
	}
	return w.Flush()
}
