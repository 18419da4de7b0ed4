package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/anthonynsimon/bild/noise"
	colorful "github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"

	"github.com/ironsheep/pixel-pipeline/internal/pipeline"
	"github.com/ironsheep/pixel-pipeline/internal/pixel"
)

var channelMaps = []struct {
	name string
	ch   pixel.Channel
}{
	{"alpha", pixel.Alpha},
	{"red", pixel.Red},
	{"green", pixel.Green},
	{"blue", pixel.Blue},
}

// runChannels splits the input into four grayscale channel maps.
func runChannels(input string, logger *zap.Logger) {
	p := loadPipeline(input, logger)
	defer p.Close()

	for _, m := range channelMaps {
		p.Shift("", m.ch, m.name, pixel.RGB)
		p.SetValue(m.name, pixel.Alpha, 255)
	}
	p.Process()

	if err := p.SaveEach(filepath.Join(*outDir, "%s.png"), outFormat(input), true); err != nil {
		log.Fatal(err)
	}
}

func runGrayscale(input string, logger *zap.Logger) {
	p := loadPipeline(input, logger)
	defer p.Close()

	p.Grayscale("", "grayscale", *keepAlpha).Process()

	if err := p.SaveEach(filepath.Join(*outDir, "%s.png"), outFormat(input), true); err != nil {
		log.Fatal(err)
	}
}

func runInvert(input string, logger *zap.Logger) {
	ch := pixel.ParseChannel(*channelStr)
	if ch == pixel.ChannelNone {
		log.Fatalf("unknown channel selector %q", *channelStr)
	}

	p := loadPipeline(input, logger)
	defer p.Close()

	p.Invert("", ch)
	if *fillColor != "" {
		c, err := colorful.Hex(*fillColor)
		if err != nil {
			log.Fatal(err)
		}
		r, g, b := c.RGB255()
		p.ClearAlphaColor("", pixel.FromARGB(0, r, g, b))
	}
	p.Process()

	savePrimary(p, "inverted", outFormat(input), logger)
}

func runStats(input string, logger *zap.Logger) {
	p := loadPipeline(input, logger)
	defer p.Close()

	s := parseSampling(*sampling)
	buf := p.Primary()

	avg := pipeline.AverageColor(buf, s)
	common := pipeline.CommonColor(buf, s)

	fmt.Printf("size:           %dx%d\n", buf.Width(), buf.Height())
	fmt.Printf("average color:  %s  %s\n", avg, hexOf(avg))
	fmt.Printf("common color:   %s  %s\n", common, hexOf(common))
	for _, m := range channelMaps {
		fmt.Printf("average %-7s %d\n", m.name+":", pipeline.AverageChannel(buf, m.ch, s))
	}
	fmt.Printf("grayscale:      %v (opaque: %v)\n",
		pipeline.IsGrayscale(buf, false), pipeline.IsGrayscale(buf, true))
}

// runDemo synthesizes a gradient and a noise layer, then runs a small
// multi-buffer pipeline over them.
func runDemo(logger *zap.Logger) {
	w, h, err := parseSize(*demoSize)
	if err != nil {
		log.Fatal(err)
	}

	p := pipeline.New(gradientBuffer(w, h),
		pipeline.WithLogger(logger),
		pipeline.WithSampling(parseSampling(*sampling)))
	defer p.Close()

	noiseImg := noise.Generate(w, h, &noise.Options{NoiseFn: noise.Gaussian, Monochrome: true})
	grain := p.Buffer("grain")
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			grain.Set(x, y, pixel.FromColor(noiseImg.At(x, y)))
		}
	}

	p.Merge("", "grain", "grainy")
	p.Grayscale("", "gray", true)
	p.Invert("gray", pixel.RGB)
	p.Extract("", "warm", pixel.Red|pixel.Alpha)
	p.SetValue("warm", pixel.Blue, 60)
	p.Process()

	f := outFormat("")
	savePrimary(p, "gradient", f, logger)
	if err := p.SaveEach(filepath.Join(*outDir, "demo-%s.png"), f, true); err != nil {
		log.Fatal(err)
	}

	logger.With(
		zap.String("average", hexOf(pipeline.AverageColor(p.Primary()))),
		zap.Bool("gray-is-grayscale", pipeline.IsGrayscale(p.Buffer("gray"), false)),
	).Info("demo pipeline done")
}

// gradientBuffer fills a buffer with a horizontal hue sweep fading to half
// brightness at the bottom.
func gradientBuffer(w, h int) *pixel.Buffer {
	buf := pixel.NewBuffer(w, h)
	for x := 0; x < w; x++ {
		hue := 360 * float64(x) / float64(w)
		for y := 0; y < h; y++ {
			v := 1 - float64(y)/float64(2*h)
			r, g, b := colorful.Hsv(hue, 1, v).RGB255()
			buf.Set(x, y, pixel.FromARGB(255, r, g, b))
		}
	}
	return buf
}

func hexOf(c pixel.ARGB) string {
	return colorful.Color{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
	}.Hex()
}
