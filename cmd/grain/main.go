// cmd/grain/main.go
// Generates the film-grain overlay (public/grain.png) used as the site background texture.
// Run it once after changing the texture parameters; the output is committed with the site.
package main

import (
	"flag"
	"image/png"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/trentd187/pingpong-league/internal/logging"
	"github.com/trentd187/pingpong-league/internal/texture"
)

func main() {
	opts := texture.DefaultGrain
	out := flag.String("out", "./public/grain.png", "output PNG path")
	seed := flag.Uint64("seed", 0, "noise seed (0 = random)")
	flag.IntVar(&opts.Width, "width", opts.Width, "texture width in pixels")
	flag.IntVar(&opts.Height, "height", opts.Height, "texture height in pixels")
	flag.Float64Var(&opts.Opacity, "opacity", opts.Opacity, "overlay opacity (0..1)")
	flag.Parse()

	logging.Setup("info", "development")

	s := *seed
	if s == 0 {
		s = rand.Uint64()
	}
	img := texture.Grain(opts, rand.New(rand.NewPCG(s, s>>1|1)))

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		log.Fatal().Err(err).Msg("creating output directory")
	}
	f, err := os.Create(*out)
	if err != nil {
		log.Fatal().Err(err).Msg("creating output file")
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		log.Fatal().Err(err).Msg("encoding grain texture")
	}
	if err := f.Close(); err != nil {
		log.Fatal().Err(err).Msg("writing grain texture")
	}

	log.Info().Str("path", *out).Int("width", opts.Width).Int("height", opts.Height).
		Msg("film grain overlay generated")
}
