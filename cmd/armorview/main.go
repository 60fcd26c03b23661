package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/essentials"

	"github.com/quartersbrief/armorview/armor"
	"github.com/quartersbrief/armorview/internal/debugpng"
	"github.com/quartersbrief/armorview/internal/logging"
	"github.com/quartersbrief/armorview/view"
	"github.com/quartersbrief/armorview/viewcache"
)

func main() {
	armorDir := flag.String("armor-dir", ".", "directory containing <model>.json source files")
	cacheDir := flag.String("cache-dir", ".cache", "directory used to persist generated views")
	model := flag.String("model", "", "model identifier (source file name without .json)")
	viewFlag := flag.String("view", string(view.Front), "one of front, top, side")
	workers := flag.Int("workers", 4, "occlusion worker pool size")
	debugPNG := flag.String("debug-png", "", "if set, rasterize the result to this PNG path instead of printing JSON")
	verbose := flag.Bool("verbose", false, "enable development logging")
	flag.Parse()

	if *model == "" {
		log.Fatal("-model is required")
	}

	logger, err := logging.New(*verbose)
	essentials.Must(err)
	defer logger.Sync()

	cache := viewcache.New(*armorDir, *cacheDir, view.Options{Workers: *workers})
	cache.Logger = logger

	result, err := cache.Get(*model, view.Name(*viewFlag))
	essentials.Must(err)

	if *debugPNG != "" {
		f, err := os.Create(*debugPNG)
		essentials.Must(err)
		defer f.Close()
		essentials.Must(debugpng.Render(f, result, debugpng.Options{}))
		fmt.Fprintf(os.Stderr, "wrote %s\n", *debugPNG)
		return
	}

	encoded, err := json.MarshalIndent(encodeView(result), "", "  ")
	essentials.Must(err)
	os.Stdout.Write(encoded)
	os.Stdout.Write([]byte("\n"))
}

// encodeView flattens an armor.View into plain [][2]float64 rings for
// direct JSON output, independent of armor.EncodeCache's wire format
// (which also carries the source hash).
func encodeView(v armor.View) map[int][][][2]float64 {
	out := make(map[int][][][2]float64, len(v))
	for id, rings := range v {
		encoded := make([][][2]float64, len(rings))
		for i, ring := range rings {
			pts := make([][2]float64, len(ring))
			for j, c := range ring {
				pts[j] = c.Array()
			}
			encoded[i] = pts
		}
		out[id] = encoded
	}
	return out
}
