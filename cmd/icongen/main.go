// Command icongen renders the invitee-app PWA icon set as PNG files. It is a
// one-shot build-time tool; the web app's manifest references the generated
// files by name, nothing runs at serving time.
//
//	icongen [--sizes=192,512] [--out=icons] [--maskable] [--apple-touch]
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/omar99elnemr/icongen/internal/icon"
	"github.com/omar99elnemr/icongen/internal/pngenc"
	"github.com/omar99elnemr/icongen/internal/raster"
)

// version is set via -ldflags at build time; defaults to "dev" for local builds.
var version = "dev"

const appleTouchSize = 180

var (
	sizesFlag      = flag.String("sizes", "192,512", "Comma-separated icon sizes in pixels")
	outFlag        = flag.String("out", "icons", "Output directory (created if absent)")
	maskableFlag   = flag.Bool("maskable", false, "Also generate full-bleed maskable icons")
	appleTouchFlag = flag.Bool("apple-touch", false, "Also generate apple-touch-icon.png (180x180)")
	showVersion    = flag.Bool("version", false, "Show version")
)

// job is one output file: render produces the canvas, name is the file name
// inside the output directory.
type job struct {
	name   string
	render func() (*raster.Canvas, error)
}

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("icongen version %s\n", version)
		return
	}

	sizes, err := parseSizes(*sizesFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid --sizes: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outFlag, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot create output directory %s: %v\n", *outFlag, err)
		os.Exit(1)
	}

	var jobs []job
	for _, size := range sizes {
		jobs = append(jobs, job{
			name:   fmt.Sprintf("icon-%d.png", size),
			render: func() (*raster.Canvas, error) { return icon.Render(size) },
		})
	}
	if *maskableFlag {
		for _, size := range sizes {
			jobs = append(jobs, job{
				name:   fmt.Sprintf("icon-maskable-%d.png", size),
				render: func() (*raster.Canvas, error) { return icon.RenderMaskable(size) },
			})
		}
	}
	if *appleTouchFlag {
		jobs = append(jobs, job{
			name:   "apple-touch-icon.png",
			render: func() (*raster.Canvas, error) { return icon.Render(appleTouchSize) },
		})
	}

	// Each icon is rendered and written to completion before the next; a
	// failure is reported and the remaining icons still get their chance.
	failed := 0
	for _, j := range jobs {
		if err := generate(filepath.Join(*outFlag, j.name), j.render); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", j.name, err)
			failed++
			continue
		}
		fmt.Printf("  Generated %s\n", j.name)
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d icons failed\n", failed, len(jobs))
		os.Exit(1)
	}
	fmt.Println("Done! All icons generated.")
}

// generate renders one icon and writes it to path. A partially written file
// is removed rather than left behind looking like a finished icon.
func generate(path string, render func() (*raster.Canvas, error)) error {
	c, err := render()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := pngenc.Encode(f, c.Width(), c.Height(), c.Pix()); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

// parseSizes turns "192,512" into []int{192, 512}. Every entry must be a
// positive integer.
func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", part)
		}
		if n <= 0 {
			return nil, fmt.Errorf("size %d must be positive", n)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes given")
	}
	return sizes, nil
}
