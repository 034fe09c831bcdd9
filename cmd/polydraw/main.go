// Command polydraw is an interactive polygon editor.
//
// Without -script it opens a window: click to add vertices, Enter to
// complete the polygon, C to copy the last one and click to drop the
// clone, R to reset, S to save a PNG. With -script it replays a TOML
// session headlessly and writes the final frame to -out.
//
// Defaults come from POLYDRAW_* environment variables; flags override
// them.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/gg"
	"github.com/gogpu/polydraw"
	"github.com/gogpu/polydraw/canvas"
	"github.com/gogpu/polydraw/internal/app"
	"github.com/gogpu/polydraw/internal/config"
	"github.com/gogpu/polydraw/script"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	var (
		scriptPath = flag.String("script", "", "replay a TOML session instead of opening a window")
		output     = flag.String("out", "polydraw.png", "output file for the final frame")
		width      = flag.Int("width", cfg.Width, "canvas width")
		height     = flag.Int("height", cfg.Height, "canvas height")
		font       = flag.String("font", cfg.FontPath, "TrueType font for the status line")
		thumb      = flag.Int("thumb", 0, "downscale saved frames to at most this many pixels")
		strict     = flag.Bool("strict", cfg.Strict, "do not file polygons with fewer than 3 vertices")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	cfg.Width, cfg.Height = *width, *height
	cfg.FontPath = *font
	cfg.Strict = *strict
	if *verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	level, _ := cfg.Level()
	setLoggers(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	defer closeAccelerator()

	var opts []app.Option
	if cfg.FontPath != "" {
		face, err := canvas.LoadFace(cfg.FontPath, cfg.FontSize)
		if err != nil {
			log.Fatal(err)
		}
		opts = append(opts, app.WithFace(face))
	}
	if *thumb > 0 {
		opts = append(opts, app.WithThumbnail(*thumb))
	}

	if *scriptPath == "" {
		if err := runWindow(cfg, *output, opts...); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := replay(cfg, *scriptPath, *output, opts...); err != nil {
		log.Fatal(err)
	}
}

// setLoggers routes both polydraw and gg (accelerator selection, CPU
// fallback) through l.
func setLoggers(l *slog.Logger) {
	polydraw.SetLogger(l)
	gg.SetLogger(l)
}

func replay(cfg *config.Config, path, output string, opts ...app.Option) error {
	s, err := script.Load(path)
	if err != nil {
		return err
	}
	// The script's canvas size wins over flags and environment.
	cfg.Width, cfg.Height = s.Width, s.Height

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sess := app.New(cfg, opts...)
	defer sess.Close()

	if err := script.Replay(ctx, s, sess); err != nil {
		return err
	}
	if err := sess.Snapshot(output); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	closed := 0
	for _, poly := range sess.Controller.Polygons() {
		if poly.Closed() {
			closed++
		}
	}
	st := sess.Registry.Stats()
	p.Printf("%d steps, %d polygons (%d closed), %d artifacts live\n",
		len(s.Steps), len(sess.Controller.Polygons()), closed, st.Live)
	p.Printf("%d registered, %d unregistered\n", st.Registered, st.Unregistered)
	fmt.Printf("frame saved to %s\n", output)
	return nil
}
