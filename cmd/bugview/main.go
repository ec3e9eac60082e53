package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/bugland/configs"
	"github.com/younwookim/bugland/internal/application/game"
	"github.com/younwookim/bugland/internal/application/replay"
	"github.com/younwookim/bugland/internal/application/scene/inspect"
	"github.com/younwookim/bugland/internal/application/system"
	"github.com/younwookim/bugland/internal/application/viewer"
	"github.com/younwookim/bugland/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record transforms to file (e.g., -record script.json)")
	replayFlag := flag.String("replay", "", "Apply a saved script before opening the viewer")
	catalogFlag := flag.String("catalog", config.DefaultCatalog, "Catalog to browse")
	bugFlag := flag.String("bug", "", "Bug to open first")
	flag.Parse()

	// Load configurations using embedded filesystem
	loader := config.NewFSLoader(configs.FS, "configs")
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	viewerCfg, catalogCfg := cfg.Viewer, cfg.Catalog

	if *catalogFlag != config.DefaultCatalog {
		catalogCfg, err = loader.LoadCatalog(*catalogFlag)
		if err != nil {
			log.Fatalf("Failed to load catalog: %v", err)
		}
	}
	entries, err := system.LoadCatalog(catalogCfg)
	if err != nil {
		log.Fatalf("Failed to build catalog: %v", err)
	}
	log.Printf("Loaded %d bugs from %s/bugs/%s", len(entries), loader.BasePath(), catalogCfg.ID)

	// Create scene
	inspector, err := inspect.New(viewerCfg, entries, *recordFlag)
	if err != nil {
		log.Fatalf("Failed to create viewer: %v", err)
	}

	if *bugFlag != "" && !inspector.Viewer().Select(*bugFlag) {
		log.Fatalf("Bug %q not found in catalog %s", *bugFlag, catalogCfg.ID)
	}
	if *replayFlag != "" {
		if err := applyScript(inspector.Viewer(), *replayFlag); err != nil {
			log.Fatalf("Failed to replay: %v", err)
		}
	}

	g := game.NewWithFramerate(inspector, viewerCfg.Display.ScreenWidth, viewerCfg.Display.ScreenHeight,
		viewerCfg.Display.Framerate)

	// Set up ebiten
	ebiten.SetWindowSize(viewerCfg.Display.ScreenWidth*viewerCfg.Display.Scale,
		viewerCfg.Display.ScreenHeight*viewerCfg.Display.Scale)
	ebiten.SetWindowTitle("Bugland")
	ebiten.SetTPS(viewerCfg.Display.Framerate)

	// Run viewer
	runErr := ebiten.RunGame(g)
	g.Shutdown()
	if runErr != nil {
		log.Fatal(runErr)
	}
}

// applyScript selects the script's bug and applies its steps through the
// viewer, so they can be undone and are part of any new recording.
func applyScript(v *viewer.Viewer, filename string) error {
	data, err := replay.LoadScript(filename)
	if err != nil {
		return err
	}
	if !v.Select(data.Bug) {
		log.Printf("Script bug %q not in catalog, applying to %s", data.Bug, v.EntryID())
	}

	r := replay.NewReplayer(*data)
	if err := v.Replay(r); err != nil {
		return err
	}
	log.Printf("Replayed %d steps on %s", r.TotalSteps(), v.EntryID())
	return nil
}
