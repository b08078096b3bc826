package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dreamscene/internal/commands"
	"dreamscene/internal/config"
	"dreamscene/internal/debug"
	"dreamscene/internal/describe"
	"dreamscene/internal/env"
	"dreamscene/internal/export"
	"dreamscene/internal/generate"
	"dreamscene/internal/graphics"
	"dreamscene/internal/llm"
	"dreamscene/internal/logger"
	"dreamscene/internal/pipeline"
	"dreamscene/internal/scene"
	"dreamscene/internal/shapes"
	"dreamscene/internal/terminal"
)

func main() {
	_ = env.Load(".env")
	log := logger.New()

	prefs, err := config.Load()
	if err != nil {
		log.Warnf("preferences unreadable, using defaults: %v", err)
	}
	model := prefs.AIModel
	if model == "" {
		model = llm.DefaultModel
	}

	factory, err := shapes.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "shape catalog: %v\n", err)
		os.Exit(1)
	}

	scn := scene.New(factory)
	scn.GridVisible = prefs.GridVisible
	overlay := debug.NewOverlay()
	overlay.Visible = prefs.ShowFPS

	// Generations finish on a worker goroutine; the session synchronizes
	// the shared state and the render loop installs finished results
	// between frames so raylib state is only touched from the main thread.
	session := generate.NewSession(buildClient(log), factory, model, log)

	reg := commands.NewRegistry()
	term := terminal.New(log, reg)
	term.OnPrompt = session.Prompt

	reg.Register("help", "list commands", nil, func([]string) error {
		for _, line := range reg.Help() {
			log.Infof("%s", line)
		}
		return nil
	})
	reg.Register("grid", "grid on|off", nil, func(args []string) error {
		switch {
		case len(args) == 0:
			scn.GridVisible = !scn.GridVisible
		case args[0] == "on":
			scn.GridVisible = true
		case args[0] == "off":
			scn.GridVisible = false
		default:
			return fmt.Errorf("usage: /grid [on|off]")
		}
		prefs.GridVisible = scn.GridVisible
		return config.Save(prefs)
	})
	reg.Register("fps", "toggle the stats overlay", nil, func([]string) error {
		overlay.Visible = !overlay.Visible
		prefs.ShowFPS = overlay.Visible
		return config.Save(prefs)
	})
	reg.Register("model", "show or set the LLM model", nil, func(args []string) error {
		if len(args) == 0 {
			log.Infof("model: %s", session.Model())
			return nil
		}
		session.SetModel(args[0])
		prefs.AIModel = args[0]
		return config.Save(prefs)
	})
	reg.Register("reset", "clear the scene", nil, func([]string) error {
		scn.Reset()
		overlay.SetSceneStats(0, 0)
		return nil
	})
	reg.Register("again", "regenerate from the last prompt", nil, func([]string) error {
		return session.Again()
	})

	saveFlags := flag.NewFlagSet("save", flag.ContinueOnError)
	saveDir := saveFlags.String("dir", "", "output directory (default from prefs)")
	reg.Register("save", "export the scene to JSON", saveFlags, func([]string) error {
		dir := *saveDir
		if dir == "" {
			dir = prefs.ExportDir
		}
		if dir == "" {
			dir = "scenes"
		}
		snap := export.Snapshot(scn.Entities(), lastBackground(scn), time.Now())
		path := filepath.Join(dir, fmt.Sprintf("scene-%s.json", time.Now().Format("20060102-150405")))
		if err := export.Save(path, snap); err != nil {
			return err
		}
		log.Infof("saved %s", path)
		return nil
	})
	reg.Register("load", "build a scene from a JSON file", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: /load <file>")
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		desc, err := describe.Decode(data)
		if err != nil {
			return err
		}
		session.Offer(pipeline.Build(desc, factory, log))
		return nil
	})

	update := func(dt float32) {
		term.Update()
		select {
		case res := <-session.Results():
			scn.SetResult(res)
			overlay.SetSceneStats(len(res.Entities), countDropped(res))
			log.Infof("scene built: %d entities, %d diagnostics", len(res.Entities), len(res.Diags))
		default:
		}
		scn.Update(dt, !term.IsOpen())
	}
	draw := func() {
		scn.Draw()
		term.Draw()
		overlay.Draw()
	}
	graphics.Run("dreamscene", update, scn.Background, draw)
}

func buildClient(log *logger.Logger) llm.Client {
	openAIKey, groqKey := env.APIKeys()
	switch {
	case openAIKey != "" && groqKey != "":
		return &llm.Fallback{Primary: llm.NewOpenAI(openAIKey), Secondary: llm.NewGroq(groqKey)}
	case openAIKey != "":
		return llm.NewOpenAI(openAIKey)
	case groqKey != "":
		return llm.NewGroq(groqKey)
	default:
		log.Warnf("no API keys found; prompts are disabled, /load still works")
		return nil
	}
}

func countDropped(res pipeline.Result) int {
	n := res.DroppedNonObjects
	for _, d := range res.Diags {
		if d.Dropped {
			n++
		}
	}
	return n
}

// lastBackground repacks the scene's clear color for export.
func lastBackground(s *scene.Scene) uint32 {
	c := s.Background()
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}
