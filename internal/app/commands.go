package app

import (
	"errors"
	"fmt"
	"strings"

	"marker-scene/internal/camera"
	"marker-scene/internal/commands"
)

var errShowHide = errors.New("pass exactly one of --show or --hide")

// Toggles are view switches owned by the renderer. Nil hooks leave the command unregistered.
type Toggles struct {
	Grid func(visible bool)
	FPS  func(visible bool)
}

// RegisterCommands adds the console commands that drive c.
func RegisterCommands(reg *commands.Registry, c *Controller, t Toggles) {
	reg.Register("move", "move <forward|backward|left|right|up|down>", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("move: expected one direction, got %d", len(args))
		}
		d, err := camera.ParseDirection(args[0])
		if err != nil {
			return err
		}
		c.Move(d)
		return nil
	})

	selFS := commands.NewFlagSet("select")
	selID := selFS.Int("id", -1, "marker id")
	reg.Register("select", "select --id N", selFS, func([]string) error {
		return c.Select(*selID)
	})

	reg.Register("deselect", "deselect", nil, func([]string) error {
		c.Deselect()
		return nil
	})

	noteFS := commands.NewFlagSet("note")
	noteID := noteFS.Int("id", -1, "marker id")
	reg.Register("note", "note --id N <text>", noteFS, func(args []string) error {
		return c.Note(*noteID, strings.Join(args, " "))
	})

	reg.Register("list", "list", nil, func([]string) error {
		for _, m := range c.state.Markers.All() {
			p := m.Position()
			c.log.Log(fmt.Sprintf("%d %s (%.2f, %.2f, %.2f)", m.ID(), m.Name(), p.X(), p.Y(), p.Z()))
		}
		return nil
	})

	reg.Register("help", "help", nil, func([]string) error {
		for _, name := range reg.Names() {
			c.log.Log("cmd " + reg.Usage(name))
		}
		return nil
	})

	if t.Grid != nil {
		registerShowHide(reg, "grid", t.Grid)
	}
	if t.FPS != nil {
		registerShowHide(reg, "fps", t.FPS)
	}
}

func registerShowHide(reg *commands.Registry, name string, set func(bool)) {
	fs := commands.NewFlagSet(name)
	show := fs.Bool("show", false, "show "+name)
	hide := fs.Bool("hide", false, "hide "+name)
	reg.Register(name, name+" --show|--hide", fs, func([]string) error {
		if *show == *hide {
			return fmt.Errorf("%s: %w", name, errShowHide)
		}
		set(*show)
		return nil
	})
}
