package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/bugland/configs"
	"github.com/younwookim/bugland/internal/application/replay"
	"github.com/younwookim/bugland/internal/application/state"
	"github.com/younwookim/bugland/internal/application/system"
	"github.com/younwookim/bugland/internal/application/viewer"
	"github.com/younwookim/bugland/internal/domain/bug"
	"github.com/younwookim/bugland/internal/infrastructure/config"
	"github.com/younwookim/bugland/internal/infrastructure/termview"
)

// options holds the flags shared by every command
type options struct {
	configDir string
	catalog   string
}

// loader returns a config loader for --configs, or the embedded configs
func (o *options) loader() *config.Loader {
	if o.configDir == "" {
		return config.NewFSLoader(configs.FS, "embedded")
	}
	return config.NewLoader(o.configDir)
}

// entries loads and builds the selected catalog
func (o *options) entries() ([]system.Entry, error) {
	cfg, err := o.loader().LoadCatalog(o.catalog)
	if err != nil {
		return nil, err
	}
	return system.LoadCatalog(cfg)
}

func (o *options) entry(id string) (system.Entry, error) {
	entries, err := o.entries()
	if err != nil {
		return system.Entry{}, err
	}
	e, ok := system.FindEntry(entries, id)
	if !ok {
		return system.Entry{}, fmt.Errorf("bug %q not found in catalog %s", id, o.catalog)
	}
	return e, nil
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "bugland",
		Short: "Inspect and transform bug sprites",
		Long: `bugland loads bug catalogs (pattern plus mask sprites) and applies
rotations, flips, scaling and mask transforms to them.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configDir, "configs", "", "config directory (default: embedded configs)")
	rootCmd.PersistentFlags().StringVar(&opts.catalog, "catalog", config.DefaultCatalog, "catalog name under bugs/")

	rootCmd.AddCommand(
		newListCmd(opts),
		newShowCmd(opts),
		newViewCmd(opts),
		newReplayCmd(opts),
	)
	return rootCmd
}

func newListCmd(opts *options) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the bugs of a catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if all {
				names, err := opts.loader().ListCatalogs()
				if err != nil {
					return err
				}
				for _, name := range names {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			entries, err := opts.entries()
			if err != nil {
				return err
			}
			for _, e := range entries {
				b := e.Bug
				fmt.Fprintf(out, "%-12s %-12s %dx%d mask %dx%d\n",
					e.ID, b.Name(), b.Height(), b.Width(), b.MaskHeight(), b.MaskWidth())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "catalogs", false, "list catalog files instead of bugs")
	return cmd
}

// showFlags are applied in a fixed order: rotate, hflip, vflip, scale,
// margin, then total or fit.
type showFlags struct {
	rotate    int
	hflip     bool
	vflip     bool
	scale     int
	margin    int
	hasMargin bool // --margin was given, even a negative value
	total     bool
	fit       bool
	mask      bool
}

func (f showFlags) ops() []system.Op {
	var ops []system.Op
	if f.rotate != 0 {
		ops = append(ops, system.Rotate{Angle: f.rotate})
	}
	if f.hflip {
		ops = append(ops, system.HFlip{})
	}
	if f.vflip {
		ops = append(ops, system.VFlip{})
	}
	if f.scale != 1 {
		ops = append(ops, system.Scale{X: f.scale, Y: f.scale})
	}
	if f.hasMargin {
		ops = append(ops, system.Margin{Width: f.margin})
	}
	if f.total {
		ops = append(ops, system.TotalMask{})
	}
	if f.fit {
		ops = append(ops, system.FitMask{})
	}
	return ops
}

func newShowCmd(opts *options) *cobra.Command {
	var f showFlags

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a bug, optionally transformed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.entry(args[0])
			if err != nil {
				return err
			}

			f.hasMargin = cmd.Flags().Changed("margin")
			b, err := system.ApplyOps(e.Bug, f.ops()...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, b)
			if f.mask {
				fmt.Fprintln(out, "mask")
				writeGrid(out, b.MaskGrid())
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&f.rotate, "rotate", 0, "rotate clockwise by 0, 90, 180 or 270 degrees")
	cmd.Flags().BoolVar(&f.hflip, "hflip", false, "mirror left to right")
	cmd.Flags().BoolVar(&f.vflip, "vflip", false, "mirror top to bottom")
	cmd.Flags().IntVar(&f.scale, "scale", 1, "integer upscale factor")
	cmd.Flags().IntVar(&f.margin, "margin", 0, "rebuild the mask with this margin")
	cmd.Flags().BoolVar(&f.total, "total", false, "fill the mask")
	cmd.Flags().BoolVar(&f.fit, "fit", false, "make the mask equal to the pattern")
	cmd.Flags().BoolVar(&f.mask, "mask", false, "also print the mask")
	return cmd
}

// writeGrid prints a grid the way Bug.String prints the pattern
func writeGrid(w io.Writer, g bug.Grid) {
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if c > 0 {
				fmt.Fprint(w, " ")
			}
			if g.At(r, c) != 0 {
				fmt.Fprint(w, "x")
			} else {
				fmt.Fprint(w, " ")
			}
		}
		fmt.Fprintln(w)
	}
}

func newViewCmd(opts *options) *cobra.Command {
	var (
		record string
		watch  bool
	)

	cmd := &cobra.Command{
		Use:   "view [id]",
		Short: "Browse a catalog in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch && opts.configDir == "" {
				return errors.New("--watch requires --configs")
			}

			loader := opts.loader()
			viewerCfg, err := loader.LoadViewer()
			if err != nil {
				return err
			}
			palette, err := viewerCfg.Colors.Palette()
			if err != nil {
				return err
			}

			entries, err := opts.entries()
			if err != nil {
				return err
			}
			v, err := viewer.New(entries, viewerCfg.Controls.MaxScale, viewerCfg.Controls.MaxMargin)
			if err != nil {
				return err
			}
			if len(args) == 1 && !v.Select(args[0]) {
				return fmt.Errorf("bug %q not found in catalog %s", args[0], opts.catalog)
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("failed to create screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("failed to init screen: %w", err)
			}

			if watch {
				w, err := config.NewCatalogWatcher(opts.configDir)
				if err != nil {
					screen.Fini()
					return err
				}
				defer func() { _ = w.Close() }()

				ctx, cancel := context.WithCancel(cmd.Context())
				defer cancel()
				go func() {
					_ = w.Run(ctx, func(name string) {
						if name != opts.catalog {
							return
						}
						entries, err := opts.entries()
						_ = termview.PostReload(screen, termview.Reload{Entries: entries, Err: err})
					})
				}()
			}

			termview.Run(screen, v, termview.NewRenderer(palette))
			screen.Fini()

			if record == "" {
				return nil
			}
			rec := v.Script()
			if err := rec.Save(record); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Script saved: %s (%d steps)\n", record, rec.StepCount())
			return nil
		},
	}
	cmd.Flags().StringVar(&record, "record", "", "save the applied transforms to this file on exit")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the catalog when its file changes (needs --configs)")
	return cmd
}

func newReplayCmd(opts *options) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "replay <script.json>",
		Short: "Apply a saved transform script and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := replay.LoadScript(args[0])
			if err != nil {
				return err
			}

			e, err := opts.entry(data.Bug)
			if err != nil {
				return err
			}

			replayer := replay.NewReplayer(*data)
			b, err := replayer.ApplyAll(e.Bug)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Replayed %d steps on %s\n", replayer.TotalSteps(), replayer.BugID())
			view, err := parseViewMode(mode)
			if err != nil {
				return err
			}
			if view.ShowsPattern() {
				fmt.Fprintln(out, b)
			}
			if view.ShowsMask() {
				fmt.Fprintln(out, "mask")
				writeGrid(out, b.MaskGrid())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "view", "pattern", "what to print: pattern, mask or overlay")
	return cmd
}

func parseViewMode(s string) (state.ViewMode, error) {
	switch s {
	case "pattern":
		return state.ViewPattern, nil
	case "mask":
		return state.ViewMask, nil
	case "overlay":
		return state.ViewOverlay, nil
	default:
		return 0, fmt.Errorf("unknown view %q", s)
	}
}
