package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tintlab/dyeseq/pkg/dye"
	"github.com/tintlab/dyeseq/pkg/errors"
	"github.com/tintlab/dyeseq/pkg/render"
	"github.com/tintlab/dyeseq/pkg/search"
	"github.com/tintlab/dyeseq/pkg/store"
)

// findOptions holds the flag values for the find command.
type findOptions struct {
	target   string
	base     string
	add      int
	sub      int
	maxDepth int
	format   string
	output   string
	save     bool
	detailed bool
}

// findCommand creates the find command, the primary entry point: search
// for the dye sequence that best approximates a target color.
func (c *CLI) findCommand() *cobra.Command {
	opts := findOptions{add: -1, sub: -1, maxDepth: -1}

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find the dye sequence closest to a target color",
		Long: `Find the dye sequence closest to a target color.

The search explores sequences of the four dyes (red, green, blue, black)
breadth-first and returns the shortest sequence whose result is nearest
the target. An exact match stops the search immediately.

The base color, step sizes and depth bound default to the configuration
file and can be overridden per invocation.

Examples:
  dyeseq find --target 255,0,0
  dyeseq find --target 0,0,0 --depth 16
  dyeseq find --target 128,64,200 --format svg -o sequence.svg
  dyeseq find --target 90,90,90 --save`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFind(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.target, "target", "t", "", "target color as R,G,B (required)")
	cmd.Flags().StringVar(&opts.base, "base", "", "base color as R,G,B (default from config)")
	cmd.Flags().IntVar(&opts.add, "add", -1, "amount added to a dye's own channel (default from config)")
	cmd.Flags().IntVar(&opts.sub, "sub", -1, "amount subtracted from the other channels (default from config)")
	cmd.Flags().IntVar(&opts.maxDepth, "depth", -1, "longest sequence to consider (default from config)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format: text, json, dot, svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write output to file instead of stdout")
	cmd.Flags().BoolVar(&opts.save, "save", false, "keep the result in the saved collection")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include mask values in dot/svg output")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

// resolveFindParams merges the find flags with the configured defaults
// into explicit search parameters.
func (c *CLI) resolveFindParams(opts findOptions) (search.Params, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return search.Params{}, err
	}

	tr, tg, tb, err := errors.ParseColorTriple(opts.target)
	if err != nil {
		return search.Params{}, err
	}

	p := search.Params{
		Base:     cfg.BaseColor(),
		Target:   dye.Color{R: uint8(tr), G: uint8(tg), B: uint8(tb)},
		Add:      cfg.Steps.Add,
		Sub:      cfg.Steps.Sub,
		MaxDepth: cfg.Search.MaxDepth,
	}
	if opts.base != "" {
		br, bg, bb, err := errors.ParseColorTriple(opts.base)
		if err != nil {
			return search.Params{}, err
		}
		p.Base = dye.Color{R: uint8(br), G: uint8(bg), B: uint8(bb)}
	}
	if opts.add >= 0 {
		p.Add = opts.add
	}
	if opts.sub >= 0 {
		p.Sub = opts.sub
	}
	if opts.maxDepth >= 0 {
		p.MaxDepth = opts.maxDepth
	}
	return p, nil
}

// runFind resolves parameters, runs the search and writes the result in
// the requested format.
func (c *CLI) runFind(ctx context.Context, opts findOptions) error {
	params, err := c.resolveFindParams(opts)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	res, err := search.Search(ctx, params)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Search finished at distance %d", res.Distance))

	rec := store.NewRecord(params.Target, res)
	st, err := newFileStore()
	if err != nil {
		return err
	}
	defer st.Close()
	if err := st.AddHistory(ctx, rec); err != nil {
		c.Logger.Warn("could not append to history", "err", err)
	}
	if opts.save {
		if err := st.SaveResult(ctx, rec); err != nil {
			return fmt.Errorf("save result: %w", err)
		}
		printSuccess("Saved as %s", rec.ID)
	}

	return c.writeResult(ctx, params, res, opts)
}

// writeResult serializes a search result in the requested format.
func (c *CLI) writeResult(ctx context.Context, params search.Params, res search.Result, opts findOptions) error {
	var out []byte
	switch opts.format {
	case "text":
		c.printResult(params, res)
		return nil
	case "json":
		var err error
		out, err = json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		out = append(out, '\n')
	case "dot":
		out = []byte(render.SequenceDOT(params.Base, res.Steps, params.Add, params.Sub, render.Options{Detailed: opts.detailed}))
	case "svg":
		dot := render.SequenceDOT(params.Base, res.Steps, params.Add, params.Sub, render.Options{Detailed: opts.detailed})
		svg, err := render.SVG(ctx, dot)
		if err != nil {
			return fmt.Errorf("render svg: %w", err)
		}
		out = svg
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown format %q (want text, json, dot or svg)", opts.format)
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, out, 0644); err != nil {
			return fmt.Errorf("write %s: %w", opts.output, err)
		}
		printSuccess("Wrote %s", opts.output)
		return nil
	}
	_, err := os.Stdout.Write(out)
	return err
}

// printResult renders a search result for the terminal.
func (c *CLI) printResult(params search.Params, res search.Result) {
	fmt.Println()
	fmt.Println(StyleTitle.Render("Dye sequence"))
	printSequence("sequence", res.Steps)
	printKeyValue("steps", fmt.Sprintf("%d", len(res.Steps)))
	printColor("target", params.Target)
	printColor("result", res.Color)
	printKeyValue("mask", res.Mask.String())
	if res.Distance == 0 {
		fmt.Println(styleKey.Render("distance") + " " + StyleSuccess.Render("0 (exact match)"))
	} else {
		printKeyValue("distance", fmt.Sprintf("%d", res.Distance))
	}
}
