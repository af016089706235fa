package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tintlab/dyeseq/pkg/config"
	"github.com/tintlab/dyeseq/pkg/dye"
	"github.com/tintlab/dyeseq/pkg/errors"
	"github.com/tintlab/dyeseq/pkg/store"
)

// presetCommand creates the preset command group for managing named
// base colors.
func (c *CLI) presetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage base color presets",
		Long: `Manage base color presets.

A preset is a named base color. 'preset use' makes a preset the
configured base for subsequent searches by rewriting the config file.`,
	}

	cmd.AddCommand(c.presetAddCommand())
	cmd.AddCommand(c.presetListCommand())
	cmd.AddCommand(c.presetDeleteCommand())
	cmd.AddCommand(c.presetUseCommand())

	return cmd
}

// presetAddCommand stores a new named base color.
func (c *CLI) presetAddCommand() *cobra.Command {
	var colorStr string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a base color preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := errors.ValidatePresetName(name); err != nil {
				return err
			}
			r, g, b, err := errors.ParseColorTriple(colorStr)
			if err != nil {
				return err
			}

			st, err := newFileStore()
			if err != nil {
				return err
			}
			defer st.Close()

			p := store.NewPreset(name, dye.Color{R: uint8(r), G: uint8(g), B: uint8(b)})
			if err := st.SavePreset(cmd.Context(), p); err != nil {
				return fmt.Errorf("save preset: %w", err)
			}
			printSuccess("Added preset %q (%s)", p.Name, p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&colorStr, "color", "", "base color as R,G,B (required)")
	_ = cmd.MarkFlagRequired("color")

	return cmd
}

// presetListCommand lists all presets.
func (c *CLI) presetListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List base color presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := newFileStore()
			if err != nil {
				return err
			}
			defer st.Close()

			ps, err := st.Presets(cmd.Context())
			if err != nil {
				return fmt.Errorf("list presets: %w", err)
			}
			if len(ps) == 0 {
				printInfo("No presets")
				return nil
			}
			for _, p := range ps {
				fmt.Println(swatch(p.Color) + " " + StyleValue.Render(p.Name) + " " + StyleDim.Render(p.Color.String()+"  "+p.ID))
			}
			return nil
		},
	}
}

// presetDeleteCommand removes a preset by ID or name.
func (c *CLI) presetDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id|name>",
		Short: "Delete a base color preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := newFileStore()
			if err != nil {
				return err
			}
			defer st.Close()

			p, err := resolvePreset(cmd.Context(), st, args[0])
			if err != nil {
				return err
			}
			if err := st.DeletePreset(cmd.Context(), p.ID); err != nil {
				return fmt.Errorf("delete preset %s: %w", p.ID, err)
			}
			printSuccess("Deleted preset %q", p.Name)
			return nil
		},
	}
}

// presetUseCommand makes a preset the configured base color.
func (c *CLI) presetUseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "use <id|name>",
		Short: "Set a preset as the configured base color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := newFileStore()
			if err != nil {
				return err
			}
			defer st.Close()

			p, err := resolvePreset(cmd.Context(), st, args[0])
			if err != nil {
				return err
			}

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			cfg.Base = config.Base{R: int(p.Color.R), G: int(p.Color.G), B: int(p.Color.B)}

			path, err := c.configPath()
			if err != nil {
				return err
			}
			if err := config.Save(cfg, path); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			printSuccess("Base color is now %q %s", p.Name, p.Color)
			return nil
		},
	}
}

// resolvePreset looks a preset up by ID first, then by exact name.
// Name matching is case-insensitive; an ambiguous name is an error.
func resolvePreset(ctx context.Context, st store.Store, key string) (store.Preset, error) {
	p, err := st.Preset(ctx, key)
	if err == nil {
		return p, nil
	}
	if err != store.ErrNotFound {
		return store.Preset{}, fmt.Errorf("look up preset %s: %w", key, err)
	}

	ps, err := st.Presets(ctx)
	if err != nil {
		return store.Preset{}, fmt.Errorf("list presets: %w", err)
	}
	var matches []store.Preset
	for _, cand := range ps {
		if strings.EqualFold(cand.Name, key) {
			matches = append(matches, cand)
		}
	}
	switch len(matches) {
	case 0:
		return store.Preset{}, errors.New(errors.ErrCodeNotFound, "no preset %q", key)
	case 1:
		return matches[0], nil
	default:
		return store.Preset{}, errors.New(errors.ErrCodeInvalidInput, "preset name %q is ambiguous, use the ID", key)
	}
}
