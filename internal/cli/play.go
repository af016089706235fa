package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tintlab/dyeseq/pkg/dye"
	"github.com/tintlab/dyeseq/pkg/errors"
	"github.com/tintlab/dyeseq/pkg/store"
)

// playCommand creates the play command: an interactive step-by-step
// replay of a dye sequence in the terminal.
func (c *CLI) playCommand() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "play [id]",
		Short: "Replay a dye sequence step by step",
		Long: `Replay a dye sequence step by step.

Without an argument the most recent history entry is replayed. With an
ID the record is looked up in the saved collection first, then in
history.

Keys: space/n next, p previous, a toggle autoplay, r restart, q quit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := ""
			if len(args) == 1 {
				key = args[0]
			}
			return c.runPlay(cmd.Context(), key, interval)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 400*time.Millisecond, "autoplay step interval")

	return cmd
}

// runPlay resolves the record to replay and runs the player.
func (c *CLI) runPlay(ctx context.Context, key string, interval time.Duration) error {
	rec, err := c.resolvePlayRecord(ctx, key)
	if err != nil {
		return err
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	model := newPlayerModel(rec, cfg.BaseColor(), cfg.Steps.Add, cfg.Steps.Sub, interval)
	_, err = tea.NewProgram(model, tea.WithContext(ctx)).Run()
	return err
}

// resolvePlayRecord finds the record to replay: the newest history
// entry by default, otherwise the saved result or history entry with
// the given ID.
func (c *CLI) resolvePlayRecord(ctx context.Context, key string) (store.Record, error) {
	st, err := newFileStore()
	if err != nil {
		return store.Record{}, err
	}
	defer st.Close()

	if key == "" {
		recs, err := st.History(ctx, 1)
		if err != nil {
			return store.Record{}, fmt.Errorf("read history: %w", err)
		}
		if len(recs) == 0 {
			return store.Record{}, errors.New(errors.ErrCodeNotFound, "no searches yet, run 'dyeseq find' first")
		}
		return recs[0], nil
	}

	saved, err := st.SavedResults(ctx)
	if err != nil {
		return store.Record{}, fmt.Errorf("read saved results: %w", err)
	}
	for _, rec := range saved {
		if rec.ID == key {
			return rec, nil
		}
	}
	hist, err := st.History(ctx, store.HistoryLimit)
	if err != nil {
		return store.Record{}, fmt.Errorf("read history: %w", err)
	}
	for _, rec := range hist {
		if rec.ID == key {
			return rec, nil
		}
	}
	return store.Record{}, errors.New(errors.ErrCodeNotFound, "no record %q", key)
}

// =============================================================================
// PlayerModel - Step-by-step sequence replay
// =============================================================================

// tickMsg advances autoplay by one step.
type tickMsg struct{}

// playerModel is the bubbletea model for the sequence player.
// States are precomputed at construction: states[i] is the color after
// applying the first i dyes, so stepping is pure index movement.
type playerModel struct {
	rec      store.Record
	steps    []dye.Dye
	states   []dye.Color
	index    int
	playing  bool
	interval time.Duration
	done     bool
}

func newPlayerModel(rec store.Record, base dye.Color, add, sub int, interval time.Duration) playerModel {
	states := make([]dye.Color, len(rec.Steps)+1)
	mask := dye.Identity
	states[0] = dye.Project(base, mask)
	for i, d := range rec.Steps {
		mask = dye.Apply(mask, d, add, sub)
		states[i+1] = dye.Project(base, mask)
	}
	return playerModel{
		rec:      rec,
		steps:    rec.Steps,
		states:   states,
		interval: interval,
	}
}

func (m playerModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m playerModel) Init() tea.Cmd {
	return nil
}

func (m playerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.done = true
			return m, tea.Quit
		case " ", "n", "right", "l":
			m.playing = false
			if m.index < len(m.steps) {
				m.index++
			}
		case "p", "left", "h":
			m.playing = false
			if m.index > 0 {
				m.index--
			}
		case "r":
			m.index = 0
		case "a":
			m.playing = !m.playing
			if m.playing {
				return m, m.tick()
			}
		}
	case tickMsg:
		if !m.playing {
			return m, nil
		}
		if m.index < len(m.steps) {
			m.index++
		}
		if m.index == len(m.steps) {
			m.playing = false
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

func (m playerModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder

	b.WriteString(StyleTitle.Render("Sequence replay"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("space/n next  p previous  a autoplay  r restart  q quit"))
	b.WriteString("\n\n")

	// Progress strip: one swatch per state, current one marked below.
	for _, c := range m.states {
		b.WriteString(swatch(c))
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat("  ", m.index))
	b.WriteString(StyleValue.Render("^^"))
	b.WriteString("\n\n")

	if m.index == 0 {
		printLine(&b, "step", fmt.Sprintf("0/%d (base)", len(m.steps)))
	} else {
		d := m.steps[m.index-1]
		label := lipgloss.NewStyle().Foreground(dyeColors[d]).Render(d.String())
		printLine(&b, "step", fmt.Sprintf("%d/%d (%s)", m.index, len(m.steps), label))
	}
	printLine(&b, "color", StyleValue.Render(m.states[m.index].String())+" "+swatch(m.states[m.index]))
	printLine(&b, "target", StyleValue.Render(m.rec.Target.String())+" "+swatch(m.rec.Target))
	printLine(&b, "distance", fmt.Sprintf("%d", dye.Distance(m.states[m.index], m.rec.Target)))

	if m.index == len(m.steps) {
		b.WriteString("\n")
		if m.rec.Distance == 0 {
			b.WriteString(StyleSuccess.Render("Exact match"))
		} else {
			b.WriteString(StyleDim.Render(fmt.Sprintf("Final distance %d", m.rec.Distance)))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// printLine writes a key/value row into the view buffer.
func printLine(b *strings.Builder, key, value string) {
	b.WriteString(styleKey.Render(key))
	b.WriteString(" ")
	b.WriteString(value)
	b.WriteString("\n")
}
