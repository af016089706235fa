// Package search implements the breadth-first exploration of the mask
// state space that finds the best dye sequence for a target color.
//
// States are masks; each of the four dyes is an outgoing edge computed
// with [dye.Apply]. The traversal starts at the identity mask with an
// empty sequence, deduplicates masks so the first (shortest) path to a
// mask wins, tracks the strictly best projected color seen so far, and
// stops immediately on an exact match.
//
// One call to [Search] runs to completion on the calling goroutine and
// holds no state afterwards: concurrent callers each get an independent
// queue and visited set, so the engine is safe to invoke from multiple
// goroutines as long as every call constructs its own Params.
package search

import (
	"context"
	"time"

	"github.com/tintlab/dyeseq/pkg/dye"
	"github.com/tintlab/dyeseq/pkg/errors"
	"github.com/tintlab/dyeseq/pkg/observability"
)

// Params carries the complete, explicit configuration for one search
// call. There is no ambient configuration: changing the base color or
// step values means passing different Params, never mutating shared
// state.
type Params struct {
	Base     dye.Color `json:"base"`      // base pixel masks are projected onto
	Target   dye.Color `json:"target"`    // color the search tries to reach
	Add      int       `json:"add"`       // delta added to a colored dye's own channel
	Sub      int       `json:"sub"`       // delta subtracted from the other channels
	MaxDepth int       `json:"max_depth"` // longest sequence the search will consider
}

// Validate checks the parameters that the type system cannot.
// Color channels are uint8 and cannot be out of range; the depth bound
// must be validated here.
func (p Params) Validate() error {
	return errors.ValidateDepth(p.MaxDepth)
}

// Result is the outcome of one search call. It is owned by the caller
// and never mutated after construction.
type Result struct {
	Steps    []dye.Dye `json:"steps"`    // best sequence, in replay order (may be empty)
	Mask     dye.Mask  `json:"mask"`     // mask produced by replaying Steps
	Color    dye.Color `json:"color"`    // Mask projected onto the base color
	Distance int       `json:"distance"` // Manhattan distance from Color to the target
}

// node is one BFS queue entry: a reached mask and the steps that
// produced it.
type node struct {
	mask  dye.Mask
	steps []dye.Dye
}

// Search runs a breadth-first search over mask space and returns the
// sequence whose projected color is closest to p.Target.
//
// Best tracking is strict: ties keep the earlier result, so among equal
// distances the shortest sequence wins, and among equal lengths the one
// found first in dye enumeration order (red, green, blue, black). A
// node with distance 0 ends the search immediately. Expansion is gated
// on the current node's depth, so no sequence longer than p.MaxDepth is
// ever enqueued; with MaxDepth 0 only the start state is evaluated.
//
// The search never suspends and does not observe ctx cancellation
// mid-run - ctx is forwarded to the registered observability hooks
// only. If no dye application improves on the start state, the result
// is the empty sequence with the identity mask.
func Search(ctx context.Context, p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	hooks := observability.Search()
	hooks.OnSearchStart(ctx, p.Target.String(), p.MaxDepth)
	start := time.Now()

	best := Result{
		Steps:    []dye.Dye{},
		Mask:     dye.Identity,
		Color:    dye.Project(p.Base, dye.Identity),
		Distance: dye.Distance(dye.Project(p.Base, dye.Identity), p.Target),
	}
	hooks.OnBestFound(ctx, len(best.Steps), best.Distance)
	if best.Distance == 0 {
		hooks.OnSearchComplete(ctx, 0, best.Distance, time.Since(start), nil)
		return best, nil
	}

	visited := map[dye.Mask]struct{}{dye.Identity: {}}
	queue := []node{{mask: dye.Identity, steps: nil}}
	expanded := 0

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		expanded++

		color := dye.Project(p.Base, cur.mask)
		dist := dye.Distance(color, p.Target)
		if dist < best.Distance {
			best = Result{
				Steps:    append([]dye.Dye{}, cur.steps...),
				Mask:     cur.mask,
				Color:    color,
				Distance: dist,
			}
			hooks.OnBestFound(ctx, len(best.Steps), best.Distance)
			if dist == 0 {
				break
			}
		}

		// Children of a node at the depth bound would exceed it.
		if len(cur.steps) >= p.MaxDepth {
			continue
		}

		for _, d := range dye.All {
			next := dye.Apply(cur.mask, d, p.Add, p.Sub)
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			steps := make([]dye.Dye, len(cur.steps)+1)
			copy(steps, cur.steps)
			steps[len(cur.steps)] = d
			queue = append(queue, node{mask: next, steps: steps})
		}
	}

	hooks.OnSearchComplete(ctx, expanded, best.Distance, time.Since(start), nil)
	return best, nil
}

// Replay applies steps to the identity mask in order and returns the
// resulting mask. Replaying a Result's Steps with the same add/sub
// values reproduces its Mask exactly.
func Replay(steps []dye.Dye, add, sub int) dye.Mask {
	m := dye.Identity
	for _, d := range steps {
		m = dye.Apply(m, d, add, sub)
	}
	return m
}
