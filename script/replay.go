package script

import (
	"context"
	"fmt"

	"github.com/gogpu/polydraw"
	"github.com/gogpu/polydraw/input"
)

// Host receives replayed steps. Pointer and resize steps arrive as bus
// events; button steps as direct calls.
type Host interface {
	Dispatch(ev input.Event)
	Complete()
	Copy()
	Reset()
	Snapshot(path string) error
}

// Replay feeds every step of s to h in order. It stops at the first
// snapshot error or when ctx is canceled.
func Replay(ctx context.Context, s *Script, h Host) error {
	log := polydraw.Logger()
	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("script: step %d: %w", i+1, err)
		}
		log.Debug("script: step", "n", i+1, "kind", st.Kind, "x", st.X, "y", st.Y)

		switch st.Kind {
		case KindClick:
			h.Dispatch(input.Event{Kind: input.Click, X: st.X, Y: st.Y})
		case KindMove:
			h.Dispatch(input.Event{Kind: input.PointerMove, X: st.X, Y: st.Y})
		case KindResize:
			h.Dispatch(input.Event{Kind: input.Resize, X: st.X, Y: st.Y})
		case KindComplete:
			h.Complete()
		case KindCopy:
			h.Copy()
		case KindReset:
			h.Reset()
		case KindFrame:
			if err := h.Snapshot(st.Output); err != nil {
				return fmt.Errorf("script: step %d: %w", i+1, err)
			}
		default:
			return fmt.Errorf("script: step %d: %w %q", i+1, ErrUnknownKind, st.Kind)
		}
	}
	log.Info("script: replay finished", "steps", len(s.Steps))
	return nil
}
