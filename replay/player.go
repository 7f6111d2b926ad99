package replay

import (
	"sort"

	cfg "github.com/automoto/rollsphere/config"
)

// Player plays a recording back by tick number. Tick 1 is the first tick of
// the recording; ticks past the end are idle unless the recording loops.
type Player struct {
	frames [][cfg.ActionCount]bool
	ends   []int // cumulative tick count at the end of each step
	loop   bool
}

// NewPlayer prepares r for playback. r must be valid.
func NewPlayer(r *Recording) *Player {
	p := &Player{loop: r.Loop}
	total := 0
	for _, s := range r.Steps {
		var frame [cfg.ActionCount]bool
		for _, name := range s.Actions {
			if id, ok := cfg.ParseAction(name); ok {
				frame[id] = true
			}
		}
		total += s.Ticks
		p.frames = append(p.frames, frame)
		p.ends = append(p.ends, total)
	}
	return p
}

// Actions implements components.InputSource.
func (p *Player) Actions(tick uint64) [cfg.ActionCount]bool {
	if tick == 0 || len(p.ends) == 0 {
		return [cfg.ActionCount]bool{}
	}
	total := uint64(p.ends[len(p.ends)-1])
	i := tick - 1
	if i >= total {
		if !p.loop {
			return [cfg.ActionCount]bool{}
		}
		i %= total
	}
	step := sort.SearchInts(p.ends, int(i)+1)
	return p.frames[step]
}

// Recorder builds a recording from per-tick action states, merging runs of
// identical ticks into one step.
type Recorder struct {
	rec  Recording
	last [cfg.ActionCount]bool
}

func NewRecorder(name string) *Recorder {
	return &Recorder{rec: Recording{Name: name}}
}

// Record appends one tick.
func (r *Recorder) Record(actions [cfg.ActionCount]bool) {
	n := len(r.rec.Steps)
	if n > 0 && actions == r.last {
		r.rec.Steps[n-1].Ticks++
		return
	}
	var names []string
	for id := cfg.ActionID(1); id < cfg.ActionCount; id++ {
		if actions[id] {
			names = append(names, id.String())
		}
	}
	r.rec.Steps = append(r.rec.Steps, Step{Ticks: 1, Actions: names})
	r.last = actions
}

// Recording returns a copy of what has been recorded so far.
func (r *Recorder) Recording() *Recording {
	out := r.rec
	out.Steps = append([]Step(nil), r.rec.Steps...)
	return &out
}
