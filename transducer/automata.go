package transducer

import (
	"context"
	"fmt"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/hangul/internal/tracing"
	"github.com/npillmayer/hangul/jamo"
)

// stateFn represents a state of the compose automaton.
// A stateFn consumes a single code-point r of class cls, emits any output
// which can no longer change and returns the state to continue with.
type stateFn func(*automaton, rune, jamo.Class) stateFn

// automaton composes syllables. It holds the pending syllable: a slot is 0
// if it is not filled yet. Output is appended to out.
//
// Invariant: vowel != 0 implies lead != 0, trail != 0 implies vowel != 0.
type automaton struct {
	lead, vowel, trail rune
	state              stateFn
	out                []rune
}

func newAutomaton() *automaton {
	a := &automaton{}
	a.state = stateIdle
	return a
}

// step feeds a single code-point into the automaton.
func (a *automaton) step(r rune) {
	cls := jamo.ClassOf(r)
	a.state = a.state(a, r, cls)
}

// finish flushes the pending syllable, if any, and returns to the idle state.
func (a *automaton) finish() {
	a.flush()
	a.state = stateIdle
}

// idle is true if no syllable is pending.
func (a *automaton) idle() bool {
	return a.lead == 0
}

func (a *automaton) emit(r rune) {
	a.out = append(a.out, r)
}

// flush emits the pending syllable. A lead without a vowel is emitted as a bare
// lead jamo. Indices are guaranteed to be valid by classification; an invalid
// index therefore is a programming error and we panic.
func (a *automaton) flush() {
	if a.lead == 0 {
		return
	}
	if a.vowel == 0 {
		tracing.P("lead", fmt.Sprintf("%#U", a.lead)).Debugf("flush bare lead")
		a.emit(a.lead)
	} else {
		l := indexOf(jamo.LeadIndex(a.lead))
		v := indexOf(jamo.VowelIndex(a.vowel))
		t := 0
		if a.trail != 0 {
			t = indexOf(jamo.TrailIndex(a.trail))
		}
		s, err := jamo.Compose(l, v, t)
		if err != nil {
			panic(fmt.Sprintf("hangul transducer: cannot compose %#U %#U %#U: %v",
				a.lead, a.vowel, a.trail, err))
		}
		tracing.P("syllable", fmt.Sprintf("%#U", s)).Debugf("flush syllable")
		a.emit(s)
	}
	a.lead, a.vowel, a.trail = 0, 0, 0
}

// indexOf maps a failed index lookup to an invalid index.
func indexOf(i int, ok bool) int {
	if !ok {
		return -1
	}
	return i
}

// open starts a new pending syllable with a lead jamo.
func (a *automaton) open(lead rune) stateFn {
	a.lead = lead
	return stateLead
}

// pass flushes the pending syllable and copies r to the output.
func (a *automaton) pass(r rune) stateFn {
	a.flush()
	a.emit(r)
	return stateIdle
}

// --- States ----------------------------------------------------------------

// No syllable pending.
func stateIdle(a *automaton, r rune, cls jamo.Class) stateFn {
	if cls == jamo.LeadJamo {
		return a.open(r)
	}
	return a.pass(r)
}

// Lead present, waiting for a vowel.
func stateLead(a *automaton, r rune, cls jamo.Class) stateFn {
	switch cls {
	case jamo.LeadJamo: // a second lead: emit the first one bare
		a.flush()
		return a.open(r)
	case jamo.VowelJamo:
		a.vowel = r
		return stateSyllable
	}
	tracing.P("class", cls.String()).Debugf("lead cannot be extended by %#U", r)
	return a.pass(r)
}

// Lead and vowel present, a trail may follow.
func stateSyllable(a *automaton, r rune, cls jamo.Class) stateFn {
	switch cls {
	case jamo.LeadJamo:
		a.flush()
		return a.open(r)
	case jamo.TrailJamo:
		a.trail = r
		return stateComplete
	}
	return a.pass(r)
}

// Lead, vowel and trail present. Nothing can extend the syllable any more.
func stateComplete(a *automaton, r rune, cls jamo.Class) stateFn {
	if cls == jamo.LeadJamo {
		a.flush()
		return a.open(r)
	}
	return a.pass(r)
}

// --- Pooling ---------------------------------------------------------------

// Automata are short-lived objects, one per call of Compose or Transform.
// To avoid allocating them over and over again we pool them.
type automatonPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalAutomatonPool *automatonPool

func init() {
	globalAutomatonPool = &automatonPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return newAutomaton(), nil
		})
	globalAutomatonPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalAutomatonPool.opool = pool.NewObjectPool(globalAutomatonPool.ctx, factory, config)
}

// borrowAutomaton returns an idle automaton from the pool.
func borrowAutomaton() *automaton {
	o, err := globalAutomatonPool.opool.BorrowObject(globalAutomatonPool.ctx)
	if err != nil {
		tracing.Errorf("cannot borrow automaton from pool: %v", err)
		return newAutomaton()
	}
	return o.(*automaton)
}

// release clears the automaton and puts it back into the pool.
func (a *automaton) release() {
	a.lead, a.vowel, a.trail = 0, 0, 0
	a.state = stateIdle
	a.out = nil
	_ = globalAutomatonPool.opool.ReturnObject(globalAutomatonPool.ctx, a)
}
