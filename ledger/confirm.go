package ledger

import "errors"

// GateState tracks the confirmation flow guarding a destructive reset.
type GateState int

const (
	GateIdle GateState = iota
	GatePending
	GateConfirmed
	GateExecuted
)

func (s GateState) String() string {
	switch s {
	case GateIdle:
		return "idle"
	case GatePending:
		return "pending"
	case GateConfirmed:
		return "confirmed"
	case GateExecuted:
		return "executed"
	default:
		return "unknown"
	}
}

// ResetGate is the two-step confirmation machine for Engine.ResetAll. A reset
// request arms the gate; executing requires both an explicit acknowledgement
// and a second confirming action. Any other interaction while pending returns
// the gate to idle with no side effects, so a single action can never delete
// the ledger.
type ResetGate struct {
	state        GateState
	acknowledged bool
}

func (g *ResetGate) State() GateState { return g.state }

// Request moves an idle gate to pending. Nothing destructive happens yet.
func (g *ResetGate) Request() {
	if g.state == GateIdle {
		g.state = GatePending
	}
}

// Acknowledge records the explicit confirmation control (the checkbox step).
// Only meaningful while pending; in any other state it abandons the flow.
func (g *ResetGate) Acknowledge() {
	if g.state != GatePending {
		g.Cancel()
		return
	}
	g.acknowledged = true
}

// Confirm is the second explicit action. Without a prior Acknowledge the flow
// is abandoned, not escalated.
func (g *ResetGate) Confirm() bool {
	if g.state == GatePending && g.acknowledged {
		g.state = GateConfirmed
		return true
	}
	g.Cancel()
	return false
}

// Cancel returns to idle with no side effects.
func (g *ResetGate) Cancel() {
	if g.state == GateExecuted {
		return
	}
	g.state = GateIdle
	g.acknowledged = false
}

// Execute runs the destructive call, but only from the confirmed state.
func (g *ResetGate) Execute(reset func() error) error {
	if g.state != GateConfirmed {
		g.Cancel()
		return errors.New("reset not confirmed")
	}
	if err := reset(); err != nil {
		g.Cancel()
		return err
	}
	g.state = GateExecuted
	return nil
}
