package trafficgate

import (
	"reflect"

	"github.com/sarchlab/akita/v4/sim"
)

var controlMsgByteOverhead = 4

// A ControlMsg opens or closes the gate.
type ControlMsg struct {
	sim.MsgMeta

	Enable bool
}

// Meta returns the meta data attached to the message.
func (m *ControlMsg) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

// Clone returns a copy of the message with a different ID.
func (m *ControlMsg) Clone() sim.Msg {
	cloneMsg := *m
	cloneMsg.ID = sim.GetIDGenerator().Generate()

	return &cloneMsg
}

// ControlMsgBuilder can build control messages.
type ControlMsgBuilder struct {
	src, dst sim.RemotePort
	enable   bool
}

// WithSrc sets the source of the message to build.
func (b ControlMsgBuilder) WithSrc(src sim.RemotePort) ControlMsgBuilder {
	b.src = src
	return b
}

// WithDst sets the destination of the message to build.
func (b ControlMsgBuilder) WithDst(dst sim.RemotePort) ControlMsgBuilder {
	b.dst = dst
	return b
}

// WithEnable sets the enable flag of the message to build.
func (b ControlMsgBuilder) WithEnable(enable bool) ControlMsgBuilder {
	b.enable = enable
	return b
}

// Build creates a new ControlMsg.
func (b ControlMsgBuilder) Build() *ControlMsg {
	m := &ControlMsg{}
	m.ID = sim.GetIDGenerator().Generate()
	m.Src = b.src
	m.Dst = b.dst
	m.TrafficClass = reflect.TypeOf(ControlMsg{}).String()
	m.TrafficBytes = controlMsgByteOverhead
	m.Enable = b.enable

	return m
}
