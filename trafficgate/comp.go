// Package trafficgate provides a runtime-switchable pass-through/block
// filter for the five bus channels. An open gate forwards every channel
// untouched. A closed gate either freezes traffic in place or, when built
// with error synthesis, answers every primary-side request with SLVERR
// responses of the correct burst shape so that requesters never deadlock.
package trafficgate

import (
	"log"
	"reflect"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/axibridge/axi"
)

// Comp filters traffic between its top (primary) and bottom (secondary)
// sides. The enable state is sampled at every tick and applies immediately.
type Comp struct {
	*sim.TickingComponent
	sim.MiddlewareHolder

	top    axi.ChannelSide
	bottom axi.ChannelSide

	topRemote    axi.RemoteSide
	bottomRemote axi.RemoteSide

	ctrlPort sim.Port

	widthBytes       int
	synthesizeErrors bool

	enabled bool

	// Number of error beats still owed for the read request at the head of
	// the top read address port. Zero means no error burst is in progress.
	pendingErrorBeats uint
}

// SetTopRemote tells the gate where to send primary-side responses.
func (c *Comp) SetTopRemote(side axi.RemoteSide) {
	c.topRemote = side
}

// SetBottomRemote tells the gate where to send secondary-side requests.
func (c *Comp) SetBottomRemote(side axi.RemoteSide) {
	c.bottomRemote = side
}

// SetEnabled opens or closes the gate. The new state applies to the next
// tick without delay.
func (c *Comp) SetEnabled(enabled bool) {
	c.applyEnable(enabled)
	c.TickLater()
}

// applyEnable switches the gate state. Opening abandons any half-served
// error burst; the head read request becomes regular traffic again, so the
// leftover beat count must not survive into the next closed period.
func (c *Comp) applyEnable(enabled bool) {
	if c.enabled != enabled {
		log.Printf("%s: gate %s", c.Name(), gateStateName(enabled))
	}

	if enabled {
		c.pendingErrorBeats = 0
	}

	c.enabled = enabled
}

// Tick updates the state of the gate.
func (c *Comp) Tick() bool {
	return c.MiddlewareHolder.Tick()
}

func gateStateName(enabled bool) string {
	if enabled {
		return "open"
	}

	return "closed"
}

type middleware struct {
	*Comp
}

func (m *middleware) Tick() bool {
	madeProgress := m.processCtrl()

	if m.enabled {
		return m.passThrough() || madeProgress
	}

	if m.synthesizeErrors {
		return m.respondAndDrain() || madeProgress
	}

	// Closed without error synthesis: traffic stays queued until the gate
	// reopens.
	return madeProgress
}

func (m *middleware) processCtrl() bool {
	item := m.ctrlPort.RetrieveIncoming()
	if item == nil {
		return false
	}

	msg := item.(*ControlMsg)
	m.applyEnable(msg.Enable)

	return true
}

func (m *middleware) passThrough() bool {
	madeProgress := false

	madeProgress = m.forward(
		m.bottom.ReadData, m.top.ReadData, m.topRemote.ReadData) || madeProgress
	madeProgress = m.forward(
		m.bottom.WriteRsp, m.top.WriteRsp, m.topRemote.WriteRsp) || madeProgress
	madeProgress = m.forward(
		m.top.ReadAddr, m.bottom.ReadAddr, m.bottomRemote.ReadAddr) || madeProgress
	madeProgress = m.forward(
		m.top.WriteData, m.bottom.WriteData, m.bottomRemote.WriteData) || madeProgress
	madeProgress = m.forward(
		m.top.WriteAddr, m.bottom.WriteAddr, m.bottomRemote.WriteAddr) || madeProgress

	return madeProgress
}

func (m *middleware) forward(from, to sim.Port, dst sim.RemotePort) bool {
	item := from.PeekIncoming()
	if item == nil {
		return false
	}

	item.Meta().Src = to.AsRemote()
	item.Meta().Dst = dst

	err := to.Send(item)
	if err != nil {
		return false
	}

	from.RetrieveIncoming()

	return true
}

func (m *middleware) respondAndDrain() bool {
	madeProgress := false

	madeProgress = m.respondWriteAddr() || madeProgress
	madeProgress = m.drainWriteData() || madeProgress
	madeProgress = m.synthesizeReadError() || madeProgress
	madeProgress = m.drainUnexpected(m.bottom.WriteRsp) || madeProgress
	madeProgress = m.drainUnexpected(m.bottom.ReadData) || madeProgress

	return madeProgress
}

// respondWriteAddr consumes one write address request and answers it with a
// SLVERR response. Nothing is issued downstream.
func (m *middleware) respondWriteAddr() bool {
	item := m.top.WriteAddr.PeekIncoming()
	if item == nil {
		return false
	}

	aw := item.(*axi.WriteAddressReq)

	rsp := axi.WriteRspBuilder{}.
		WithSrc(m.top.WriteRsp.AsRemote()).
		WithDst(m.topRemote.WriteRsp).
		WithTransactionID(aw.TransactionID).
		WithResp(axi.RespSLVERR).
		WithUser(aw.User).
		Build()

	err := m.top.WriteRsp.Send(rsp)
	if err != nil {
		return false
	}

	m.top.WriteAddr.RetrieveIncoming()

	return true
}

// drainWriteData discards write data beats independently of the address
// channel. The two channels have no required 1:1 timing.
func (m *middleware) drainWriteData() bool {
	return m.top.WriteData.RetrieveIncoming() != nil
}

// synthesizeReadError serves the read request at the head of the top read
// address port with a SLVERR burst of the requested length, one beat per
// tick. The request is dequeued only after the last beat has gone out, so
// its burst length field stays readable for the whole burst.
func (m *middleware) synthesizeReadError() bool {
	item := m.top.ReadAddr.PeekIncoming()
	if item == nil {
		return false
	}

	ar := item.(*axi.ReadAddressReq)

	if m.pendingErrorBeats == 0 {
		m.pendingErrorBeats = uint(ar.BurstLen) + 1
	}

	beat := axi.ReadDataBeatBuilder{}.
		WithSrc(m.top.ReadData.AsRemote()).
		WithDst(m.topRemote.ReadData).
		WithTransactionID(ar.TransactionID).
		WithData(make([]byte, m.widthBytes)).
		WithResp(axi.RespSLVERR).
		WithLast(m.pendingErrorBeats == 1).
		WithUser(ar.User).
		Build()

	err := m.top.ReadData.Send(beat)
	if err != nil {
		return false
	}

	m.pendingErrorBeats--
	if m.pendingErrorBeats == 0 {
		m.top.ReadAddr.RetrieveIncoming()
	}

	return true
}

// drainUnexpected discards secondary-side responses arriving while the gate
// is closed. No request can have been forwarded, so such traffic indicates a
// misbehaving downstream and is only worth a warning.
func (m *middleware) drainUnexpected(port sim.Port) bool {
	msg := port.RetrieveIncoming()
	if msg == nil {
		return false
	}

	log.Printf("%s: dropping %s arriving from the secondary side while closed",
		m.Name(), reflect.TypeOf(msg))

	return true
}
