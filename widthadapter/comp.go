// Package widthadapter provides a bridge between a narrower primary-side bus
// and a wider secondary-side bus. The wide width must be an integer
// power-of-two multiple of the narrow width. Only single-beat transfers are
// re-aligned; multi-beat bursts pass through with their data misaligned
// beyond the first beat.
package widthadapter

import (
	"log"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/akita/v4/tracing"

	"github.com/sarchlab/axibridge/axi"
)

// Comp re-aligns write data and strobes from the narrow top side to the wide
// bottom side and read data back down. Addresses and write responses pass
// through unmodified. The addresses of in-flight reads are kept in a bounded
// FIFO; its capacity bounds the number of reads outstanding at a time.
type Comp struct {
	*sim.TickingComponent
	sim.MiddlewareHolder

	top    axi.ChannelSide
	bottom axi.ChannelSide

	topRemote    axi.RemoteSide
	bottomRemote axi.RemoteSide

	narrowBytes int
	wideBytes   int

	pendingReadAddrs sim.Buffer
}

// SetTopRemote tells the adapter where to send primary-side responses.
func (c *Comp) SetTopRemote(side axi.RemoteSide) {
	c.topRemote = side
}

// SetBottomRemote tells the adapter where to send secondary-side requests.
func (c *Comp) SetBottomRemote(side axi.RemoteSide) {
	c.bottomRemote = side
}

// Tick updates the state of the adapter.
func (c *Comp) Tick() bool {
	return c.MiddlewareHolder.Tick()
}

type middleware struct {
	*Comp
}

func (m *middleware) Tick() bool {
	madeProgress := false

	madeProgress = m.forwardReadData() || madeProgress
	madeProgress = m.forwardWriteRsp() || madeProgress
	madeProgress = m.forwardReadAddr() || madeProgress
	madeProgress = m.forwardWrite() || madeProgress

	return madeProgress
}

// forwardWrite consumes a write address request and its data beat together.
// The address passes through unmodified; the beat is rebuilt with the data
// and strobe shifted to the byte lanes of the wide bus.
func (m *middleware) forwardWrite() bool {
	awItem := m.top.WriteAddr.PeekIncoming()
	if awItem == nil {
		return false
	}

	wItem := m.top.WriteData.PeekIncoming()
	if wItem == nil {
		return false
	}

	if !m.bottom.WriteAddr.CanSend() || !m.bottom.WriteData.CanSend() {
		return false
	}

	aw := awItem.(*axi.WriteAddressReq)
	w := wItem.(*axi.WriteDataBeat)

	tracing.TraceReqReceive(aw, m.Comp)

	wideBeat := axi.WriteDataBeatBuilder{}.
		WithSrc(m.bottom.WriteData.AsRemote()).
		WithDst(m.bottomRemote.WriteData).
		WithData(widenData(aw.Address, w.Data, m.narrowBytes, m.wideBytes)).
		WithStrobe(widenStrobe(aw.Address, w.Strobe, m.narrowBytes, m.wideBytes)).
		WithLast(w.Last).
		WithUser(w.User).
		Build()

	aw.Meta().Src = m.bottom.WriteAddr.AsRemote()
	aw.Meta().Dst = m.bottomRemote.WriteAddr

	m.bottom.WriteAddr.Send(aw)
	m.bottom.WriteData.Send(wideBeat)

	m.top.WriteAddr.RetrieveIncoming()
	m.top.WriteData.RetrieveIncoming()

	tracing.TraceReqComplete(aw, m.Comp)

	return true
}

func (m *middleware) forwardWriteRsp() bool {
	item := m.bottom.WriteRsp.PeekIncoming()
	if item == nil {
		return false
	}

	rsp := item.(*axi.WriteRsp)
	rsp.Meta().Src = m.top.WriteRsp.AsRemote()
	rsp.Meta().Dst = m.topRemote.WriteRsp

	err := m.top.WriteRsp.Send(rsp)
	if err != nil {
		return false
	}

	m.bottom.WriteRsp.RetrieveIncoming()

	return true
}

// forwardReadAddr passes the request through and records its address so
// that the returning data can be aligned. The rule does not fire while the
// pending-address buffer is full, stalling the requester.
func (m *middleware) forwardReadAddr() bool {
	item := m.top.ReadAddr.PeekIncoming()
	if item == nil {
		return false
	}

	if !m.pendingReadAddrs.CanPush() {
		return false
	}

	ar := item.(*axi.ReadAddressReq)

	tracing.TraceReqReceive(ar, m.Comp)

	ar.Meta().Src = m.bottom.ReadAddr.AsRemote()
	ar.Meta().Dst = m.bottomRemote.ReadAddr

	err := m.bottom.ReadAddr.Send(ar)
	if err != nil {
		return false
	}

	m.pendingReadAddrs.Push(ar.Address)
	m.top.ReadAddr.RetrieveIncoming()

	tracing.TraceReqComplete(ar, m.Comp)

	return true
}

// forwardReadData pops the oldest recorded address and uses it to extract
// the narrow sub-word from the wide beat. Requests and responses complete in
// order, so the head of the buffer always belongs to the arriving beat.
func (m *middleware) forwardReadData() bool {
	item := m.bottom.ReadData.PeekIncoming()
	if item == nil {
		return false
	}

	beat := item.(*axi.ReadDataBeat)

	addrItem := m.pendingReadAddrs.Peek()
	if addrItem == nil {
		log.Panicf("%s: read data beat %s has no matching outstanding read address",
			m.Name(), beat.Meta().ID)
	}
	addr := addrItem.(uint64)

	narrowBeat := axi.ReadDataBeatBuilder{}.
		WithSrc(m.top.ReadData.AsRemote()).
		WithDst(m.topRemote.ReadData).
		WithTransactionID(beat.TransactionID).
		WithData(narrowData(addr, beat.Data, m.narrowBytes, m.wideBytes)).
		WithResp(beat.Resp).
		WithLast(beat.Last).
		WithUser(beat.User).
		Build()

	err := m.top.ReadData.Send(narrowBeat)
	if err != nil {
		return false
	}

	m.pendingReadAddrs.Pop()
	m.bottom.ReadData.RetrieveIncoming()

	return true
}
