// Package aximem provides a simple memory with a five-channel bus interface.
// It serves one transaction at a time and is mainly useful as the secondary
// side of an interconnect in tests and small experiments.
package aximem

import (
	"log"

	"github.com/sarchlab/akita/v4/mem/mem"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/akita/v4/tracing"

	"github.com/sarchlab/axibridge/axi"
)

// Comp is a memory that answers bus transactions. Writes honor the per-lane
// strobe. Reads serve incrementing bursts of full-width beats.
type Comp struct {
	*sim.TickingComponent
	sim.MiddlewareHolder

	side   axi.ChannelSide
	remote axi.RemoteSide

	widthBytes int

	Storage *mem.Storage

	// Burst state of the read request at the head of the read address port.
	readBeatsLeft uint
	readNextAddr  uint64
}

// SetRemote tells the memory where to send its responses.
func (c *Comp) SetRemote(side axi.RemoteSide) {
	c.remote = side
}

// Tick updates the state of the memory.
func (c *Comp) Tick() bool {
	return c.MiddlewareHolder.Tick()
}

type middleware struct {
	*Comp
}

func (m *middleware) Tick() bool {
	madeProgress := false

	madeProgress = m.serveRead() || madeProgress
	madeProgress = m.serveWrite() || madeProgress

	return madeProgress
}

// serveWrite consumes a write address request and its data beat together,
// applies the strobed lanes to storage, and completes the transaction with
// an OKAY response.
func (m *middleware) serveWrite() bool {
	awItem := m.side.WriteAddr.PeekIncoming()
	if awItem == nil {
		return false
	}

	wItem := m.side.WriteData.PeekIncoming()
	if wItem == nil {
		return false
	}

	if !m.side.WriteRsp.CanSend() {
		return false
	}

	aw := awItem.(*axi.WriteAddressReq)
	w := wItem.(*axi.WriteDataBeat)

	tracing.TraceReqReceive(aw, m.Comp)

	m.writeStrobed(aw.Address&^uint64(m.widthBytes-1), w.Data, w.Strobe)

	rsp := axi.WriteRspBuilder{}.
		WithSrc(m.side.WriteRsp.AsRemote()).
		WithDst(m.remote.WriteRsp).
		WithTransactionID(aw.TransactionID).
		WithResp(axi.RespOKAY).
		WithUser(aw.User).
		Build()
	m.side.WriteRsp.Send(rsp)

	m.side.WriteAddr.RetrieveIncoming()
	m.side.WriteData.RetrieveIncoming()

	tracing.TraceReqComplete(aw, m.Comp)

	return true
}

// writeStrobed merges the strobed lanes of one beat into the word at the
// aligned address, leaving the unstrobed lanes untouched.
func (m *middleware) writeStrobed(addr uint64, data []byte, strobe []bool) {
	word, err := m.Storage.Read(addr, uint64(len(data)))
	if err != nil {
		log.Panicf("%s: storage read at 0x%x failed: %s", m.Name(), addr, err)
	}

	for i, set := range strobe {
		if set {
			word[i] = data[i]
		}
	}

	err = m.Storage.Write(addr, word)
	if err != nil {
		log.Panicf("%s: storage write at 0x%x failed: %s", m.Name(), addr, err)
	}
}

// serveRead sends one beat of the read burst at the head of the read address
// port per tick. The request is dequeued after the last beat.
func (m *middleware) serveRead() bool {
	item := m.side.ReadAddr.PeekIncoming()
	if item == nil {
		return false
	}

	ar := item.(*axi.ReadAddressReq)

	if m.readBeatsLeft == 0 {
		tracing.TraceReqReceive(ar, m.Comp)
		m.readBeatsLeft = uint(ar.BurstLen) + 1
		m.readNextAddr = ar.Address &^ uint64(m.widthBytes-1)
	}

	data, err := m.Storage.Read(m.readNextAddr, uint64(m.widthBytes))
	if err != nil {
		log.Panicf("%s: storage read at 0x%x failed: %s",
			m.Name(), m.readNextAddr, err)
	}

	beat := axi.ReadDataBeatBuilder{}.
		WithSrc(m.side.ReadData.AsRemote()).
		WithDst(m.remote.ReadData).
		WithTransactionID(ar.TransactionID).
		WithData(data).
		WithResp(axi.RespOKAY).
		WithLast(m.readBeatsLeft == 1).
		WithUser(ar.User).
		Build()

	sendErr := m.side.ReadData.Send(beat)
	if sendErr != nil {
		return false
	}

	m.readBeatsLeft--
	m.readNextAddr += uint64(m.widthBytes)

	if m.readBeatsLeft == 0 {
		m.side.ReadAddr.RetrieveIncoming()
		tracing.TraceReqComplete(ar, m.Comp)
	}

	return true
}
