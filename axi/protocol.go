// Package axi defines the messages that travel on the five channels of an
// AXI-style split-transaction bus: write address, write data, write
// response, read address, and read data. Each channel is carried by its own
// port so that the channels are flow-controlled independently.
package axi

import (
	"reflect"

	"github.com/sarchlab/akita/v4/sim"
)

var addrReqByteOverhead = 8
var dataBeatByteOverhead = 4
var rspByteOverhead = 4

// Resp is the response code carried by write responses and read data beats.
type Resp uint8

// The response codes defined by the protocol. Synthesized error responses
// always use RespSLVERR.
const (
	RespOKAY Resp = iota
	RespEXOKAY
	RespSLVERR
	RespDECERR
)

func (r Resp) String() string {
	switch r {
	case RespOKAY:
		return "OKAY"
	case RespEXOKAY:
		return "EXOKAY"
	case RespSLVERR:
		return "SLVERR"
	case RespDECERR:
		return "DECERR"
	}

	return "UNKNOWN"
}

// Burst type encodings. They are passed through the adapters uninterpreted.
const (
	BurstFIXED uint8 = iota
	BurstINCR
	BurstWRAP
)

// A WriteAddressReq announces one write transaction. The burst fields are
// opaque to the adapters and pass through unmodified.
type WriteAddressReq struct {
	sim.MsgMeta

	TransactionID uint64
	Address       uint64
	BurstLen      uint8
	BurstSize     uint8
	BurstType     uint8
	User          uint64
}

// Meta returns the meta data attached to the request.
func (r *WriteAddressReq) Meta() *sim.MsgMeta {
	return &r.MsgMeta
}

// Clone returns a copy of the request with a different ID.
func (r *WriteAddressReq) Clone() sim.Msg {
	cloneMsg := *r
	cloneMsg.ID = sim.GetIDGenerator().Generate()

	return &cloneMsg
}

// WriteAddressReqBuilder can build write address requests.
type WriteAddressReqBuilder struct {
	src, dst      sim.RemotePort
	transactionID uint64
	address       uint64
	burstLen      uint8
	burstSize     uint8
	burstType     uint8
	user          uint64
}

// WithSrc sets the source of the request to build.
func (b WriteAddressReqBuilder) WithSrc(src sim.RemotePort) WriteAddressReqBuilder {
	b.src = src
	return b
}

// WithDst sets the destination of the request to build.
func (b WriteAddressReqBuilder) WithDst(dst sim.RemotePort) WriteAddressReqBuilder {
	b.dst = dst
	return b
}

// WithTransactionID sets the transaction ID of the request to build.
func (b WriteAddressReqBuilder) WithTransactionID(id uint64) WriteAddressReqBuilder {
	b.transactionID = id
	return b
}

// WithAddress sets the address of the request to build.
func (b WriteAddressReqBuilder) WithAddress(address uint64) WriteAddressReqBuilder {
	b.address = address
	return b
}

// WithBurstLen sets the burst length field, encoded as beat count minus one.
func (b WriteAddressReqBuilder) WithBurstLen(l uint8) WriteAddressReqBuilder {
	b.burstLen = l
	return b
}

// WithBurstSize sets the burst size field of the request to build.
func (b WriteAddressReqBuilder) WithBurstSize(s uint8) WriteAddressReqBuilder {
	b.burstSize = s
	return b
}

// WithBurstType sets the burst type field of the request to build.
func (b WriteAddressReqBuilder) WithBurstType(t uint8) WriteAddressReqBuilder {
	b.burstType = t
	return b
}

// WithUser sets the user sideband of the request to build.
func (b WriteAddressReqBuilder) WithUser(user uint64) WriteAddressReqBuilder {
	b.user = user
	return b
}

// Build creates a new WriteAddressReq.
func (b WriteAddressReqBuilder) Build() *WriteAddressReq {
	r := &WriteAddressReq{}
	r.ID = sim.GetIDGenerator().Generate()
	r.Src = b.src
	r.Dst = b.dst
	r.TrafficClass = reflect.TypeOf(WriteAddressReq{}).String()
	r.TrafficBytes = addrReqByteOverhead
	r.TransactionID = b.transactionID
	r.Address = b.address
	r.BurstLen = b.burstLen
	r.BurstSize = b.burstSize
	r.BurstType = b.burstType
	r.User = b.user

	return r
}

// A WriteDataBeat carries one beat of write data. Data holds one byte per
// lane of the bus and Strobe marks the lanes that are actually written.
type WriteDataBeat struct {
	sim.MsgMeta

	Data   []byte
	Strobe []bool
	Last   bool
	User   uint64
}

// Meta returns the meta data attached to the beat.
func (r *WriteDataBeat) Meta() *sim.MsgMeta {
	return &r.MsgMeta
}

// Clone returns a copy of the beat with a different ID.
func (r *WriteDataBeat) Clone() sim.Msg {
	cloneMsg := *r
	cloneMsg.ID = sim.GetIDGenerator().Generate()

	return &cloneMsg
}

// WriteDataBeatBuilder can build write data beats.
type WriteDataBeatBuilder struct {
	src, dst sim.RemotePort
	data     []byte
	strobe   []bool
	last     bool
	user     uint64
}

// WithSrc sets the source of the beat to build.
func (b WriteDataBeatBuilder) WithSrc(src sim.RemotePort) WriteDataBeatBuilder {
	b.src = src
	return b
}

// WithDst sets the destination of the beat to build.
func (b WriteDataBeatBuilder) WithDst(dst sim.RemotePort) WriteDataBeatBuilder {
	b.dst = dst
	return b
}

// WithData sets the data of the beat to build.
func (b WriteDataBeatBuilder) WithData(data []byte) WriteDataBeatBuilder {
	b.data = data
	return b
}

// WithStrobe sets the per-lane strobe of the beat to build.
func (b WriteDataBeatBuilder) WithStrobe(strobe []bool) WriteDataBeatBuilder {
	b.strobe = strobe
	return b
}

// WithLast sets the last-beat flag of the beat to build.
func (b WriteDataBeatBuilder) WithLast(last bool) WriteDataBeatBuilder {
	b.last = last
	return b
}

// WithUser sets the user sideband of the beat to build.
func (b WriteDataBeatBuilder) WithUser(user uint64) WriteDataBeatBuilder {
	b.user = user
	return b
}

// Build creates a new WriteDataBeat.
func (b WriteDataBeatBuilder) Build() *WriteDataBeat {
	r := &WriteDataBeat{}
	r.ID = sim.GetIDGenerator().Generate()
	r.Src = b.src
	r.Dst = b.dst
	r.TrafficClass = reflect.TypeOf(WriteDataBeat{}).String()
	r.TrafficBytes = len(b.data) + dataBeatByteOverhead
	r.Data = b.data
	r.Strobe = b.strobe
	r.Last = b.last
	r.User = b.user

	return r
}

// A WriteRsp completes one write transaction.
type WriteRsp struct {
	sim.MsgMeta

	TransactionID uint64
	Resp          Resp
	User          uint64
}

// Meta returns the meta data attached to the response.
func (r *WriteRsp) Meta() *sim.MsgMeta {
	return &r.MsgMeta
}

// Clone returns a copy of the response with a different ID.
func (r *WriteRsp) Clone() sim.Msg {
	cloneMsg := *r
	cloneMsg.ID = sim.GetIDGenerator().Generate()

	return &cloneMsg
}

// WriteRspBuilder can build write responses.
type WriteRspBuilder struct {
	src, dst      sim.RemotePort
	transactionID uint64
	resp          Resp
	user          uint64
}

// WithSrc sets the source of the response to build.
func (b WriteRspBuilder) WithSrc(src sim.RemotePort) WriteRspBuilder {
	b.src = src
	return b
}

// WithDst sets the destination of the response to build.
func (b WriteRspBuilder) WithDst(dst sim.RemotePort) WriteRspBuilder {
	b.dst = dst
	return b
}

// WithTransactionID sets the transaction ID of the response to build.
func (b WriteRspBuilder) WithTransactionID(id uint64) WriteRspBuilder {
	b.transactionID = id
	return b
}

// WithResp sets the response code of the response to build.
func (b WriteRspBuilder) WithResp(resp Resp) WriteRspBuilder {
	b.resp = resp
	return b
}

// WithUser sets the user sideband of the response to build.
func (b WriteRspBuilder) WithUser(user uint64) WriteRspBuilder {
	b.user = user
	return b
}

// Build creates a new WriteRsp.
func (b WriteRspBuilder) Build() *WriteRsp {
	r := &WriteRsp{}
	r.ID = sim.GetIDGenerator().Generate()
	r.Src = b.src
	r.Dst = b.dst
	r.TrafficClass = reflect.TypeOf(WriteRsp{}).String()
	r.TrafficBytes = rspByteOverhead
	r.TransactionID = b.transactionID
	r.Resp = b.resp
	r.User = b.user

	return r
}

// A ReadAddressReq announces one read transaction of BurstLen+1 beats.
type ReadAddressReq struct {
	sim.MsgMeta

	TransactionID uint64
	Address       uint64
	BurstLen      uint8
	BurstSize     uint8
	BurstType     uint8
	User          uint64
}

// Meta returns the meta data attached to the request.
func (r *ReadAddressReq) Meta() *sim.MsgMeta {
	return &r.MsgMeta
}

// Clone returns a copy of the request with a different ID.
func (r *ReadAddressReq) Clone() sim.Msg {
	cloneMsg := *r
	cloneMsg.ID = sim.GetIDGenerator().Generate()

	return &cloneMsg
}

// ReadAddressReqBuilder can build read address requests.
type ReadAddressReqBuilder struct {
	src, dst      sim.RemotePort
	transactionID uint64
	address       uint64
	burstLen      uint8
	burstSize     uint8
	burstType     uint8
	user          uint64
}

// WithSrc sets the source of the request to build.
func (b ReadAddressReqBuilder) WithSrc(src sim.RemotePort) ReadAddressReqBuilder {
	b.src = src
	return b
}

// WithDst sets the destination of the request to build.
func (b ReadAddressReqBuilder) WithDst(dst sim.RemotePort) ReadAddressReqBuilder {
	b.dst = dst
	return b
}

// WithTransactionID sets the transaction ID of the request to build.
func (b ReadAddressReqBuilder) WithTransactionID(id uint64) ReadAddressReqBuilder {
	b.transactionID = id
	return b
}

// WithAddress sets the address of the request to build.
func (b ReadAddressReqBuilder) WithAddress(address uint64) ReadAddressReqBuilder {
	b.address = address
	return b
}

// WithBurstLen sets the burst length field, encoded as beat count minus one.
func (b ReadAddressReqBuilder) WithBurstLen(l uint8) ReadAddressReqBuilder {
	b.burstLen = l
	return b
}

// WithBurstSize sets the burst size field of the request to build.
func (b ReadAddressReqBuilder) WithBurstSize(s uint8) ReadAddressReqBuilder {
	b.burstSize = s
	return b
}

// WithBurstType sets the burst type field of the request to build.
func (b ReadAddressReqBuilder) WithBurstType(t uint8) ReadAddressReqBuilder {
	b.burstType = t
	return b
}

// WithUser sets the user sideband of the request to build.
func (b ReadAddressReqBuilder) WithUser(user uint64) ReadAddressReqBuilder {
	b.user = user
	return b
}

// Build creates a new ReadAddressReq.
func (b ReadAddressReqBuilder) Build() *ReadAddressReq {
	r := &ReadAddressReq{}
	r.ID = sim.GetIDGenerator().Generate()
	r.Src = b.src
	r.Dst = b.dst
	r.TrafficClass = reflect.TypeOf(ReadAddressReq{}).String()
	r.TrafficBytes = addrReqByteOverhead
	r.TransactionID = b.transactionID
	r.Address = b.address
	r.BurstLen = b.burstLen
	r.BurstSize = b.burstSize
	r.BurstType = b.burstType
	r.User = b.user

	return r
}

// A ReadDataBeat carries one beat of read data back to the requester.
type ReadDataBeat struct {
	sim.MsgMeta

	TransactionID uint64
	Data          []byte
	Resp          Resp
	Last          bool
	User          uint64
}

// Meta returns the meta data attached to the beat.
func (r *ReadDataBeat) Meta() *sim.MsgMeta {
	return &r.MsgMeta
}

// Clone returns a copy of the beat with a different ID.
func (r *ReadDataBeat) Clone() sim.Msg {
	cloneMsg := *r
	cloneMsg.ID = sim.GetIDGenerator().Generate()

	return &cloneMsg
}

// ReadDataBeatBuilder can build read data beats.
type ReadDataBeatBuilder struct {
	src, dst      sim.RemotePort
	transactionID uint64
	data          []byte
	resp          Resp
	last          bool
	user          uint64
}

// WithSrc sets the source of the beat to build.
func (b ReadDataBeatBuilder) WithSrc(src sim.RemotePort) ReadDataBeatBuilder {
	b.src = src
	return b
}

// WithDst sets the destination of the beat to build.
func (b ReadDataBeatBuilder) WithDst(dst sim.RemotePort) ReadDataBeatBuilder {
	b.dst = dst
	return b
}

// WithTransactionID sets the transaction ID of the beat to build.
func (b ReadDataBeatBuilder) WithTransactionID(id uint64) ReadDataBeatBuilder {
	b.transactionID = id
	return b
}

// WithData sets the data of the beat to build.
func (b ReadDataBeatBuilder) WithData(data []byte) ReadDataBeatBuilder {
	b.data = data
	return b
}

// WithResp sets the response code of the beat to build.
func (b ReadDataBeatBuilder) WithResp(resp Resp) ReadDataBeatBuilder {
	b.resp = resp
	return b
}

// WithLast sets the last-beat flag of the beat to build.
func (b ReadDataBeatBuilder) WithLast(last bool) ReadDataBeatBuilder {
	b.last = last
	return b
}

// WithUser sets the user sideband of the beat to build.
func (b ReadDataBeatBuilder) WithUser(user uint64) ReadDataBeatBuilder {
	b.user = user
	return b
}

// Build creates a new ReadDataBeat.
func (b ReadDataBeatBuilder) Build() *ReadDataBeat {
	r := &ReadDataBeat{}
	r.ID = sim.GetIDGenerator().Generate()
	r.Src = b.src
	r.Dst = b.dst
	r.TrafficClass = reflect.TypeOf(ReadDataBeat{}).String()
	r.TrafficBytes = len(b.data) + dataBeatByteOverhead
	r.TransactionID = b.transactionID
	r.Data = b.data
	r.Resp = b.resp
	r.Last = b.last
	r.User = b.user

	return r
}
