package interconnect

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/akita/v4/sim/directconnection"

	"github.com/sarchlab/axibridge/axi"
	"github.com/sarchlab/axibridge/trafficgate"
	"github.com/sarchlab/axibridge/widthadapter"
)

// A Builder can build interconnects.
type Builder struct {
	engine          sim.Engine
	freq            sim.Freq
	narrowBytes     int
	wideBytes       int
	errorSynthesis  bool
	numPendingReads int
}

// MakeBuilder creates a builder with default parameter settings.
func MakeBuilder() Builder {
	return Builder{
		freq:            1 * sim.GHz,
		narrowBytes:     4,
		wideBytes:       16,
		numPendingReads: 8,
	}
}

// WithEngine sets the event-driven simulation engine that the interconnect
// uses.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency that the interconnect works at.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithNarrowWidthBytes sets the data width of the primary-side bus in bytes.
func (b Builder) WithNarrowWidthBytes(n int) Builder {
	b.narrowBytes = n
	return b
}

// WithWideWidthBytes sets the data width of the secondary-side bus in bytes.
func (b Builder) WithWideWidthBytes(n int) Builder {
	b.wideBytes = n
	return b
}

// WithErrorSynthesis makes the gate answer requests with SLVERR responses
// while closed instead of letting them queue up.
func (b Builder) WithErrorSynthesis() Builder {
	b.errorSynthesis = true
	return b
}

// WithNumPendingReads sets the number of reads the adapter keeps in flight
// at a time.
func (b Builder) WithNumPendingReads(n int) Builder {
	b.numPendingReads = n
	return b
}

// Build returns a new interconnect with the gate and adapter wired together.
func (b Builder) Build(name string) *Interconnect {
	i := &Interconnect{}

	gateBuilder := trafficgate.MakeBuilder().
		WithEngine(b.engine).
		WithFreq(b.freq).
		WithWidthBytes(b.narrowBytes)
	if b.errorSynthesis {
		gateBuilder = gateBuilder.WithErrorSynthesis()
	}
	i.Gate = gateBuilder.Build(name + ".Gate")

	i.Adapter = widthadapter.MakeBuilder().
		WithEngine(b.engine).
		WithFreq(b.freq).
		WithNarrowWidthBytes(b.narrowBytes).
		WithWideWidthBytes(b.wideBytes).
		WithNumPendingReads(b.numPendingReads).
		Build(name + ".Adapter")

	i.PrimaryConn = directconnection.MakeBuilder().
		WithEngine(b.engine).
		WithFreq(b.freq).
		Build(name + ".PrimaryConn")
	i.SecondaryConn = directconnection.MakeBuilder().
		WithEngine(b.engine).
		WithFreq(b.freq).
		Build(name + ".SecondaryConn")
	midConn := directconnection.MakeBuilder().
		WithEngine(b.engine).
		WithFreq(b.freq).
		Build(name + ".MidConn")
	i.CtrlConn = directconnection.MakeBuilder().
		WithEngine(b.engine).
		WithFreq(b.freq).
		Build(name + ".CtrlConn")
	i.CtrlConn.PlugIn(i.Gate.GetPortByName("Ctrl"))

	gateTop := axi.SideOf(i.Gate, "Top")
	gateBottom := axi.SideOf(i.Gate, "Bottom")
	adapterTop := axi.SideOf(i.Adapter, "Top")
	adapterBottom := axi.SideOf(i.Adapter, "Bottom")

	for _, port := range gateTop.Ports() {
		i.PrimaryConn.PlugIn(port)
	}

	for _, port := range gateBottom.Ports() {
		midConn.PlugIn(port)
	}
	for _, port := range adapterTop.Ports() {
		midConn.PlugIn(port)
	}
	i.Gate.SetBottomRemote(adapterTop.AsRemote())
	i.Adapter.SetTopRemote(gateBottom.AsRemote())

	for _, port := range adapterBottom.Ports() {
		i.SecondaryConn.PlugIn(port)
	}

	return i
}
