package widthadapter

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/axibridge/axi"
)

// A Builder can build width adapters.
type Builder struct {
	engine          sim.Engine
	freq            sim.Freq
	narrowBytes     int
	wideBytes       int
	numPendingReads int
	portBufCap      int
}

// MakeBuilder creates a builder with default parameter settings.
func MakeBuilder() Builder {
	return Builder{
		freq:            1 * sim.GHz,
		narrowBytes:     4,
		wideBytes:       16,
		numPendingReads: 8,
		portBufCap:      4,
	}
}

// WithEngine sets the event-driven simulation engine that the adapter uses.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency that the adapter works at.
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

// WithNumPendingReads sets the capacity of the outstanding read address
// buffer, which bounds the number of reads in flight at a time.
func (b Builder) WithNumPendingReads(n int) Builder {
	b.numPendingReads = n
	return b
}

// WithPortBufCap sets the incoming and outgoing buffer capacity of each
// channel port.
func (b Builder) WithPortBufCap(n int) Builder {
	b.portBufCap = n
	return b
}

// Build returns a new width adapter.
func (b Builder) Build(name string) *Comp {
	b.assertAllRequiredInformationIsAvailable()

	c := &Comp{
		narrowBytes: b.narrowBytes,
		wideBytes:   b.wideBytes,
	}
	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)

	c.top = b.buildSide(c, "Top")
	c.bottom = b.buildSide(c, "Bottom")

	c.pendingReadAddrs = sim.NewBuffer(
		name+".PendingReadAddrBuf", b.numPendingReads)

	c.AddMiddleware(&middleware{Comp: c})

	return c
}

func (b Builder) buildSide(c *Comp, prefix string) axi.ChannelSide {
	side := axi.ChannelSide{
		WriteAddr: sim.NewPort(c, b.portBufCap, b.portBufCap,
			c.Name()+"."+prefix+"WriteAddr"),
		WriteData: sim.NewPort(c, b.portBufCap, b.portBufCap,
			c.Name()+"."+prefix+"WriteData"),
		WriteRsp: sim.NewPort(c, b.portBufCap, b.portBufCap,
			c.Name()+"."+prefix+"WriteRsp"),
		ReadAddr: sim.NewPort(c, b.portBufCap, b.portBufCap,
			c.Name()+"."+prefix+"ReadAddr"),
		ReadData: sim.NewPort(c, b.portBufCap, b.portBufCap,
			c.Name()+"."+prefix+"ReadData"),
	}

	c.AddPort(prefix+"WriteAddr", side.WriteAddr)
	c.AddPort(prefix+"WriteData", side.WriteData)
	c.AddPort(prefix+"WriteRsp", side.WriteRsp)
	c.AddPort(prefix+"ReadAddr", side.ReadAddr)
	c.AddPort(prefix+"ReadData", side.ReadData)

	return side
}

func (b Builder) assertAllRequiredInformationIsAvailable() {
	if b.engine == nil {
		panic("engine is not specified")
	}

	if !isPowerOfTwo(b.narrowBytes) || !isPowerOfTwo(b.wideBytes) {
		panic("bus widths must be powers of two")
	}

	if b.wideBytes < b.narrowBytes {
		panic("secondary-side bus must not be narrower than the primary side")
	}

	if b.numPendingReads <= 0 {
		panic("pending read capacity must be positive")
	}
}
