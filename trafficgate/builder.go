package trafficgate

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/axibridge/axi"
)

// A Builder can build traffic gates.
type Builder struct {
	engine           sim.Engine
	freq             sim.Freq
	widthBytes       int
	synthesizeErrors bool
	portBufCap       int
}

// MakeBuilder creates a builder with default parameter settings.
func MakeBuilder() Builder {
	return Builder{
		freq:       1 * sim.GHz,
		widthBytes: 4,
		portBufCap: 4,
	}
}

// WithEngine sets the event-driven simulation engine that the gate uses.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency that the gate works at.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithWidthBytes sets the data width of the buses in bytes. Synthesized read
// error beats carry this many zero bytes.
func (b Builder) WithWidthBytes(n int) Builder {
	b.widthBytes = n
	return b
}

// WithErrorSynthesis makes the closed gate answer requests with SLVERR
// responses instead of letting them queue up.
func (b Builder) WithErrorSynthesis() Builder {
	b.synthesizeErrors = true
	return b
}

// WithPortBufCap sets the incoming and outgoing buffer capacity of each
// channel port.
func (b Builder) WithPortBufCap(n int) Builder {
	b.portBufCap = n
	return b
}

// Build returns a new traffic gate. The gate starts open.
func (b Builder) Build(name string) *Comp {
	b.assertAllRequiredInformationIsAvailable()

	c := &Comp{
		widthBytes:       b.widthBytes,
		synthesizeErrors: b.synthesizeErrors,
		enabled:          true,
	}
	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)

	c.top = b.buildSide(c, "Top")
	c.bottom = b.buildSide(c, "Bottom")

	c.ctrlPort = sim.NewPort(c, b.portBufCap, b.portBufCap, name+".Ctrl")
	c.AddPort("Ctrl", c.ctrlPort)

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

	if b.widthBytes <= 0 {
		panic("bus width must be positive")
	}

	if b.portBufCap <= 0 {
		panic("port buffer capacity must be positive")
	}
}
