package aximem

import (
	"github.com/sarchlab/akita/v4/mem/mem"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/axibridge/axi"
)

// A Builder can build bus-attached memories.
type Builder struct {
	engine     sim.Engine
	freq       sim.Freq
	widthBytes int
	capacity   uint64
	storage    *mem.Storage
	portBufCap int
}

// MakeBuilder creates a builder with default parameter settings.
func MakeBuilder() Builder {
	return Builder{
		freq:       1 * sim.GHz,
		widthBytes: 16,
		capacity:   4 * mem.KB,
		portBufCap: 4,
	}
}

// WithEngine sets the event-driven simulation engine that the memory uses.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency that the memory works at.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithWidthBytes sets the data width of the bus in bytes.
func (b Builder) WithWidthBytes(n int) Builder {
	b.widthBytes = n
	return b
}

// WithCapacity sets the number of bytes the memory holds.
func (b Builder) WithCapacity(capacity uint64) Builder {
	b.capacity = capacity
	return b
}

// WithStorage makes the memory operate on an existing storage instead of
// allocating its own.
func (b Builder) WithStorage(storage *mem.Storage) Builder {
	b.storage = storage
	return b
}

// WithPortBufCap sets the incoming and outgoing buffer capacity of each
// channel port.
func (b Builder) WithPortBufCap(n int) Builder {
	b.portBufCap = n
	return b
}

// Build returns a new memory.
func (b Builder) Build(name string) *Comp {
	b.assertAllRequiredInformationIsAvailable()

	c := &Comp{
		widthBytes: b.widthBytes,
	}
	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)

	if b.storage != nil {
		c.Storage = b.storage
	} else {
		c.Storage = mem.NewStorage(b.capacity)
	}

	c.side = axi.ChannelSide{
		WriteAddr: sim.NewPort(c, b.portBufCap, b.portBufCap,
			name+".WriteAddr"),
		WriteData: sim.NewPort(c, b.portBufCap, b.portBufCap,
			name+".WriteData"),
		WriteRsp: sim.NewPort(c, b.portBufCap, b.portBufCap,
			name+".WriteRsp"),
		ReadAddr: sim.NewPort(c, b.portBufCap, b.portBufCap,
			name+".ReadAddr"),
		ReadData: sim.NewPort(c, b.portBufCap, b.portBufCap,
			name+".ReadData"),
	}

	c.AddPort("WriteAddr", c.side.WriteAddr)
	c.AddPort("WriteData", c.side.WriteData)
	c.AddPort("WriteRsp", c.side.WriteRsp)
	c.AddPort("ReadAddr", c.side.ReadAddr)
	c.AddPort("ReadData", c.side.ReadData)

	c.AddMiddleware(&middleware{Comp: c})

	return c
}

func (b Builder) assertAllRequiredInformationIsAvailable() {
	if b.engine == nil {
		panic("engine is not specified")
	}

	if b.widthBytes <= 0 {
		panic("bus width must be positive")
	}

	if b.storage == nil && b.capacity == 0 {
		panic("memory capacity must be positive")
	}
}
