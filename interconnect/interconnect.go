// Package interconnect assembles a traffic gate and a width adapter into a
// bridge between a narrow primary-side device and a wide secondary-side
// device. The gate faces the primary side, so blocked traffic is answered
// before it ever reaches the adapter.
package interconnect

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/axibridge/axi"
	"github.com/sarchlab/axibridge/trafficgate"
	"github.com/sarchlab/axibridge/widthadapter"
)

// An Interconnect connects a narrow primary-side device to a wide
// secondary-side device through a traffic gate and a width adapter.
type Interconnect struct {
	Gate    *trafficgate.Comp
	Adapter *widthadapter.Comp

	// PrimaryConn and SecondaryConn carry the outward-facing channels.
	// Devices plug in through PlugInPrimary and PlugInSecondary.
	PrimaryConn   sim.Connection
	SecondaryConn sim.Connection

	// CtrlConn carries gate control messages. A controller plugs in
	// through PlugInController.
	CtrlConn sim.Connection
}

// PlugInPrimary connects the channels of a primary-side device to the
// interconnect. The device sends requests to the gate's top ports and
// receives responses on its own ports.
func (i *Interconnect) PlugInPrimary(side axi.ChannelSide) {
	for _, port := range side.Ports() {
		i.PrimaryConn.PlugIn(port)
	}

	i.Gate.SetTopRemote(side.AsRemote())
}

// PlugInSecondary connects the channels of a secondary-side device to the
// interconnect. The device receives requests from the adapter's bottom ports
// and sends responses back to them.
func (i *Interconnect) PlugInSecondary(side axi.ChannelSide) {
	for _, port := range side.Ports() {
		i.SecondaryConn.PlugIn(port)
	}

	i.Adapter.SetBottomRemote(side.AsRemote())
}

// PlugInController connects the port of a device that opens and closes the
// gate with control messages addressed to CtrlPort.
func (i *Interconnect) PlugInController(port sim.Port) {
	i.CtrlConn.PlugIn(port)
}

// CtrlPort returns the remote name of the gate's control port.
func (i *Interconnect) CtrlPort() sim.RemotePort {
	return i.Gate.GetPortByName("Ctrl").AsRemote()
}

// GateSide returns the remote names of the gate's primary-facing ports.
// Primary-side devices address their requests to these ports.
func (i *Interconnect) GateSide() axi.RemoteSide {
	return axi.RemoteSideOf(i.Gate, "Top")
}

// AdapterSide returns the remote names of the adapter's secondary-facing
// ports. Secondary-side devices address their responses to these ports.
func (i *Interconnect) AdapterSide() axi.RemoteSide {
	return axi.RemoteSideOf(i.Adapter, "Bottom")
}
