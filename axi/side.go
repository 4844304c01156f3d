package axi

import "github.com/sarchlab/akita/v4/sim"

// A ChannelSide bundles the five channel ports that make up one side of an
// interface. Requests travel on WriteAddr, WriteData, and ReadAddr;
// responses travel on WriteRsp and ReadData.
type ChannelSide struct {
	WriteAddr sim.Port
	WriteData sim.Port
	WriteRsp  sim.Port
	ReadAddr  sim.Port
	ReadData  sim.Port
}

// Ports lists the five ports of the side in channel order.
func (s ChannelSide) Ports() []sim.Port {
	return []sim.Port{
		s.WriteAddr, s.WriteData, s.WriteRsp, s.ReadAddr, s.ReadData,
	}
}

// AsRemote returns the remote names of the five ports of the side.
func (s ChannelSide) AsRemote() RemoteSide {
	return RemoteSide{
		WriteAddr: s.WriteAddr.AsRemote(),
		WriteData: s.WriteData.AsRemote(),
		WriteRsp:  s.WriteRsp.AsRemote(),
		ReadAddr:  s.ReadAddr.AsRemote(),
		ReadData:  s.ReadData.AsRemote(),
	}
}

// A RemoteSide names the five channel ports of a peer. Components send each
// channel's traffic to the matching remote port, as the destination cannot
// be recovered from a request's source port.
type RemoteSide struct {
	WriteAddr sim.RemotePort
	WriteData sim.RemotePort
	WriteRsp  sim.RemotePort
	ReadAddr  sim.RemotePort
	ReadData  sim.RemotePort
}

// SideOf collects the five channel ports that a component registered under
// the given prefix, e.g. "Top" or "Bottom".
func SideOf(c sim.Component, prefix string) ChannelSide {
	return ChannelSide{
		WriteAddr: c.GetPortByName(prefix + "WriteAddr"),
		WriteData: c.GetPortByName(prefix + "WriteData"),
		WriteRsp:  c.GetPortByName(prefix + "WriteRsp"),
		ReadAddr:  c.GetPortByName(prefix + "ReadAddr"),
		ReadData:  c.GetPortByName(prefix + "ReadData"),
	}
}

// RemoteSideOf collects the remote names of the five channel ports that a
// component registered under the given prefix.
func RemoteSideOf(c sim.Component, prefix string) RemoteSide {
	return SideOf(c, prefix).AsRemote()
}
