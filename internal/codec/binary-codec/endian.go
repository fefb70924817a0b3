package binarycodec

import "math/bits"

// HostToNetworkPort converts a port held in host order into the value whose
// little-endian encoding puts the port on the wire in network (big-endian) order.
func HostToNetworkPort(port uint16) uint16 {
	return bits.ReverseBytes16(port)
}

// NetworkToHostPort undoes HostToNetworkPort after a little-endian read.
func NetworkToHostPort(wire uint16) uint16 {
	return bits.ReverseBytes16(wire)
}
