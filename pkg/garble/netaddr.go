package garble

import (
	"net/netip"
	"reflect"
)

var (
	netipAddrType     = reflect.TypeOf(netip.Addr{})
	netipAddrPortType = reflect.TypeOf(netip.AddrPort{})
)

// garbleNetip handles net/netip value types: address bytes are garbled
// componentwise, ports go through GarbleUint16, and the zone (scope)
// is preserved. The invalid Addr passes through unchanged.
func garbleNetip(v reflect.Value, g Garbler) (reflect.Value, bool) {
	switch v.Type() {
	case netipAddrType:
		a := v.Interface().(netip.Addr)
		return reflect.ValueOf(garbleAddr(a, g)), true
	case netipAddrPortType:
		ap := v.Interface().(netip.AddrPort)
		out := netip.AddrPortFrom(garbleAddr(ap.Addr(), g), g.GarbleUint16(ap.Port()))
		return reflect.ValueOf(out), true
	}
	return reflect.Value{}, false
}

func garbleAddr(a netip.Addr, g Garbler) netip.Addr {
	switch {
	case !a.IsValid():
		return a
	case a.Is4():
		b := a.As4()
		for i := range b {
			b[i] = g.GarbleUint8(b[i])
		}
		return netip.AddrFrom4(b)
	default:
		b := a.As16()
		for i := range b {
			b[i] = g.GarbleUint8(b[i])
		}
		out := netip.AddrFrom16(b)
		if zone := a.Zone(); zone != "" {
			out = out.WithZone(zone)
		}
		return out
	}
}
