package garble_test

import (
	"fmt"

	"github.com/hsiuhsiu/garble-go/pkg/garble"
)

// passGarbler returns every leaf unchanged.
type passGarbler struct{}

func (passGarbler) GarbleBool(v bool) bool          { return v }
func (passGarbler) GarbleRune(v rune) rune          { return v }
func (passGarbler) GarbleUint8(v uint8) uint8       { return v }
func (passGarbler) GarbleUint16(v uint16) uint16    { return v }
func (passGarbler) GarbleUint32(v uint32) uint32    { return v }
func (passGarbler) GarbleUint64(v uint64) uint64    { return v }
func (passGarbler) GarbleUint(v uint) uint          { return v }
func (passGarbler) GarbleInt8(v int8) int8          { return v }
func (passGarbler) GarbleInt16(v int16) int16       { return v }
func (passGarbler) GarbleInt32(v int32) int32       { return v }
func (passGarbler) GarbleInt64(v int64) int64       { return v }
func (passGarbler) GarbleInt(v int) int             { return v }
func (passGarbler) GarbleFloat32(v float32) float32 { return v }
func (passGarbler) GarbleFloat64(v float64) float64 { return v }
func (passGarbler) GarbleString(v string) string    { return v }

// zeroGarbler maps every leaf to its zero value (space for runes, so
// the result is still printable).
type zeroGarbler struct{}

func (zeroGarbler) GarbleBool(bool) bool          { return false }
func (zeroGarbler) GarbleRune(rune) rune          { return ' ' }
func (zeroGarbler) GarbleUint8(uint8) uint8       { return 0 }
func (zeroGarbler) GarbleUint16(uint16) uint16    { return 0 }
func (zeroGarbler) GarbleUint32(uint32) uint32    { return 0 }
func (zeroGarbler) GarbleUint64(uint64) uint64    { return 0 }
func (zeroGarbler) GarbleUint(uint) uint          { return 0 }
func (zeroGarbler) GarbleInt8(int8) int8          { return 0 }
func (zeroGarbler) GarbleInt16(int16) int16       { return 0 }
func (zeroGarbler) GarbleInt32(int32) int32       { return 0 }
func (zeroGarbler) GarbleInt64(int64) int64       { return 0 }
func (zeroGarbler) GarbleInt(int) int             { return 0 }
func (zeroGarbler) GarbleFloat32(float32) float32 { return 0 }
func (zeroGarbler) GarbleFloat64(float64) float64 { return 0 }
func (zeroGarbler) GarbleString(string) string    { return "" }

// logGarbler records every leaf visit in call order and passes values
// through unchanged.
type logGarbler struct {
	calls []string
}

func (l *logGarbler) log(format string, args ...any) {
	l.calls = append(l.calls, fmt.Sprintf(format, args...))
}

func (l *logGarbler) GarbleBool(v bool) bool {
	l.log("bool:%v", v)
	return v
}

func (l *logGarbler) GarbleRune(v rune) rune {
	l.log("rune:%q", v)
	return v
}

func (l *logGarbler) GarbleUint8(v uint8) uint8 {
	l.log("u8:%d", v)
	return v
}

func (l *logGarbler) GarbleUint16(v uint16) uint16 {
	l.log("u16:%d", v)
	return v
}

func (l *logGarbler) GarbleUint32(v uint32) uint32 {
	l.log("u32:%d", v)
	return v
}

func (l *logGarbler) GarbleUint64(v uint64) uint64 {
	l.log("u64:%d", v)
	return v
}

func (l *logGarbler) GarbleUint(v uint) uint {
	l.log("uint:%d", v)
	return v
}

func (l *logGarbler) GarbleInt8(v int8) int8 {
	l.log("i8:%d", v)
	return v
}

func (l *logGarbler) GarbleInt16(v int16) int16 {
	l.log("i16:%d", v)
	return v
}

func (l *logGarbler) GarbleInt32(v int32) int32 {
	l.log("i32:%d", v)
	return v
}

func (l *logGarbler) GarbleInt64(v int64) int64 {
	l.log("i64:%d", v)
	return v
}

func (l *logGarbler) GarbleInt(v int) int {
	l.log("int:%d", v)
	return v
}

func (l *logGarbler) GarbleFloat32(v float32) float32 {
	l.log("f32:%g", v)
	return v
}

func (l *logGarbler) GarbleFloat64(v float64) float64 {
	l.log("f64:%g", v)
	return v
}

func (l *logGarbler) GarbleString(v string) string {
	l.log("str:%s", v)
	return v
}

var (
	_ garble.Garbler = passGarbler{}
	_ garble.Garbler = zeroGarbler{}
	_ garble.Garbler = (*logGarbler)(nil)
)
