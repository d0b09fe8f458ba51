package data

// NewRegisters builds the virtual register-file data source: a
// float64 PrimitiveArray of the given length. It always occupies data
// source index 0 in an Environment.
func NewRegisters(nbRegisters int) *PrimitiveArray[float64] {
	return NewPrimitiveArray[float64](Float64, nbRegisters, "registers")
}

// NewConstants builds the virtual constant-handler data source: an int32
// PrimitiveArray of the given length. When present it occupies data source
// index 1 in an Environment.
func NewConstants(nbConstants int) *PrimitiveArray[int32] {
	return NewPrimitiveArray[int32](Int32, nbConstants, "constants")
}
