package bits

// Unsigned - result types the descriptor helpers can narrow the 32-bit
// accumulator into.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// ReadF - F with the result cast to the caller's type.
func ReadF[T Unsigned](r *Reader, n int) (T, error) {
	v, err := r.F(n)
	return T(v), err
}

// ReadLe - Le with the result cast to the caller's type.
func ReadLe[T Unsigned](r *Reader, n int) (T, error) {
	v, err := r.Le(n)
	return T(v), err
}

// ReadFlag - F with the result as a nonzero test.
func ReadFlag(r *Reader, n int) (bool, error) {
	v, err := r.F(n)
	return v != 0, err
}
