package smallstring

// decimalDigits reports how many base-10 digits magnitude m renders to.
// Zero renders as a single "0".
func decimalDigits(m uint64) int {
	d := 1
	for m >= 10 {
		m /= 10
		d++
	}
	return d
}

// PushInt appends v rendered in base-10 ASCII: no leading zeros, a
// leading '-' for negative values, "0" for zero.
//
// The digit count (plus sign) is computed up front and the region grown
// once; digits are then written right to left from the new tail, so no
// scratch buffer or reversal pass is needed. The magnitude is taken in
// uint64 space, where the minimum int64 is representable.
func (b *Buffer) PushInt(v int64) error {
	mag := uint64(v)
	neg := v < 0
	if neg {
		mag = -mag
	}
	n := decimalDigits(mag)
	if neg {
		n++
	}
	if err := b.EnsureFit(n); err != nil {
		return err
	}
	data := b.storage.Bytes()
	b.length += n
	i := b.length - 1
	for {
		data[i] = '0' + byte(mag%10)
		mag /= 10
		if mag == 0 {
			break
		}
		i--
	}
	if neg {
		data[b.length-n] = '-'
	}
	return nil
}

// PushUint appends v rendered in base-10 ASCII.
func (b *Buffer) PushUint(v uint64) error {
	n := decimalDigits(v)
	if err := b.EnsureFit(n); err != nil {
		return err
	}
	data := b.storage.Bytes()
	b.length += n
	i := b.length - 1
	for {
		data[i] = '0' + byte(v%10)
		v /= 10
		if v == 0 {
			break
		}
		i--
	}
	return nil
}
