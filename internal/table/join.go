package table

// OuterJoin full-outer-joins left and right on the key column using a hash
// join, O(n+m) in the row counts. Non-key columns whose names appear on both
// sides are disambiguated with leftSuffix / rightSuffix.
//
// Output order: left rows in input order, each fanned out over its matching
// right rows in their input order, then right rows whose key matched nothing
// on the left, in input order. Unmatched sides are filled with nulls. Rows
// with a null key never match anything and pass through unmatched.
func OuterJoin(left, right *Table, key, leftSuffix, rightSuffix string) (*Table, error) {
	lk, ok := left.Index(key)
	if !ok {
		return nil, &SchemaError{Column: key}
	}
	rk, ok := right.Index(key)
	if !ok {
		return nil, &SchemaError{Column: key}
	}

	overlap := overlapSet(left.cols, right.cols, key)

	var cols []string
	cols = append(cols, key)
	for i, c := range left.cols {
		if i == lk {
			continue
		}
		if overlap[c] {
			c += leftSuffix
		}
		cols = append(cols, c)
	}
	for i, c := range right.cols {
		if i == rk {
			continue
		}
		if overlap[c] {
			c += rightSuffix
		}
		cols = append(cols, c)
	}

	// Hash the right side by key.
	byKey := make(map[string][]int, right.Len())
	for i, row := range right.rows {
		if row[rk].IsNull() {
			continue
		}
		k := row[rk].Render()
		byKey[k] = append(byKey[k], i)
	}

	out := New(cols...)
	matched := make([]bool, right.Len())

	join := func(key Value, lrow, rrow []Value) []Value {
		row := make([]Value, 0, len(cols))
		row = append(row, key)
		row = appendSide(row, lrow, lk, len(left.cols))
		row = appendSide(row, rrow, rk, len(right.cols))
		return row
	}

	for _, lrow := range left.rows {
		var rIdx []int
		if !lrow[lk].IsNull() {
			rIdx = byKey[lrow[lk].Render()]
		}
		if len(rIdx) == 0 {
			out.rows = append(out.rows, join(lrow[lk], lrow, nil))
			continue
		}
		for _, ri := range rIdx {
			matched[ri] = true
			out.rows = append(out.rows, join(lrow[lk], lrow, right.rows[ri]))
		}
	}

	for i, rrow := range right.rows {
		if matched[i] {
			continue
		}
		out.rows = append(out.rows, join(rrow[rk], nil, rrow))
	}

	return out, nil
}

// appendSide appends a side's non-key cells to row, padding with nulls when
// the side is absent. width is the side's full column count including the key.
func appendSide(row, side []Value, keyIdx, width int) []Value {
	if side == nil {
		for i := 0; i < width-1; i++ {
			row = append(row, Null())
		}
		return row
	}
	for i, v := range side {
		if i == keyIdx {
			continue
		}
		row = append(row, v)
	}
	return row
}

// overlapSet returns the non-key column names present on both sides.
func overlapSet(left, right []string, key string) map[string]bool {
	inLeft := make(map[string]bool, len(left))
	for _, c := range left {
		if c != key {
			inLeft[c] = true
		}
	}
	overlap := make(map[string]bool)
	for _, c := range right {
		if c != key && inLeft[c] {
			overlap[c] = true
		}
	}
	return overlap
}
