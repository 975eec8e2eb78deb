package types

func (s *Array) Len() int           { return len(s.Data) }
func (s *Array) Swap(i, j int)      { s.Data[i], s.Data[j] = s.Data[j], s.Data[i] }
func (s *Array) Less(i, j int) bool { return s.Cmp(s.Data[i], s.Data[j]) < 0 }

// Clone returns a copy of the first n elements.
func (s Slice) Clone(n int) Slice {
	out := make(Slice, n)
	copy(out, s[:n])
	return out
}
