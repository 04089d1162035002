package aggregation

// meanAcc acumula uma média ignorando valores nulos.
type meanAcc struct {
	sum   float64
	count int
}

func (m *meanAcc) addPtr(v *float64) {
	if v == nil {
		return
	}
	m.sum += *v
	m.count++
}

// mean returns nil when nothing was accumulated.
func (m meanAcc) mean() *float64 {
	if m.count == 0 {
		return nil
	}
	v := m.sum / float64(m.count)
	return &v
}
