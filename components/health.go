package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current float64
	Max     float64
}

// Damage subtracts amount and reports whether this hit was lethal.
func (h *HealthData) Damage(amount float64) bool {
	if h.Current <= 0 || amount <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current <= 0 {
		h.Current = 0
		return true
	}
	return false
}

func (h *HealthData) Alive() bool {
	return h.Current > 0
}

var Health = donburi.NewComponentType[HealthData]()
