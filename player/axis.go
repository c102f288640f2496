package player

import "github.com/pipejesus/chill-out/input"

// ResolveAxis turns an opposing button pair into a signed step
// With both held the more recently pressed button wins, equal timestamps cancel
func ResolveAxis(neg, pos input.ButtonState, step float64) float64 {
	switch {
	case pos.Pressed && !neg.Pressed:
		return step
	case neg.Pressed && !pos.Pressed:
		return -step
	case pos.Pressed && neg.Pressed:
		if pos.Timestamp > neg.Timestamp {
			return step
		}
		if neg.Timestamp > pos.Timestamp {
			return -step
		}
	}
	return 0
}
