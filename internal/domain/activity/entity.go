package activity

type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// IsFull reports whether the roster has reached MaxParticipants. It is only
// consulted when capacity enforcement is switched on.
func (a Activity) IsFull() bool {
	return a.MaxParticipants > 0 && len(a.Participants) >= a.MaxParticipants
}

func (a Activity) SpotsLeft() int {
	left := a.MaxParticipants - len(a.Participants)
	if left < 0 {
		return 0
	}
	return left
}

func (a Activity) Clone() Activity {
	out := a
	out.Participants = append(make([]string, 0, len(a.Participants)), a.Participants...)
	return out
}
