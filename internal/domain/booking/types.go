package booking

// SlotStatus is the closed two-state slot lifecycle. A slot moves from
// available to booked exactly once and never back.
type SlotStatus string

const (
	StatusAvailable SlotStatus = "available"
	StatusBooked    SlotStatus = "booked"
)

func (s SlotStatus) String() string {
	return string(s)
}

func (s SlotStatus) IsValid() bool {
	switch s {
	case StatusAvailable, StatusBooked:
		return true
	default:
		return false
	}
}
