package component

type DayPhase int

const (
	DayDocked DayPhase = iota
	DayFishing
	DayRewinding
)

func (p DayPhase) String() string {
	switch p {
	case DayDocked:
		return "docked"
	case DayFishing:
		return "fishing"
	case DayRewinding:
		return "rewinding"
	default:
		return "unknown"
	}
}

// DayCycle tracks the fishing day. Bank holds value collected on earlier
// days, Haul the value collected today.
type DayCycle struct {
	Phase    DayPhase
	Day      int
	Duration float64
	Elapsed  float64
	Haul     float64
	Bank     float64
}

var DayCycleComponent = NewComponent[DayCycle]()
