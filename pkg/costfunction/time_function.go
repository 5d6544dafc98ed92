package costfunction

type TimeFunction struct {
}

func NewTimeCostFunction() *TimeFunction {
	return &TimeFunction{}
}

const (
	defaultSpeed = 20.0 // km/h
)

// GetWeight. estimated travel time of the edge in second. edges without an estimate fall back to defaultSpeed.
func (tf *TimeFunction) GetWeight(e EdgeAttributes) float64 {
	if e.GetWeight() > 0 {
		return e.GetWeight()
	}
	return e.GetLength() / (defaultSpeed / 3.6)
}
