package component

// AI runs a scripted update each tick. Frozen is set when the script fails
// and stops further runs.
type AI struct {
	Script    string
	MoveSpeed float64
	Frozen    bool
	WantsFire bool
}

var AIComponent = NewComponent[AI]()
