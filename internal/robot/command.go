package robot

type Command interface {
	Kind() string
	command()
}

type CreateNewRobot struct{}

func (CreateNewRobot) Kind() string { return "create" }
func (CreateNewRobot) command()     {}

type CollectEnergy struct{}

func (CollectEnergy) Kind() string { return "collect" }
func (CollectEnergy) command()     {}

type Move struct {
	To Position `json:"to"`
}

func (Move) Kind() string { return "move" }
func (Move) command()     {}

// Target reports the destination of a Move; other commands have none.
func Target(c Command) (Position, bool) {
	if m, ok := c.(Move); ok {
		return m.To, true
	}
	return Position{}, false
}
