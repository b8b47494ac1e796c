package robot

// Algorithm is the contract the simulation host uses for pluggable strategies.
// DoStep is called once per robot turn with live state that must not be
// retained after the call returns.
type Algorithm interface {
	Author() string
	DoStep(robots []Robot, index int, m Map) (Command, error)
}
