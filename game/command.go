package game

import "snake-arcade/game/types"

type CommandKind int

const (
	CommandTick CommandKind = iota
	CommandDirection
	CommandQuit
)

// Command is one input to the game, applied in the order it was queued.
type Command struct {
	Kind      CommandKind
	Direction types.Point // CommandDirection only
}

func Tick() Command { return Command{Kind: CommandTick} }

func Turn(dir types.Point) Command { return Command{Kind: CommandDirection, Direction: dir} }

func Quit() Command { return Command{Kind: CommandQuit} }

// Queue collects the commands produced during one frame.
type Queue struct {
	pending []Command
}

func (q *Queue) Push(c Command) {
	q.pending = append(q.pending, c)
}

func (q *Queue) Len() int {
	return len(q.pending)
}

// Drain returns the queued commands and empties the queue.
func (q *Queue) Drain() []Command {
	cmds := q.pending
	q.pending = nil
	return cmds
}

// Dispatcher applies commands to a session.
type Dispatcher struct {
	session *Session
	router  *InputRouter
}

func NewDispatcher(session *Session, router *InputRouter) *Dispatcher {
	return &Dispatcher{session: session, router: router}
}

// Dispatch applies cmds in order. It stops at the first quit command and
// reports true in that case.
func (d *Dispatcher) Dispatch(cmds []Command) bool {
	for _, c := range cmds {
		switch c.Kind {
		case CommandTick:
			d.session.Update()
		case CommandDirection:
			if d.router.Accept(d.session.GetSnake().Direction, c.Direction) {
				d.session.SetDirection(c.Direction)
			}
		case CommandQuit:
			return true
		}
	}
	return false
}
