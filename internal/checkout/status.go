package checkout

type State string

const (
	StateIdle            State = "IDLE"
	StateAwaitingPayment State = "AWAITING_PAYMENT"
	StateRecording       State = "RECORDING"
	StateSucceeded       State = "SUCCEEDED"
	StateFailed          State = "FAILED"
)

var validNext = map[State]map[State]bool{
	StateIdle:            {StateAwaitingPayment: true},
	StateAwaitingPayment: {StateRecording: true, StateIdle: true},
	StateRecording:       {StateSucceeded: true, StateFailed: true},
	StateSucceeded:       {},
	StateFailed:          {},
}

func CanTransition(from, to State) bool {
	return validNext[from][to]
}
