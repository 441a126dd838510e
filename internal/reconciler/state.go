package reconciler

// State — состояние цикла сверки.
type State int32

const (
	StateIdle State = iota
	StateReceived
	StateDecoding
	StateApplying
	StateSkipping
	StateAcknowledging
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateReceived:
		return "received"
	case StateDecoding:
		return "decoding"
	case StateApplying:
		return "applying"
	case StateSkipping:
		return "skipping"
	case StateAcknowledging:
		return "acknowledging"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
