package core

// IntentKind classifies the outcome of translating a raw key press.
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentMove
	IntentQuit
	IntentRestart
)

func (k IntentKind) String() string {
	switch k {
	case IntentNone:
		return "none"
	case IntentMove:
		return "move"
	case IntentQuit:
		return "quit"
	case IntentRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Intent is the normalized result of a single key press. Dir is only
// meaningful when Kind is IntentMove.
type Intent struct {
	Kind IntentKind
	Dir  Direction
}

// MoveIntent is a convenience constructor for movement intents.
func MoveIntent(d Direction) Intent {
	return Intent{Kind: IntentMove, Dir: d}
}

// TranslateKey maps a raw key identifier (Bubble Tea's KeyMsg.String form)
// to a game intent. Arrow keys and WASD move, q quits, r restarts; letters
// are case-insensitive. Unrecognized keys are not an error, they translate
// to IntentNone.
func TranslateKey(key string) Intent {
	switch key {
	case "up", "w", "W":
		return MoveIntent(DirUp)
	case "down", "s", "S":
		return MoveIntent(DirDown)
	case "left", "a", "A":
		return MoveIntent(DirLeft)
	case "right", "d", "D":
		return MoveIntent(DirRight)
	case "q", "Q", "ctrl+c":
		return Intent{Kind: IntentQuit}
	case "r", "R":
		return Intent{Kind: IntentRestart}
	}
	return Intent{Kind: IntentNone}
}
