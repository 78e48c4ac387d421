package models

// Phase is the lifecycle state of one generation attempt.
type Phase int

const (
	Idle Phase = iota
	Loading
	Success
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Snapshot is a copy of the generation state handed from core to UI (kept
// here to avoid an import cycle).
type Snapshot struct {
	Phase        Phase
	ErrorMessage string
	Names        []string
}

// Focus selects which part of the screen receives key presses.
type Focus int

const (
	FocusInput Focus = iota
	FocusResults
)

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	Input        string   // Store description being typed
	Names        []string // Names from the most recent resolved request
	Phase        Phase    // Mirrors core phase; set to Loading locally on submit
	ErrorMessage string   // Last failure, shown in the error box
	Notices      []string // Startup lines (profile, provider)
	Status       string   // Status bar text
	LoadingDots  int      // Animation counter for loading dots
	Width        int      // Terminal width
	Height       int      // Terminal height
	ServiceReady bool     // Whether a provider is configured
	Focus        Focus
	Cursor       int // Selected name in the results list
	CopiedIndex  int // Index showing the copied marker, -1 when unset
	CopySeq      int // Bumped on every copy; stale expiries are ignored
}

// NoCopy is the CopiedIndex value when no copy marker is shown.
const NoCopy = -1

// Loading reports whether a request is outstanding.
func (m *AppModel) Loading() bool {
	return m.Phase == Loading
}
