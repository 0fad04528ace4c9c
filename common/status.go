package common

type Statuser interface {
	Status() Status
}

// CheckStatus checks the status of a variadic number of Statusers and
// returns the first one that is not Continue
func CheckStatus(ss ...Statuser) Status {
	for _, val := range ss {
		s := val.Status()
		if s != Continue {
			return s
		}
	}
	return Continue
}

// NewStatus is used to get a unique value for Status to avoid any accidental
// collisions. NewStatus is not thread-safe as it is intended to only be used
// during initialization
func NewStatus(str string) Status {
	lastStatus++
	statusStrings[lastStatus] = str
	return Status(lastStatus)
}

var statusStrings map[Status]string

func init() {
	statusStrings = make(map[Status]string)
	statusStrings[Continue] = "Continue"
	statusStrings[IterationLimit] = "IterationLimit"
	statusStrings[FunctionStop] = "StoppedByFunction"

	statusStrings[UserFunctionError] = "ErrorInUserFunction"
	statusStrings[FinderError] = "RootFinderError"
	statusStrings[MaximumFunctionEvaluations] = "MaximumFunctionEvaluations"
	statusStrings[MaximumRuntime] = "MaximumRuntimeElapsed"
}

// Status is a type for expressing if the root finder has finished or not.
// Zero signifies the finder should continue.
// Positive values indicate the run finished normally,
// negative values express that a budget or failure cut it short.
//
// If a custom status value is desired, NewStatus should be called. NewStatus
// is not thread-safe as it is intended to only be used during initialization
type Status int

func (s Status) String() string {
	str, ok := statusStrings[s]
	if !ok {
		return "UnregisteredStatus"
	}
	return str
}

// Finished returns true if the run ended without hitting a budget or failure
func (s Status) Finished() bool {
	return s > 0
}

const (
	Continue Status = iota
	// IterationLimit is the normal end of a fixed-count run
	IterationLimit
	// FunctionStop means the user function asked to stop through its own Status
	FunctionStop
)

const (
	_                        = iota
	UserFunctionError Status = -1 * iota
	FinderError
	MaximumFunctionEvaluations
	MaximumRuntime
)

var lastStatus Status = 256
