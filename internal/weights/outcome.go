package weights

// Outcome describes how a storage read or write went. Outcomes are ordered
// by severity; an operation touching several records reports the worst one.
type Outcome int

const (
	OK Outcome = iota
	Absent
	InvalidNumericInput
	MalformedRecord
	StorageUnavailable
)

func (o Outcome) String() string {
	switch o {
	case OK:
		return "ok"
	case Absent:
		return "absent"
	case InvalidNumericInput:
		return "invalid_numeric_input"
	case MalformedRecord:
		return "malformed_record"
	case StorageUnavailable:
		return "storage_unavailable"
	default:
		return "unknown"
	}
}
