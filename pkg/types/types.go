package types

// Outcome classifies one command execution.
type Outcome string

// Outcome of one executed command.
const (
	OutcomeSuccess Outcome = "success"
	OutcomeError   Outcome = "error"
	OutcomeTimeout Outcome = "timeout"
)

// SaveFormat is the encoding used to persist test cases.
type SaveFormat string

// Save formats.
const (
	SaveFormatJSON    SaveFormat = "json"
	SaveFormatMsgpack SaveFormat = "msgpack"
)

// Ext returns the file extension of the format.
func (f SaveFormat) Ext() string {
	if f == SaveFormatMsgpack {
		return ".msgpack"
	}
	return ".json"
}

// Valid reports whether f is a known format.
func (f SaveFormat) Valid() bool {
	return f == SaveFormatJSON || f == SaveFormatMsgpack
}
