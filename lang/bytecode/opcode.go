// Package bytecode is the compiled-chunk data model a (external) compiler
// targets and a (external) VM executes: the instruction set, the Lambda
// container (code stream, constant pool, span index, capture list, FFI
// table), and a disassembler for inspecting both.
package bytecode

// Opcode is a single bytecode instruction. Several opcodes carry a single
// variable-length operand immediately following the opcode byte; the rest
// are bare.
type Opcode uint8

const (
	Con Opcode = iota
	NotInit
	Del
	Capture
	Save
	SaveCap
	Load
	LoadCap
	Call
	Return
	Closure
	Print
	Label
	UnLabel
	UnData
	Tuple
	UnTuple
	Copy
	FFICall

	numOpcodes
)

var opcodeNames = [numOpcodes]string{
	Con:     "Con",
	NotInit: "NotInit",
	Del:     "Del",
	Capture: "Capture",
	Save:    "Save",
	SaveCap: "SaveCap",
	Load:    "Load",
	LoadCap: "LoadCap",
	Call:    "Call",
	Return:  "Return",
	Closure: "Closure",
	Print:   "Print",
	Label:   "Label",
	UnLabel: "UnLabel",
	UnData:  "UnData",
	Tuple:   "Tuple",
	UnTuple: "UnTuple",
	Copy:    "Copy",
	FFICall: "FFICall",
}

func (op Opcode) String() string {
	if int(op) < len(opcodeNames) {
		if name := opcodeNames[op]; name != "" {
			return name
		}
	}
	return "Unknown"
}

// HasOperand reports whether op is followed by a variable-length operand in
// the bytecode stream.
func (op Opcode) HasOperand() bool {
	switch op {
	case Con, Capture, Save, SaveCap, Load, LoadCap, Return, Closure, Tuple, UnTuple, FFICall:
		return true
	default:
		return false
	}
}

// Valid reports whether b decodes to a known opcode; decoding any other byte
// as an opcode is an error.
func Valid(b byte) bool {
	return b < byte(numOpcodes)
}
