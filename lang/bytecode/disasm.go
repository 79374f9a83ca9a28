package bytecode

import (
	"fmt"
	"strings"

	"github.com/slightknack/passerine/lang/numcodec"
)

// Disassemble produces a deterministic textual dump of l: its constants,
// captures, and declared-variable count, followed by the bytecode stream
// decoded linearly. Each operand-bearing opcode is printed with its
// mnemonic, decoded operand, and a short explanatory comment; Con also
// prints the referenced constant's value.
//
// Decoding halts cleanly at end of stream. An unrecognized byte is a
// programmer error — the compiler is responsible for never emitting one —
// so Disassemble reports it as a line rather than panicking, to remain
// useful for inspecting a chunk under construction.
func Disassemble(l *Lambda) string {
	var b strings.Builder

	fmt.Fprintf(&b, "== constants (%d) ==\n", len(l.constants))
	for i, c := range l.constants {
		fmt.Fprintf(&b, "%4d | %s\n", i, c)
	}

	fmt.Fprintf(&b, "== captures (%d) ==\n", len(l.Captures))
	for i, c := range l.Captures {
		fmt.Fprintf(&b, "%4d | %s\n", i, c)
	}

	fmt.Fprintf(&b, "== decls %d ==\n", l.Decls)

	fmt.Fprintf(&b, "== code (%d bytes) ==\n", len(l.Code))
	ip := 0
	for ip < len(l.Code) {
		offset := ip
		raw := l.Code[ip]
		if !Valid(raw) {
			fmt.Fprintf(&b, "%4d | ???  <unrecognized byte 0x%02x>\n", offset, raw)
			ip++
			continue
		}
		op := Opcode(raw)
		ip++

		if !op.HasOperand() {
			fmt.Fprintf(&b, "%4d | %-8s %s\n", offset, op, opcodeComment(op, 0))
			continue
		}

		operand, consumed := numcodec.BuildNumber(l.Code[ip:])
		ip += consumed

		comment := opcodeComment(op, operand)
		if op == Con {
			if int(operand) < len(l.constants) {
				comment = fmt.Sprintf("%s (%s)", comment, l.constants[operand])
			}
		}
		fmt.Fprintf(&b, "%4d | %-8s %-6d %s\n", offset, op, operand, comment)
	}

	return b.String()
}

// opcodeComment returns the explanatory text the spec's disassembler
// description calls for, one line per opcode kind.
func opcodeComment(op Opcode, operand uint64) string {
	switch op {
	case Con:
		return "push constants[i]"
	case NotInit:
		return "reserve uninitialized local slot"
	case Del:
		return "pop and discard"
	case Capture:
		return "promote local to heap cell"
	case Save:
		return "pop, store into local slot"
	case SaveCap:
		return "pop, store into captured cell"
	case Load:
		return "push local slot"
	case LoadCap:
		return "push captured cell"
	case Call:
		return "pop argument and function, invoke, push result"
	case Return:
		return "pop return value, drop locals, push return value"
	case Closure:
		return "wrap lambda constant with resolved captures"
	case Print:
		return "pop and emit to output sink"
	case Label:
		return "wrap top-of-stack in label frame"
	case UnLabel:
		return "unwrap label frame"
	case UnData:
		return "destructure single literal match"
	case Tuple:
		return "pop n values, push tuple"
	case UnTuple:
		// The peek-vs-pop question is an open question (see spec §9); this
		// implementation treats UnTuple as non-destructive (peek), see
		// DESIGN.md.
		return "peek i-th element of tuple on top"
	case Copy:
		return "duplicate top-of-stack"
	case FFICall:
		return "invoke ffi[i] with popped argument"
	default:
		return ""
	}
}
