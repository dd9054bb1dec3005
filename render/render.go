// Package render turns a dispatch report into the human-readable bytecode
// listing of the generated dispatcher.
//
// The listing is descriptive: nothing here assembles or executes code, it
// names the instructions the dispatcher would consist of, with their byte
// offsets, so the layout can be inspected. The library core never formats
// anything; all presentation lives in this package.
package render

import (
	"fmt"
	"io"

	"github.com/seldispatch/seldispatch"
)

// opcode is an EVM instruction tag, used only for mnemonics.
type opcode byte

const (
	opStop         opcode = 0x00
	opMul          opcode = 0x02
	opAnd          opcode = 0x16
	opShr          opcode = 0x1C
	opCalldataload opcode = 0x35
	opJump         opcode = 0x56
	opJumpdest     opcode = 0x5B
	opPush0        opcode = 0x5F
	opPush1        opcode = 0x60
	opPush3        opcode = 0x62
	opPush32       opcode = 0x7F
)

func (o opcode) String() string {
	switch o {
	case opStop:
		return "STOP"
	case opMul:
		return "MUL"
	case opAnd:
		return "AND"
	case opShr:
		return "SHR"
	case opCalldataload:
		return "CALLDATALOAD"
	case opJump:
		return "JUMP"
	case opJumpdest:
		return "JUMPDEST"
	case opPush0:
		return "PUSH0"
	case opPush1:
		return "PUSH1"
	case opPush3:
		return "PUSH3"
	case opPush32:
		return "PUSH32"
	default:
		return fmt.Sprintf("UNKNOWN(0x%02X)", byte(o))
	}
}

// instruction is one line of the preamble listing: a mnemonic, the bytes it
// occupies (opcode plus immediate), and optional immediate/comment text.
type instruction struct {
	op      opcode
	size    int
	text    string
	comment string
}

// preamble is the reference dispatcher preamble for the given magic numbers:
// load the calldata word, multiply, shift, mask to a byte, scale by the slot
// size, and jump. Its sizes sum to seldispatch.DefaultPreambleSize.
func preamble(c seldispatch.Candidate, slotSize int) []instruction {
	return []instruction{
		{op: opPush0, size: 1},
		{op: opCalldataload, size: 1},
		{op: opPush32, size: 33, text: c.Multiplier.Hex(), comment: "magic number q"},
		{op: opMul, size: 1},
		{op: opPush32, size: 33, text: fmt.Sprintf("0x%08x", c.Shift), comment: "shift amount"},
		{op: opShr, size: 1},
		{op: opPush1, size: 2, text: "0xFF"},
		{op: opAnd, size: 1},
		{op: opPush1, size: 2, text: fmt.Sprintf("0x%02X", slotSize)},
		{op: opMul, size: 1},
		{op: opJumpdest, size: 1},
		{op: opJump, size: 1},
	}
}

// errWriter folds write errors so the formatting code stays linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

// Program writes the full dispatcher listing for a report: the input
// bindings, the magic numbers, the selector-to-byte mapping, the preamble
// with running byte offsets, the jump table with its gaps, and stub function
// code blocks.
func Program(w io.Writer, rep *seldispatch.Report) error {
	e := &errWriter{w: w}
	cfg := rep.Table.Config

	e.printf("Generated function selectors and addresses:\n")
	for i, b := range rep.Bindings {
		e.printf("%2d: Selector: 0x%08x -> Address: 0x%08x\n", i+1, b.Selector, b.Address)
	}

	e.printf("\nFound magic numbers for EVM dispatch:\n")
	e.printf("q (multiplier): %s\n", rep.Result.Candidate.Multiplier.Hex())
	e.printf("shift: %d\n", rep.Result.Candidate.Shift)

	e.printf("\nSelector to Result Byte Mapping:\n")
	e.printf("--------------------------------\n")
	e.printf("Selector\t\tResult Byte\n")
	e.printf("--------------------------------\n")
	for i, b := range rep.Bindings {
		e.printf("0x%08x\t\t0x%02x\n", b.Selector, rep.Mapping[i])
	}
	e.printf("--------------------------------\n")

	e.printf("\nEVM bytecode structure:\n")
	e.printf("// Dispatcher code (%d bytes)\n", cfg.PreambleSize)
	offset := 0
	for _, ins := range preamble(rep.Result.Candidate, cfg.SlotSize) {
		if ins.text != "" && ins.comment != "" {
			e.printf("%3d: %s %s // %s\n", offset, ins.op, ins.text, ins.comment)
		} else if ins.text != "" {
			e.printf("%3d: %s %s\n", offset, ins.op, ins.text)
		} else {
			e.printf("%3d: %s\n", offset, ins.op)
		}
		offset += ins.size
	}

	e.printf("\n// Function dispatchers (starts at byte %d)\n", cfg.PreambleSize)
	e.printf("// Each jump-table slot consists of:\n")
	e.printf("// %s (1 byte)\n", opJumpdest)
	e.printf("// %s <function_address> (4 bytes)\n", opPush3)
	e.printf("// %s (1 byte)\n", opJump)
	e.printf("// Total: %d bytes per function\n", cfg.SlotSize)

	// Entries and gaps are both ordered by byte value and exactly partition
	// the table, so a two-index merge reproduces the layout in offset order.
	gaps := rep.Table.Gaps
	gi := 0
	for _, ent := range rep.Table.Entries {
		if gi < len(gaps) && gaps[gi].From < ent.Byte {
			e.printf("// Gap from offset %d to %d\n",
				gapStart(gaps[gi], cfg), gapEnd(gaps[gi], cfg))
			gi++
		}
		e.printf("%3d: %s\n", ent.Offset, opJumpdest)
		e.printf("%3d: %s 0x%06x // Function at 0x%08x (selector: 0x%08x, result byte: 0x%02x)\n",
			ent.Offset+1, opPush3, ent.Address&0xFFFFFF, ent.Address, ent.Selector, ent.Byte)
		e.printf("%3d: %s\n", ent.Offset+cfg.SlotSize-1, opJump)
	}
	if gi < len(gaps) {
		e.printf("// Gap from offset %d to %d (end of table)\n",
			gapStart(gaps[gi], cfg), gapEnd(gaps[gi], cfg))
	}

	e.printf("\n// Function code blocks\n")
	for i, b := range rep.Bindings {
		e.printf("\n// Function at 0x%08x\n", b.Address)
		e.printf("0x%08x: %s\n", b.Address, opJumpdest)
		e.printf("// Function %d implementation\n", i+1)
		e.printf("// Selector: 0x%08x\n", b.Selector)
		e.printf("// ... function code ...\n")
		e.printf("0x%08x: %s\n", b.Address+1, opStop)
	}

	return e.err
}

func gapStart(g seldispatch.Gap, cfg seldispatch.TableConfig) int {
	return cfg.PreambleSize + int(g.From)*cfg.SlotSize
}

func gapEnd(g seldispatch.Gap, cfg seldispatch.TableConfig) int {
	return cfg.PreambleSize + (int(g.To)+1)*cfg.SlotSize
}
