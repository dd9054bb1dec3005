package seldispatch

// Reference instruction encoding sizes. The preamble is the fixed sequence
// that computes the hash byte and performs the indexed jump:
//
//	PUSH0 CALLDATALOAD PUSH32 q MUL PUSH32 shift SHR PUSH1 0xFF AND
//	PUSH1 slot MUL JUMPDEST JUMP
//
// which occupies 78 bytes, and each jump-table slot is JUMPDEST + PUSH3
// address + JUMP, 6 bytes. Other encodings are supported by setting the
// fields of TableConfig; the layout never assumes these literals.
const (
	DefaultPreambleSize = 78
	DefaultSlotSize     = 6
)

// TableConfig holds the layout constants of the dispatcher encoding.
// The zero value selects the reference encoding.
type TableConfig struct {
	// PreambleSize is the number of bytes occupied by the dispatcher
	// preamble before the jump table begins.
	PreambleSize int

	// SlotSize is the number of bytes occupied by one jump-table entry.
	SlotSize int
}

func (c TableConfig) withDefaults() TableConfig {
	if c.PreambleSize == 0 {
		c.PreambleSize = DefaultPreambleSize
	}
	if c.SlotSize == 0 {
		c.SlotSize = DefaultSlotSize
	}
	return c
}

// Binding pairs a selector with the opaque 32-bit address of the function it
// dispatches to. Addresses are never interpreted.
type Binding struct {
	Selector uint32
	Address  uint32
}

// Entry is one occupied jump-table slot.
type Entry struct {
	// Offset is the byte offset of the slot: PreambleSize + Byte*SlotSize.
	Offset   int
	Byte     byte
	Selector uint32
	Address  uint32
}

// Gap is a contiguous inclusive range of byte values with no assigned
// selector: unused capacity in the table. Gaps carry no executable filler;
// reporting them is the renderer's concern.
type Gap struct {
	From byte
	To   byte
}

// Table is the computed dispatcher layout: entries ordered by offset and the
// gap ranges between them. Occupied bytes and gaps exactly partition
// [0, 255].
type Table struct {
	Config  TableConfig
	Entries []Entry
	Gaps    []Gap
}

// BuildTable lays out the jump table for an accepted candidate. Each bound
// selector occupies the slot of its mapped byte; every unoccupied byte value
// is reported in a gap range. The transform is pure and cannot fail: the
// caller is responsible for supplying a candidate that is injective over the
// bound selectors (a Search result always is), otherwise later bindings
// silently displace earlier ones on the shared byte.
func BuildTable(cand Candidate, bindings []Binding, cfg TableConfig) Table {
	cfg = cfg.withDefaults()

	var occupied [256]bool
	var bound [256]Binding
	for _, b := range bindings {
		idx := cand.MapSelector(b.Selector)
		occupied[idx] = true
		bound[idx] = b
	}

	t := Table{Config: cfg}

	// Walking byte values in order yields entries already ordered by offset,
	// since offset is monotone in the byte value.
	gapOpen := false
	var gapFrom int
	for v := range 256 {
		if occupied[v] {
			if gapOpen {
				t.Gaps = append(t.Gaps, Gap{From: byte(gapFrom), To: byte(v - 1)})
				gapOpen = false
			}
			t.Entries = append(t.Entries, Entry{
				Offset:   cfg.PreambleSize + v*cfg.SlotSize,
				Byte:     byte(v),
				Selector: bound[v].Selector,
				Address:  bound[v].Address,
			})
			continue
		}
		if !gapOpen {
			gapOpen = true
			gapFrom = v
		}
	}
	if gapOpen {
		t.Gaps = append(t.Gaps, Gap{From: byte(gapFrom), To: 255})
	}
	return t
}
