// This file is part of GopherJaguar.
//
// GopherJaguar is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherJaguar is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherJaguar.  If not, see <https://www.gnu.org/licenses/>.

package jagrisc

import "strings"

// bit positions in the packed flags register.
const (
	ZFlag     = 0x00001
	CFlag     = 0x00002
	NFlag     = 0x00004
	IFlag     = 0x00008
	EInt0Flag = 0x00010
	EInt1Flag = 0x00020
	EInt2Flag = 0x00040
	EInt3Flag = 0x00080
	EInt4Flag = 0x00100
	CInt0Flag = 0x00200
	CInt1Flag = 0x00400
	CInt2Flag = 0x00800
	CInt3Flag = 0x01000
	CInt4Flag = 0x02000
	RPageFlag = 0x04000
	DMAFlag   = 0x08000
	EInt5Flag = 0x10000 // DSP only
	CInt5Flag = 0x20000 // DSP only

	EInt04Flags = EInt0Flag | EInt1Flag | EInt2Flag | EInt3Flag | EInt4Flag
	CInt04Flags = CInt0Flag | CInt1Flag | CInt2Flag | CInt3Flag | CInt4Flag
)

// Status is the unpacked form of the processor's flags register. The packed
// form is only ever seen through the memory-mapped register surface; the
// core itself works with the named fields.
type Status struct {
	Zero     bool
	Carry    bool
	Negative bool

	// IMask is the global interrupt disable. while set, bank selection is
	// forced to bank zero regardless of the RegPage field
	IMask bool

	// per-level interrupt enable. level 5 is meaningful on the DSP only
	EnableInt [6]bool

	// which register bank is selected (subject to IMask)
	RegPage bool

	// latched but otherwise unused by the emulation
	DMA bool
}

// Value packs the status fields into the flags register wire format.
func (st Status) Value() uint32 {
	var v uint32

	if st.Zero {
		v |= ZFlag
	}
	if st.Carry {
		v |= CFlag
	}
	if st.Negative {
		v |= NFlag
	}
	if st.IMask {
		v |= IFlag
	}
	for i := range st.EnableInt {
		if st.EnableInt[i] {
			if i < 5 {
				v |= EInt0Flag << i
			} else {
				v |= EInt5Flag
			}
		}
	}
	if st.RegPage {
		v |= RPageFlag
	}
	if st.DMA {
		v |= DMAFlag
	}

	return v
}

// Load unpacks the flags register wire format into the status fields.
func (st *Status) Load(v uint32) {
	st.Zero = v&ZFlag == ZFlag
	st.Carry = v&CFlag == CFlag
	st.Negative = v&NFlag == NFlag
	st.IMask = v&IFlag == IFlag
	for i := 0; i < 5; i++ {
		st.EnableInt[i] = v&(EInt0Flag<<i) != 0
	}
	st.EnableInt[5] = v&EInt5Flag == EInt5Flag
	st.RegPage = v&RPageFlag == RPageFlag
	st.DMA = v&DMAFlag == DMAFlag
}

// conditionBits returns the three bits used to index the condition table.
func (st Status) conditionBits() uint32 {
	return st.Value() & 7
}

// interruptMask gathers the per-level enable bits into the low six bits.
func (st Status) interruptMask() uint32 {
	var m uint32
	for i := range st.EnableInt {
		if st.EnableInt[i] {
			m |= 1 << i
		}
	}
	return m
}

// String returns the status register as a labelled bit pattern.
func (st Status) String() string {
	s := strings.Builder{}

	if st.DMA {
		s.WriteRune('D')
	} else {
		s.WriteRune('.')
	}
	if st.RegPage {
		s.WriteRune('A')
	} else {
		s.WriteRune('.')
	}
	for i := len(st.EnableInt) - 1; i >= 0; i-- {
		if st.EnableInt[i] {
			s.WriteRune(rune('0' + i))
		} else {
			s.WriteRune('.')
		}
	}
	if st.IMask {
		s.WriteRune('I')
	} else {
		s.WriteRune('.')
	}
	if st.Negative {
		s.WriteRune('N')
	} else {
		s.WriteRune('.')
	}
	if st.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('.')
	}
	if st.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('.')
	}

	return s.String()
}

// flags helpers used by the instruction implementations. the carry is
// always computed from the arithmetic operands rather than the truncated
// result, modelling carry-out of the 33rd bit.

func (st *Status) setZN(res uint32) {
	st.Zero = res == 0
	st.Negative = res&0x80000000 != 0
}

func (st *Status) setZNCAdd(a, b, res uint32) {
	st.setZN(res)
	st.Carry = b > ^a
}

func (st *Status) setZNCSub(a, b, res uint32) {
	st.setZN(res)
	st.Carry = b > a
}
