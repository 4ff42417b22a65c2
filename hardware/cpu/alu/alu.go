// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

// Package alu implements the arithmetic and logic operations of the SM83.
//
// Operations are plain functions on 8-bit or 16-bit values. The ALU type
// records whether the most recent operation overflowed (or borrowed, for
// subtractions). The Overflow field must be read immediately after the
// operation of interest because every operation overwrites it.
package alu

// ALU performs arithmetic and logic operations and records the overflow
// state of the most recent operation.
type ALU struct {
	// Overflow is the carry out (or borrow) of the most recent operation. For
	// rotations and shifts it is the bit that was shifted out.
	Overflow bool
}

// AddU8 returns a+b masked to eight bits.
func (a *ALU) AddU8(x, y uint8) uint8 {
	r := uint16(x) + uint16(y)
	a.Overflow = r > 0xff
	return uint8(r)
}

// AddU16 returns x+y masked to sixteen bits.
func (a *ALU) AddU16(x, y uint16) uint16 {
	r := uint32(x) + uint32(y)
	a.Overflow = r > 0xffff
	return uint16(r)
}

// SubU8 returns x-y masked to eight bits. Overflow is set if y is larger
// than x.
func (a *ALU) SubU8(x, y uint8) uint8 {
	a.Overflow = y > x
	return x - y
}

// SubU16 returns x-y masked to sixteen bits. Overflow is set if y is larger
// than x.
func (a *ALU) SubU16(x, y uint16) uint16 {
	a.Overflow = y > x
	return x - y
}

// AddSigned adds the two's complement value of e to x. Used for relative
// jumps and stack pointer offsets. Overflow is set on carry out of bit 15
// when e is positive or borrow when e is negative.
func (a *ALU) AddSigned(x uint16, e uint8) uint16 {
	r := int32(x) + int32(int8(e))
	a.Overflow = r < 0 || r > 0xffff
	return uint16(r)
}

func (a *ALU) And(x, y uint8) uint8 {
	a.Overflow = false
	return x & y
}

func (a *ALU) Or(x, y uint8) uint8 {
	a.Overflow = false
	return x | y
}

func (a *ALU) Xor(x, y uint8) uint8 {
	a.Overflow = false
	return x ^ y
}

func (a *ALU) Not(x uint8) uint8 {
	a.Overflow = false
	return ^x
}

// RotateLeft rotates x left through the carry. The incoming carry becomes
// bit 0 and bit 7 is shifted out into Overflow.
func (a *ALU) RotateLeft(x uint8, carry bool) uint8 {
	a.Overflow = x&0x80 == 0x80
	r := x << 1
	if carry {
		r |= 0x01
	}
	return r
}

// RotateRight rotates x right through the carry. The incoming carry becomes
// bit 7 and bit 0 is shifted out into Overflow.
func (a *ALU) RotateRight(x uint8, carry bool) uint8 {
	a.Overflow = x&0x01 == 0x01
	r := x >> 1
	if carry {
		r |= 0x80
	}
	return r
}

// RotateLeftCircular rotates x left with bit 7 moving to bit 0. Bit 7 is
// also copied to Overflow.
func (a *ALU) RotateLeftCircular(x uint8) uint8 {
	a.Overflow = x&0x80 == 0x80
	return x<<1 | x>>7
}

// RotateRightCircular rotates x right with bit 0 moving to bit 7. Bit 0 is
// also copied to Overflow.
func (a *ALU) RotateRightCircular(x uint8) uint8 {
	a.Overflow = x&0x01 == 0x01
	return x>>1 | x<<7
}

// ShiftLeftArithmetic shifts x left. Bit 0 is cleared.
func (a *ALU) ShiftLeftArithmetic(x uint8) uint8 {
	a.Overflow = x&0x80 == 0x80
	return x << 1
}

// ShiftRightArithmetic shifts x right. Bit 7 is unchanged.
func (a *ALU) ShiftRightArithmetic(x uint8) uint8 {
	a.Overflow = x&0x01 == 0x01
	return x>>1 | x&0x80
}

// ShiftRightLogical shifts x right. Bit 7 is cleared.
func (a *ALU) ShiftRightLogical(x uint8) uint8 {
	a.Overflow = x&0x01 == 0x01
	return x >> 1
}

// Swap exchanges the upper and lower nibbles of x.
func (a *ALU) Swap(x uint8) uint8 {
	a.Overflow = false
	return x<<4 | x>>4
}

// SetBit returns x with bit b set.
func (a *ALU) SetBit(x uint8, b uint8) uint8 {
	a.Overflow = false
	return x | (0x01 << (b & 0x07))
}

// ResetBit returns x with bit b cleared.
func (a *ALU) ResetBit(x uint8, b uint8) uint8 {
	a.Overflow = false
	return x &^ (0x01 << (b & 0x07))
}

// TestBit returns true if bit b of x is set.
func (a *ALU) TestBit(x uint8, b uint8) bool {
	a.Overflow = false
	return x&(0x01<<(b&0x07)) != 0
}

// CarryAt returns true if adding x and y would carry out of the numbered
// bit. Used for the half-carry flag: bit 3 for 8-bit operations and bit 11
// for 16-bit operations. The ALU's Overflow field is not affected.
func CarryAt(x, y uint16, bit uint) bool {
	mask := uint32(1)<<(bit+1) - 1
	return uint32(x)&mask+uint32(y)&mask > mask
}

// BorrowAt returns true if subtracting y from x would borrow from the bit
// above the numbered bit. The ALU's Overflow field is not affected.
func BorrowAt(x, y uint16, bit uint) bool {
	mask := uint16(1)<<(bit+1) - 1
	return x&mask < y&mask
}
