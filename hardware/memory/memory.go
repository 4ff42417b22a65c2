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

package memory

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/instance"
	"github.com/jetsetilly/gopherboy/hardware/interrupt"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherboy/logger"
)

// Joypad is the interface to the buttons of the console. Both functions return
// four bits where a zero bit indicates a pressed button.
type Joypad interface {
	DPad() uint8
	Buttons() uint8
}

// Sender is the outgoing side of the serial link.
type Sender interface {
	Send(data uint8)
}

// number of bytes copied by an OAM DMA transfer
const dmaLength = 160

// Memory is the monolithic representation of the memory in the console. The
// CPU accesses memory through the Read() and Write() functions. Other chips
// use ChipRead() and ChipWrite().
type Memory struct {
	instance *instance.Instance

	raw [int(memorymap.Memtop) + 1]uint8

	Cart *cartridge.Cartridge

	joypad Joypad
	link   Sender
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The instance argument can be nil.
func NewMemory(instance *instance.Instance) *Memory {
	mem := &Memory{
		instance: instance,
		Cart:     cartridge.NewCartridge(instance),
	}
	mem.Reset()
	return mem
}

func (mem *Memory) String() string {
	return fmt.Sprintf("IE=%02x IF=%02x LCDC=%02x STAT=%02x LY=%02x",
		mem.raw[addresses.IE], mem.raw[addresses.IF],
		mem.raw[addresses.LCDC], mem.raw[addresses.STAT], mem.raw[addresses.LY])
}

// AttachJoypad to the P1 register. A nil value disconnects the joypad.
func (mem *Memory) AttachJoypad(joypad Joypad) {
	mem.joypad = joypad
}

// AttachLink to the serial registers. A nil value disconnects the link.
func (mem *Memory) AttachLink(link Sender) {
	mem.link = link
}

// Reset contents of memory to the state after the boot ROM has finished.
// Work RAM and video RAM are randomised if the preference is set.
func (mem *Memory) Reset() {
	clear(mem.raw[:])

	if mem.instance != nil && mem.instance.Prefs.RandomState.Get().(bool) {
		for a := memorymap.OriginVRAM; a <= memorymap.MemtopVRAM; a++ {
			mem.raw[a] = uint8(mem.instance.Prefs.RandSrc.IntN(0x100))
		}
		for a := memorymap.OriginWRAM; a <= memorymap.MemtopWRAM; a++ {
			mem.raw[a] = uint8(mem.instance.Prefs.RandSrc.IntN(0x100))
		}
	}

	mem.raw[addresses.P1] = 0x30
	mem.raw[addresses.LCDC] = 0x91
	mem.raw[addresses.BGP] = 0xfc
	mem.raw[addresses.OBP0] = 0xff
	mem.raw[addresses.OBP1] = 0xff

	mem.Cart.Reset()
}

// Read is an implementation of cpubus.Memory.
func (mem *Memory) Read(address uint16) uint8 {
	switch {
	case address <= memorymap.MemtopROM:
		return mem.Cart.ReadROM(address)
	case memorymap.IsArea(address, memorymap.ExternalRAM):
		return mem.Cart.ReadRAM(address)
	case address == addresses.P1:
		return mem.readJoypad()
	case address == addresses.IF:
		return mem.raw[address] | ^uint8(interrupt.Mask)
	}
	return mem.raw[address]
}

// Write is an implementation of cpubus.Memory.
func (mem *Memory) Write(address uint16, data uint8) {
	switch {
	case address <= memorymap.MemtopROM:
		mem.Cart.WriteROM(address, data)
	case memorymap.IsArea(address, memorymap.ExternalRAM):
		mem.Cart.WriteRAM(address, data)
	case address == addresses.P1:
		// only the selection bits are writable
		mem.raw[address] = data & 0x30
	case address == addresses.SC:
		mem.raw[address] = data
		if data&0x81 == 0x81 && mem.link != nil {
			mem.link.Send(mem.raw[addresses.SB])
		}
	case address == addresses.DIV:
		mem.raw[address] = 0
	case address == addresses.IF:
		mem.raw[address] = data & interrupt.Mask
	case address == addresses.LY:
		// read-only
	case address == addresses.STAT:
		// coincidence and mode bits are read-only
		mem.raw[address] = data&0xf8 | mem.raw[address]&0x07
	case address == addresses.DMA:
		mem.raw[address] = data
		mem.dma(data)
	default:
		mem.raw[address] = data
	}
}

// copy 160 bytes from the page indicated by the data into OAM
func (mem *Memory) dma(page uint8) {
	src := uint16(page) << 8
	for i := range uint16(dmaLength) {
		mem.raw[memorymap.OriginOAM+i] = mem.Read(src + i)
	}
}

func (mem *Memory) readJoypad() uint8 {
	p1 := mem.raw[addresses.P1]

	dpad := uint8(0x0f)
	buttons := uint8(0x0f)
	if mem.joypad != nil {
		dpad = mem.joypad.DPad() & 0x0f
		buttons = mem.joypad.Buttons() & 0x0f
	}

	switch p1 & 0x30 {
	case 0x30:
		return 0x3f
	case 0x20:
		return p1 | dpad
	case 0x10:
		return p1 | buttons
	}
	return p1 | (dpad & buttons)
}

// SerialReceive is called by the serial link when a byte arrives from the
// other side of the link. The byte is ignored unless a transfer has been
// started by writing to the SC register.
func (mem *Memory) SerialReceive(data uint8) {
	if mem.raw[addresses.SC]&0x80 == 0 {
		logger.Logf(mem.instance, "memory", "serial byte %#02x ignored. no transfer in progress", data)
		return
	}
	mem.raw[addresses.SB] = data
	mem.raw[addresses.SC] &^= 0x80
	mem.RequestInterrupt(interrupt.Serial)
}

// ChipRead is an implementation of chipbus.Memory.
func (mem *Memory) ChipRead(address uint16) uint8 {
	return mem.raw[address]
}

// ChipWrite is an implementation of chipbus.Memory.
func (mem *Memory) ChipWrite(address uint16, data uint8) {
	mem.raw[address] = data
}

// RequestInterrupt is an implementation of chipbus.Memory.
func (mem *Memory) RequestInterrupt(source interrupt.Source) {
	mem.raw[addresses.IF] |= source.Bit()
}

// ClearInterrupt resets the bit for the source in the IF register.
func (mem *Memory) ClearInterrupt(source interrupt.Source) {
	mem.raw[addresses.IF] &^= source.Bit()
}
