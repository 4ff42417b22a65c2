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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherboy/test"
)

const validMemMap = `0000 -> 7fff	ROM
8000 -> 9fff	VRAM
a000 -> bfff	External RAM
c000 -> dfff	WRAM
e000 -> fdff	Echo
fe00 -> fe9f	OAM
fea0 -> feff	Unusable
ff00 -> ff7f	IO
ff80 -> fffe	HRAM
ffff -> ffff	IE
`

func TestMemory(t *testing.T) {
	test.ExpectEquality(t, memorymap.Summary(), validMemMap)
}

func TestMapAddress(t *testing.T) {
	a, area := memorymap.MapAddress(0xc123)
	test.ExpectEquality(t, a, 0x0123)
	test.ExpectEquality(t, area, memorymap.WRAM)

	a, area = memorymap.MapAddress(0xfe10)
	test.ExpectEquality(t, a, 0x0010)
	test.ExpectEquality(t, area, memorymap.OAM)

	test.ExpectSuccess(t, memorymap.IsArea(0x4000, memorymap.ROM))
	test.ExpectSuccess(t, memorymap.IsArea(0xffff, memorymap.InterruptEnable))
	test.ExpectFailure(t, memorymap.IsArea(0xff80, memorymap.IO))
}
