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

package cartridge

import (
	"os"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gopherboy/logger"
	"github.com/jetsetilly/gopherboy/paths"
)

const savePath = "saves"

func (cart *Cartridge) saveFilename() (string, error) {
	return paths.ResourcePath(savePath, cart.Name+".sav")
}

// LoadSave reads the external RAM of a battery-backed cartridge from disk.
// The RAM is cleared if the save file is missing or is of the wrong size.
func (cart *Cartridge) LoadSave() {
	r, ok := cart.mapper.(mapper.CartRAM)
	if !ok || !cart.battery {
		return
	}

	ram := r.RAM()
	if ram == nil {
		return
	}
	clear(ram)

	fn, err := cart.saveFilename()
	if err != nil {
		logger.Logf(cart.instance, "cartridge", "could not load save file: %v", err)
		return
	}

	data, err := os.ReadFile(fn)
	if err != nil {
		logger.Logf(cart.instance, "cartridge", "could not load save file: %v", err)
		return
	}

	if len(data) != len(ram) {
		logger.Logf(cart.instance, "cartridge", "save file is of incorrect length. %d should be %d", len(data), len(ram))
		return
	}

	copy(ram, data)

	logger.Logf(cart.instance, "cartridge", "save file loaded from %s", fn)
}

// Save writes the external RAM of a battery-backed cartridge to disk. It does
// nothing for cartridges without a battery.
func (cart *Cartridge) Save() error {
	r, ok := cart.mapper.(mapper.CartRAM)
	if !ok || !cart.battery || r.RAM() == nil {
		return nil
	}

	fn, err := cart.saveFilename()
	if err != nil {
		return curated.Errorf(SaveError, err)
	}

	err = os.WriteFile(fn, r.RAM(), 0600)
	if err != nil {
		return curated.Errorf(SaveError, err)
	}

	logger.Logf(cart.instance, "cartridge", "save file written to %s", fn)

	return nil
}
