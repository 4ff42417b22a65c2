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

package preferences

import (
	"math/rand/v2"
	"time"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/paths"
	"github.com/jetsetilly/gopherboy/prefs"
)

// Preferences defines and collates all the preference values used by the
// console and the television.
type Preferences struct {
	dsk *prefs.Disk

	// undefined opcodes halt the emulation with an error rather than being
	// treated as a no-op
	StrictDecode prefs.Bool

	// initialise work RAM and video RAM to an unknown state on power-up
	RandomState prefs.Bool

	// limit the television to the refresh rate of the LCD
	FPSCap prefs.Bool

	// integer scaling of the screen in windowed frontends
	Scale prefs.Int

	// random values generated in the hardware package should use the following
	// number source
	RandSrc *rand.Rand

	// the number used to seed RandSrc
	RandSeed uint64
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	// initialise random number generator
	p.Reseed(0)

	// setup preferences and load from disk
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.strictdecode", &p.StrictDecode)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("ram.randomstate", &p.RandomState)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("tv.fpscap", &p.FPSCap)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("tv.scale", &p.Scale)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values. Unlike
// Reset() the values are not taken from the prefs.Disk instance.
func (p *Preferences) SetDefaults() {
	p.StrictDecode.Set(false)
	p.RandomState.Set(false)
	p.FPSCap.Set(true)
	p.Scale.Set(3)
}

// Reseed initialises the random number generator. Use a seed value of 0 to
// initialise with the current time.
func (p *Preferences) Reseed(seed uint64) {
	if seed == 0 {
		p.RandSeed = uint64(time.Now().UnixNano())
	} else {
		p.RandSeed = seed
	}
	p.RandSrc = rand.New(rand.NewPCG(p.RandSeed, p.RandSeed))
}

// Reset all preferences to the default values.
func (p *Preferences) Reset() error {
	return p.dsk.Reset()
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
