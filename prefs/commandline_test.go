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

package prefs_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/prefs"
	"github.com/jetsetilly/gopherboy/test"
)

func TestCommandLineStackValues(t *testing.T) {
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("tv.fpscap::false")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "tv.fpscap::false")

	// whitespace around keys and values is ignored
	prefs.PushCommandLineStack("   tv.fpscap:: false ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "tv.fpscap::false")

	// unused entries are returned sorted by key
	prefs.PushCommandLineStack("tv.scale::2; cpu.strictdecode::true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cpu.strictdecode::true; tv.scale::2")

	// malformed entries are dropped
	prefs.PushCommandLineStack("tv.scale")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	prefs.PushCommandLineStack("tv.scale;tv.fpscap::true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "tv.fpscap::true")

	// consumed entries are not returned by the pop
	prefs.PushCommandLineStack("tv.scale::4;tv.fpscap::true")
	ok, v := prefs.GetCommandLinePref("tv.scale")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "4")
	ok, _ = prefs.GetCommandLinePref("tv.scale")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "tv.fpscap::true")
}

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("tv.scale::2")
	prefs.PushCommandLineStack("tv.scale::5")

	// only the most recent group is consulted
	ok, v := prefs.GetCommandLinePref("tv.scale")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "5")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "tv.scale::2")
}

func TestCommandLineOverridesDisk(t *testing.T) {
	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	var scale prefs.Int
	test.DemandSuccess(t, scale.Set(3))
	test.DemandSuccess(t, dsk.Add("tv.scale", &scale))

	prefs.PushCommandLineStack("tv.scale::6")
	err = dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))
	test.ExpectEquality(t, scale.Get().(int), 6)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}
