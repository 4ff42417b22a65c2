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

package performance

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/test"
)

func TestParseProfile(t *testing.T) {
	p, err := ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileNone)

	p, err = ParseProfile("cpu, mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileCPU|ProfileMem)

	p, err = ParseProfile("ALL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p&ProfileTrace, ProfileTrace)

	_, err = ParseProfile("cpu,disk")
	test.ExpectSuccess(t, curated.Is(err, PerformanceError))
}

func TestCalcFPS(t *testing.T) {
	fps, accuracy := CalcFPS(120, 2.0)
	test.ExpectEquality(t, fps, 60.0)
	test.ExpectApproximate(t, accuracy, 100.45, 0.01)

	fps, _ = CalcFPS(120, 0)
	test.ExpectEquality(t, fps, 0.0)
}

func TestRunProfiler(t *testing.T) {
	t.Chdir(t.TempDir())

	var ran bool
	err := RunProfiler(ProfileCPU|ProfileMem, "test", func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	_, err = os.Stat("test_cpu.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat("test_mem.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat("test_trace.profile")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	t.Chdir(t.TempDir())
	leadtime = 10 * time.Millisecond

	// JR -2 at the entry point
	data := make([]uint8, 0x8000)
	copy(data[0x100:], []uint8{0x18, 0xfe})
	cartload := cartridgeloader.Loader{Filename: "loop.gb", Data: data}

	var w strings.Builder
	err := Check(&w, ProfileNone, cartload, true, "50ms")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(w.String(), " fps ("))
	test.ExpectSuccess(t, strings.Contains(w.String(), "frames in 0.05 seconds"))

	err = Check(&w, ProfileNone, cartload, true, "forever")
	test.ExpectSuccess(t, curated.Is(err, PerformanceError))
}
