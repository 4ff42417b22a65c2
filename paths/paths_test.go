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

package paths_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/gopherboy/paths"
	"github.com/jetsetilly/gopherboy/test"
)

func TestPaths(t *testing.T) {
	// resource directories are created relative to the working directory
	t.Chdir(t.TempDir())

	pth, err := paths.ResourcePath("saves", "tetris.sav")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopherboy/saves/tetris.sav")

	info, err := os.Stat(".gopherboy/saves")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())

	pth, err = paths.ResourcePath("", "preferences")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopherboy/preferences")

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopherboy")
}
