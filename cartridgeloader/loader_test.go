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

package cartridgeloader_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/test"
)

func TestName(t *testing.T) {
	cl := cartridgeloader.NewLoader("roms/tetris.gb")
	test.ExpectEquality(t, cl.Name(), "tetris")

	cl = cartridgeloader.NewLoader("cpu_instrs")
	test.ExpectEquality(t, cl.Name(), "cpu_instrs")
}

func TestLoadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.gb")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0x00, 0x01, 0x02}, 0600))

	cl := cartridgeloader.NewLoader(fn)
	test.ExpectFailure(t, cl.HasLoaded())
	test.DemandSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.HasLoaded())
	test.ExpectEquality(t, len(cl.Data), 3)
	test.ExpectEquality(t, cl.Hash, "0c7a623fd2bbc05b06423be359e4021d36e721ad")

	// wrong hash
	cl = cartridgeloader.NewLoader(fn)
	cl.Hash = "0000"
	test.ExpectFailure(t, cl.Load())

	// missing file
	cl = cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.gb"))
	test.ExpectFailure(t, cl.Load())
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/test.gb" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte{0xaa, 0xbb})
	}))
	defer srv.Close()

	cl := cartridgeloader.NewLoader(srv.URL + "/test.gb")
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, len(cl.Data), 2)
	test.ExpectEquality(t, cl.Name(), "test")

	cl = cartridgeloader.NewLoader(srv.URL + "/missing.gb")
	test.ExpectFailure(t, cl.Load())
}
