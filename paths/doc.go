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

// Package paths contains functions to prepare paths for resources used by the
// emulator: the preferences file, save files for battery-backed cartridges
// and crash dumps.
//
// The base resource directory depends on how the program is built. For
// development builds it is the .gopherboy directory in the current working
// directory. For release builds (the "release" build tag) it is the gopherboy
// directory in the user's configuration directory, as reported by
// os.UserConfigDir().
package paths
