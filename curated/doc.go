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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with Errorf(), which takes a formatting pattern
// and placeholder values in the same way as fmt.Errorf().
//
// The pattern is what distinguishes one curated error from another. Patterns
// that callers need to test for should be declared as exported constants next
// to the code that returns them. For example:
//
//	const UnsupportedType = "cartridge: unsupported cartridge type (%#02x)"
//
//	err := curated.Errorf(UnsupportedType, 0x22)
//	if curated.Is(err, UnsupportedType) {
//		...
//	}
//
// Has() is similar to Is() but searches the whole chain of wrapped curated
// errors. IsAny() answers whether the error was created by Errorf() at all,
// which is a convenient way of separating expected errors from unexpected
// ones.
//
// The Error() implementation normalises the message so that duplicate
// adjacent parts are removed. This means a function can wrap an error with
// its own prefix without worrying whether the callee has already used the
// same prefix:
//
//	cartridge: cartridge: rom too large
//
// is printed as:
//
//	cartridge: rom too large
//
// Curated errors also implement Unwrap(), returning any error values given to
// Errorf(). This means errors.Is() from the standard library can still find
// an os.ErrNotExist that has been wrapped by a curated error.
package curated
