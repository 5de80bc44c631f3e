// This file is part of GopherJaguar.
//
// GopherJaguar is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherJaguar is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherJaguar.  If not, see <https://www.gnu.org/licenses/>.

package curated_test

import (
	"testing"

	"github.com/jetsetilly/gopherjaguar/curated"
	"github.com/jetsetilly/gopherjaguar/test"
)

const testPattern = "test: %v"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectedSuccess(t, curated.IsAny(e))
	test.ExpectedSuccess(t, curated.Is(e, testPattern))
	test.ExpectedFailure(t, curated.Is(e, "some other pattern: %v"))
}

func TestHas(t *testing.T) {
	inner := curated.Errorf(testPattern, "foo")
	outer := curated.Errorf("monitor: %v", inner)

	test.ExpectedSuccess(t, curated.Has(outer, testPattern))
	test.ExpectedSuccess(t, curated.Has(outer, "monitor: %v"))
	test.ExpectedFailure(t, curated.Is(outer, testPattern))
}

func TestDeduplication(t *testing.T) {
	inner := curated.Errorf("wavwriter: %v", "bad parameters")
	outer := curated.Errorf("wavwriter: %v", inner)

	// the duplicate "wavwriter" part should have been removed
	test.Equate(t, outer.Error(), "wavwriter: bad parameters")
}
