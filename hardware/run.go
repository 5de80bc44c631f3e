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

package hardware

// the number of cycles each processor runs before the other gets a turn.
// small enough that the processors stay roughly in step, large enough
// that the dispatch overhead doesn't dominate.
const runSlice = 64

// Step runs each running processor for a single instruction.
func (jag *Jaguar) Step() {
	if jag.GPU.Running() {
		jag.GPU.Run(1)
	}
	if jag.DSP.Running() {
		jag.DSP.Run(1)
	}
}

// Run interleaves the two processors until both have halted or the
// continueCheck function returns false. A nil continueCheck runs until
// both processors halt.
func (jag *Jaguar) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		gpuConsumed := 0
		dspConsumed := 0

		if jag.GPU.Running() {
			gpuConsumed = jag.GPU.Run(runSlice)
		}
		if jag.DSP.Running() {
			dspConsumed = jag.DSP.Run(runSlice)
		}

		if gpuConsumed == 0 && dspConsumed == 0 {
			return nil
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
