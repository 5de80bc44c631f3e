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

// Package wavwriter allows writing of the DSP's DAC output to disk as a
// WAV file. Note that audio data is buffered in memory in its entirety,
// and written to disk on program end. It is therefore probably only
// suitable for testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopherjaguar/curated"
	"github.com/jetsetilly/gopherjaguar/logger"
)

// SampleFreq is the rate samples are assumed to arrive at. The real DAC
// rate is programmable through Jerry's clock dividers; this is the value
// most software settles on.
const SampleFreq = 22050

// WavWriter implements the memory.AudioMixer interface.
type WavWriter struct {
	filename string
	samples  []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	aw := &WavWriter{
		filename: filename,
		samples:  make([]int, 0, SampleFreq),
	}

	return aw, nil
}

// SetAudio implements the memory.AudioMixer interface.
func (aw *WavWriter) SetAudio(left int16, right int16) error {
	aw.samples = append(aw.samples, int(left), int(right))
	return nil
}

// EndMixing implements the memory.AudioMixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, SampleFreq, 16, 2, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 2,
			SampleRate:  SampleFreq,
		},
		Data:           aw.samples,
		SourceBitDepth: 16,
	}

	logger.Logf("wavwriter", "writing audio to %s", aw.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
