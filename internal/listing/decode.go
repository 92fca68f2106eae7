package listing

import "encoding/json"

// The docker CLI occasionally mixes warnings or blank lines into stdout.
// Anything that does not parse as a JSON object is dropped; an entry only
// ever comes from a successfully decoded line.

func decode[T any](line string) (T, bool) {
	var v T
	if err := json.Unmarshal([]byte(line), &v); err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

func DecodeContainer(line string) (Container, bool) {
	return decode[Container](line)
}

func DecodeVolume(line string) (Volume, bool) {
	return decode[Volume](line)
}

func DecodeImage(line string) (Image, bool) {
	return decode[Image](line)
}
