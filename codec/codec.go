// Package codec encodes the metadata header of a tape.
//
// Encoded tapes store the codec name next to the header, so a tape written
// with one codec can always be decoded later by looking the codec up by name.
// Header decoding is strict: unknown fields are rejected, since a field the
// reader does not understand means the tape came from a newer writer.
package codec

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknown is returned by Lookup for a name that is not built in.
var ErrUnknown = errors.New("unknown codec")

// Codec encodes and decodes tape headers.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// builtins is ordered by preference; the first entry is Default.
var builtins = []Codec{GoJSON{}, JSON{}}

// Default is the codec used for newly encoded tapes.
var Default = builtins[0]

// Lookup returns the built-in codec with the given stable name.
func Lookup(name string) (Codec, error) {
	i := slices.IndexFunc(builtins, func(c Codec) bool { return c.Name() == name })
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return builtins[i], nil
}

// Names returns the stable names of all built-in codecs.
func Names() []string {
	names := make([]string, len(builtins))
	for i, c := range builtins {
		names[i] = c.Name()
	}
	return names
}
