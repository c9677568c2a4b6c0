package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type header struct {
	Algorithm string `json:"algorithm"`
	Seed      uint64 `json:"seed"`
	Count     int    `json:"count"`
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		c, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, c.Name())
	}

	_, err := Lookup("msgpack")
	assert.ErrorIs(t, err, ErrUnknown)

	assert.Equal(t, []string{"go-json", "json"}, Names())
	assert.Equal(t, "go-json", Default.Name())
}

func TestCodecsAgree(t *testing.T) {
	in := header{Algorithm: "pcg32", Seed: 1<<63 + 1, Count: 3}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(in)
			require.NoError(t, err)

			for _, d := range []Codec{JSON{}, GoJSON{}} {
				var out header
				require.NoError(t, d.Unmarshal(data, &out))
				assert.Equal(t, in, out)
			}
		})
	}
}

func TestUnmarshalRejectsUnknownFields(t *testing.T) {
	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			var out header
			err := c.Unmarshal([]byte(`{"count":1,"shiny":true}`), &out)
			assert.Error(t, err)
		})
	}
}

func TestMarshalError(t *testing.T) {
	for _, c := range []Codec{JSON{}, GoJSON{}} {
		_, err := c.Marshal(make(chan int))
		assert.Error(t, err, c.Name())
	}
}
