package serialization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string         `json:"name" msgpack:"name"`
	Count int            `json:"count" msgpack:"count"`
	Tags  []string       `json:"tags" msgpack:"tags"`
	Meta  map[string]any `json:"meta" msgpack:"meta"`
}

func samplePayload() payload {
	return payload{
		Name:  "pipeline snapshot",
		Count: 42,
		Tags:  []string{"a", "b", "a"},
		Meta:  map[string]any{"text": "{{x}}"},
	}
}

func TestSerializer_RoundTrip(t *testing.T) {
	codecs := []Codec{&JSONCodec{}, &MsgpackCodec{}}
	compressions := []CompressionType{CompressionNone, CompressionGzip, CompressionZstd}

	for _, codec := range codecs {
		for _, comp := range compressions {
			t.Run(codec.Name()+"/"+string(comp), func(t *testing.T) {
				s := New(Config{Codec: codec, Compression: comp})

				blob, err := s.Serialize(samplePayload())
				require.NoError(t, err)

				var out payload
				require.NoError(t, s.Deserialize(blob, &out))
				assert.Equal(t, samplePayload().Name, out.Name)
				assert.Equal(t, samplePayload().Count, out.Count)
				assert.Equal(t, samplePayload().Tags, out.Tags)
			})
		}
	}
}

func TestSerializer_DefaultsToMsgpack(t *testing.T) {
	s := New(Config{})
	blob, err := s.Serialize(samplePayload())
	require.NoError(t, err)

	var out payload
	require.NoError(t, s.Deserialize(blob, &out))
	assert.Equal(t, "pipeline snapshot", out.Name)
}

func TestSerializer_Encrypted(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	s := New(Config{Compression: CompressionZstd, EncryptKey: key})

	blob, err := s.Serialize(samplePayload())
	require.NoError(t, err)

	var out payload
	require.NoError(t, s.Deserialize(blob, &out))
	assert.Equal(t, 42, out.Count)

	// A different key must not decrypt.
	wrong := make([]byte, 32)
	bad := New(Config{Compression: CompressionZstd, EncryptKey: wrong})
	assert.Error(t, bad.Deserialize(blob, &out))
}

func TestSerializer_CorruptBlob(t *testing.T) {
	s := New(Config{Compression: CompressionGzip})
	var out payload
	assert.Error(t, s.Deserialize([]byte("not gzip at all"), &out))
}
