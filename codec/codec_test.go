package codec

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ygrebnov/selector/errors"
)

// ---- Types under test ----

type profile struct {
	Name    string   `json:"name" yaml:"name"`
	Retries int      `json:"retries" yaml:"retries"`
	Tags    []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Clone deep-copies the reference field so reconstructed values are isolated
// from the prototype.
func (p profile) Clone() profile {
	if p.Tags != nil {
		tags := make([]string, len(p.Tags))
		copy(tags, p.Tags)
		p.Tags = tags
	}
	return p
}

// plain has no Clone method; Parse falls back to a value copy.
type plain struct {
	Name    string `json:"name" yaml:"name"`
	Retries int    `json:"retries" yaml:"retries"`
}

// ---- Tests ----

func TestStringify(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		s, err := Stringify(JSON(), profile{Name: "alice", Retries: 2})
		require.NoError(t, err)
		assert.Equal(t, `{"name":"alice","retries":2}`, s)
	})

	t.Run("json with indent", func(t *testing.T) {
		t.Parallel()
		s, err := Stringify(JSON(WithIndent("  ")), plain{Name: "alice", Retries: 2})
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"name\": \"alice\",\n  \"retries\": 2\n}", s)
	})

	t.Run("error: unsupported value", func(t *testing.T) {
		t.Parallel()
		_, err := Stringify(JSON(), make(chan int))
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, errors.ErrEncode), "expected ErrEncode, got %v", err)
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("payload overrides prototype fields", func(t *testing.T) {
		t.Parallel()
		proto := profile{Name: "anon", Retries: 3}
		got, err := Parse(JSON(), `{"name":"bob"}`, proto)
		require.NoError(t, err)
		assert.Equal(t, "bob", got.Name)
		assert.Equal(t, 3, got.Retries) // absent from payload, kept from prototype
	})

	t.Run("cloner isolates reconstructed value", func(t *testing.T) {
		t.Parallel()
		proto := profile{Name: "anon", Tags: []string{"a", "b"}}
		got, err := Parse(JSON(), `{"name":"bob"}`, proto)
		require.NoError(t, err)
		require.Equal(t, []string{"a", "b"}, got.Tags)
		got.Tags[0] = "z"
		assert.Equal(t, "a", proto.Tags[0])
	})

	t.Run("value copy without cloner", func(t *testing.T) {
		t.Parallel()
		got, err := Parse(JSON(), `{"retries":7}`, plain{Name: "anon", Retries: 3})
		require.NoError(t, err)
		assert.Equal(t, plain{Name: "anon", Retries: 7}, got)
	})

	t.Run("yaml payload", func(t *testing.T) {
		t.Parallel()
		got, err := Parse(YAML(), "name: carol\n", plain{Name: "anon", Retries: 3})
		require.NoError(t, err)
		assert.Equal(t, plain{Name: "carol", Retries: 3}, got)
	})

	t.Run("error: malformed payload returns zero value", func(t *testing.T) {
		t.Parallel()
		got, err := Parse(JSON(), `{nope`, profile{Name: "anon"})
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, errors.ErrDecode), "expected ErrDecode, got %v", err)
		assert.Equal(t, profile{}, got)
	})
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	original := profile{Name: "alice", Retries: 2, Tags: []string{"x"}}
	for _, c := range []Codec{JSON(), YAML()} {
		c := c
		t.Run(c.ContentType(), func(t *testing.T) {
			t.Parallel()
			s, err := Stringify(c, original)
			require.NoError(t, err)
			got, err := Parse(c, s, profile{})
			require.NoError(t, err)
			assert.Equal(t, original, got)
		})
	}
}
