package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]struct {
		in   string
		want interface{}
	}{
		"lower":   {in: "debug", want: LDEBUG},
		"upper":   {in: "WARNING", want: LWARNING},
		"spaces":  {in: " info ", want: LINFO},
		"alias":   {in: "warn", want: LWARNING},
		"debug3":  {in: "Debug3", want: LDEBUG3},
		"unknown": {in: "verbose", want: LUNKNOWN},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			lvl, err := ParseLevel(tc.in)
			assert.Equal(t, tc.want, lvl)
			if tc.want == LUNKNOWN {
				assert.ErrorIs(t, err, ErrUnknownLevel)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestModuleLogger(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "", 0)
	defer Default()

	m := NewModuleLogger("test")

	t.Run("Prefix", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, SetLevel(LDEBUG))
		m.Debugf("matched %d atoms", 3)
		assert.Contains(t, buf.String(), "[test] matched 3 atoms")
	})

	t.Run("LevelPropagates", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, SetLevel(LWARNING))
		assert.Equal(t, LWARNING, m.Level())

		m.Infof("hidden")
		assert.NotContains(t, buf.String(), "hidden")

		m.Errorf("shown")
		assert.Contains(t, buf.String(), "[test] shown")
	})

	t.Run("OwnLevel", func(t *testing.T) {
		buf.Reset()
		m.SetLevel(LERROR)
		m.Warningf("quiet")
		assert.NotContains(t, buf.String(), "quiet")
		assert.Equal(t, LWARNING, Level())
	})

	t.Run("UnknownLevel", func(t *testing.T) {
		assert.ErrorIs(t, SetLevel(LUNKNOWN), ErrUnknownLevel)
	})

	require.NoError(t, SetLevel(LINFO))
}
