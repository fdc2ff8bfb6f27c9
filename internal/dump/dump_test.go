package dump

import (
	"bytes"
	"testing"

	"github.com/AlexxIT/bitreader/pkg/bits"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	ops, err := parseScript([]string{"f:8", "skip:3", "bit", "uvlc", "su:4", "ns:5", "le:4", "pos"})
	require.Nil(t, err)
	require.Len(t, ops, 8)
	require.Equal(t, op{tok: "f:8", name: "f", n: 8}, ops[0])
	require.Equal(t, op{tok: "bit", name: "bit"}, ops[2])

	for _, script := range [][]string{
		{"f"},        // missing argument
		{"f:"},       // empty argument
		{"f:x"},      // not a number
		{"f:-1"},     // negative
		{"f:33"},     // over the 32-bit accumulator
		{"su:0"},     // sign bit needs at least one bit
		{"ns:0"},     // undefined alphabet
		{"le:5"},     // over the 32-bit accumulator
		{"uvlc:1"},   // takes no argument
		{"pos:0"},    // takes no argument
		{"golomb:1"}, // unknown
	} {
		_, err = parseScript(script)
		require.NotNil(t, err, "script=%v", script)
	}
}

func TestRun(t *testing.T) {
	ops, err := parseScript([]string{"f:8", "uvlc", "su:4", "skip:1", "le:2"})
	require.Nil(t, err)

	src := []byte{0x42, 0x28, 0xF0, 0x01, 0x02, 0x03}
	r := bits.NewReader(bytes.NewReader(src))
	require.Nil(t, run(r, ops))
	require.Equal(t, uint64(34), r.Pos())
}

func TestRunExhausted(t *testing.T) {
	ops, err := parseScript([]string{"f:16", "f:16"})
	require.Nil(t, err)

	// second field hits end of stream, run still finishes clean
	r := bits.NewReader(bytes.NewReader([]byte{0x01, 0x02, 0x03}))
	require.Nil(t, run(r, ops))
	require.Equal(t, uint64(24), r.Pos())
}

func TestRunArgs(t *testing.T) {
	require.NotNil(t, Run(nil))
	require.NotNil(t, Run([]string{"-"}))                 // no script
	require.NotNil(t, Run([]string{"-", "bad"}))          // bad script before reading
	require.NotNil(t, Run([]string{"/no/such/file", "bit"}))
}