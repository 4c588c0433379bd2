package vertex_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rectilinear/vertex"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want vertex.Vertex
		err  error
	}{
		{"Plain", "7,1", vertex.Vertex{X: 7, Y: 1}, nil},
		{"Spaces", "  11 , 7 ", vertex.Vertex{X: 11, Y: 7}, nil},
		{"Negative", "-3,-9", vertex.Vertex{X: -3, Y: -9}, nil},
		{"Large", "9223372036854775807,-9223372036854775808", vertex.Vertex{X: 1<<63 - 1, Y: -1 << 63}, nil},
		{"OneField", "7", vertex.Vertex{}, vertex.ErrMalformedRecord},
		{"ThreeFields", "1,2,3", vertex.Vertex{}, vertex.ErrMalformedRecord},
		{"BadX", "a,2", vertex.Vertex{}, vertex.ErrInvalidCoordinate},
		{"BadY", "1,", vertex.Vertex{}, vertex.ErrInvalidCoordinate},
		{"Overflow", "9223372036854775808,0", vertex.Vertex{}, vertex.ErrInvalidCoordinate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := vertex.Parse(tc.in)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestVertex_String(t *testing.T) {
	v := vertex.Vertex{X: -4, Y: 12}
	assert.Equal(t, "-4,12", v.String())

	back, err := vertex.Parse(v.String())
	require.NoError(t, err)
	assert.Equal(t, v, back)
}

func TestParseLines_Strict(t *testing.T) {
	lines := []string{"1,1", "", "oops", "3,3"}

	res, err := vertex.ParseLines(lines, vertex.Strict)
	require.Error(t, err)

	var le *vertex.LineError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, 3, le.Line)
	assert.Equal(t, "oops", le.Text)
	assert.ErrorIs(t, err, vertex.ErrMalformedRecord)
	assert.Equal(t, []vertex.Vertex{{X: 1, Y: 1}}, res.Vertices)
}

func TestParseLines_Lenient(t *testing.T) {
	lines := []string{"1,1", "  ", "x,2", "3,3", "4;4"}

	res, err := vertex.ParseLines(lines, vertex.Lenient)
	require.NoError(t, err)
	assert.Equal(t, []vertex.Vertex{{X: 1, Y: 1}, {X: 3, Y: 3}}, res.Vertices)
	require.Len(t, res.Skipped, 2)
	assert.Equal(t, 3, res.Skipped[0].Line)
	assert.ErrorIs(t, res.Skipped[0], vertex.ErrInvalidCoordinate)
	assert.Equal(t, 5, res.Skipped[1].Line)
	assert.ErrorIs(t, res.Skipped[1], vertex.ErrMalformedRecord)
}

func TestRead(t *testing.T) {
	in := "7,1\n11,1\n\n11,7\r\n9,7\n"
	res, err := vertex.Read(strings.NewReader(in), vertex.Strict)
	require.NoError(t, err)
	assert.Len(t, res.Vertices, 4)
	assert.Empty(t, res.Skipped)
	assert.Equal(t, vertex.Vertex{X: 11, Y: 7}, res.Vertices[2])
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestRead_ReaderError(t *testing.T) {
	_, err := vertex.Read(failingReader{}, vertex.Lenient)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestParsePolicy(t *testing.T) {
	p, err := vertex.ParsePolicy("Lenient")
	require.NoError(t, err)
	assert.Equal(t, vertex.Lenient, p)
	assert.Equal(t, "lenient", p.String())

	p, err = vertex.ParsePolicy(" strict ")
	require.NoError(t, err)
	assert.Equal(t, vertex.Strict, p)

	_, err = vertex.ParsePolicy("whatever")
	assert.Error(t, err)
}
