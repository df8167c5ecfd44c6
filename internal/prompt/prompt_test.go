package prompt

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	inputs  [][]float64
	saved   []string
	saveErr error
}

func (m *fakeModel) Predict(input []float64) ([]float64, error) {
	m.inputs = append(m.inputs, input)
	return []float64{input[0] + input[1]}, nil
}

func (m *fakeModel) Save(path string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, path)
	return nil
}

func (m *fakeModel) Topology() []int { return []int{2, 1} }

func TestStep_Test(t *testing.T) {
	m := &fakeModel{}
	var out strings.Builder
	p := New(strings.NewReader("test\n1.5\nabc\n2\n"), &out, m)

	require.NoError(t, p.Step())

	require.Len(t, m.inputs, 1)
	assert.Equal(t, []float64{1.5, 2}, m.inputs[0])
	assert.Contains(t, out.String(), "Enter 0. argument: ")
	assert.Contains(t, out.String(), "Enter 1. argument: ")
	assert.Contains(t, out.String(), `not a number: "abc"`)
	assert.Contains(t, out.String(), "answer: [3.5]")
}

func TestStep_Save(t *testing.T) {
	m := &fakeModel{}
	var out strings.Builder
	p := New(strings.NewReader("save\nmodel.rgrs\n"), &out, m)

	require.NoError(t, p.Step())
	assert.Equal(t, []string{"model.rgrs"}, m.saved)
	assert.Contains(t, out.String(), "written to file 'model.rgrs' successfully")
}

func TestStep_SaveFailureKeepsSession(t *testing.T) {
	m := &fakeModel{saveErr: errors.New("disk full")}
	var out strings.Builder
	p := New(strings.NewReader("save\nmodel.rgrs\n"), &out, m)

	require.NoError(t, p.Step())
	assert.Contains(t, out.String(), "save failed: disk full")
}

func TestStep_Unknown(t *testing.T) {
	var out strings.Builder
	p := New(strings.NewReader("train\n"), &out, &fakeModel{})

	require.NoError(t, p.Step())
	assert.Equal(t, Marker+"command 'train' not found, commands: {save, test, quit}\n", out.String())
}

func TestStep_Quit(t *testing.T) {
	var out strings.Builder
	p := New(strings.NewReader("quit\n"), &out, &fakeModel{})

	assert.ErrorIs(t, p.Step(), ErrQuit)
	assert.Contains(t, out.String(), "manual quit")
}

func TestStep_EOF(t *testing.T) {
	p := New(strings.NewReader(""), io.Discard, &fakeModel{})
	assert.ErrorIs(t, p.Step(), io.EOF)
}

func TestRun(t *testing.T) {
	m := &fakeModel{}
	var out strings.Builder
	p := New(strings.NewReader("help\ntest\n1\n1\nquit\ntest\n5\n5\n"), &out, m)

	require.NoError(t, p.Run())
	assert.Len(t, m.inputs, 1, "commands after quit must not run")
	assert.Equal(t, 3, strings.Count(out.String(), Marker))
}
