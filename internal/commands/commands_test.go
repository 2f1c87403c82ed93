package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line   string
		want   []string
		wantOK bool
	}{
		{"cmd move forward", []string{"move", "forward"}, true},
		{"/select --id 3", []string{"select", "--id", "3"}, true},
		{"cmd ", nil, true},
		{"cmd   list  ", []string{"list"}, true},
		{"hello there", nil, false},
		{"CMD list", nil, false},
	}
	for _, tt := range tests {
		args, ok := Parse(tt.line)
		assert.Equal(t, tt.wantOK, ok, tt.line)
		assert.Equal(t, tt.want, args, tt.line)
	}
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	fs := NewFlagSet("select")
	id := fs.Int("id", -1, "marker id")
	var gotID int
	var gotArgs []string
	r.Register("select", "select --id N", fs, func(args []string) error {
		gotID, gotArgs = *id, args
		return nil
	})

	require.NoError(t, r.Execute([]string{"select", "--id", "4", "extra", "words"}))
	assert.Equal(t, 4, gotID)
	assert.Equal(t, []string{"extra", "words"}, gotArgs)

	// flags reset between runs
	require.NoError(t, r.Execute([]string{"select"}))
	assert.Equal(t, -1, gotID)
}

func TestExecuteErrors(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	r.Register("fail", "", nil, func([]string) error { return boom })

	assert.ErrorIs(t, r.Execute(nil), ErrMissingSubcommand)
	assert.ErrorIs(t, r.Execute([]string{"nope"}), ErrUnknownCommand)
	assert.ErrorIs(t, r.Execute([]string{"fail"}), boom)
	assert.Error(t, r.Execute([]string{"fail", "--undefined"}))
}

func TestRun(t *testing.T) {
	r := NewRegistry()
	calls := 0
	r.Register("list", "list", nil, func([]string) error {
		calls++
		return nil
	})

	handled, err := r.Run("just chatting")
	assert.False(t, handled)
	assert.NoError(t, err)

	handled, err = r.Run("/list")
	assert.True(t, handled)
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestNamesAndUsage(t *testing.T) {
	r := NewRegistry()
	r.Register("grid", "grid --show|--hide", nil, func([]string) error { return nil })
	r.Register("fps", "fps --show|--hide", nil, func([]string) error { return nil })
	assert.Equal(t, []string{"fps", "grid"}, r.Names())
	assert.Equal(t, "grid --show|--hide", r.Usage("grid"))
	assert.Equal(t, "", r.Usage("move"))
}
