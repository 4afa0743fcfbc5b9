package terminal

import (
	"bytes"
	"errors"
	"testing"

	"github.com/skillswap/skillswap-cli/internal/utils/test/assert"
)

func TestUIPrint(t *testing.T) {
	t.Run("should write info logs to the out writer and error logs to the err writer", func(t *testing.T) {
		out := new(bytes.Buffer)
		errOut := new(bytes.Buffer)

		ui := NewUI(UIConfig{DisableColors: true}, nil, out, errOut)

		infoLog := NewTextLog("all good")
		infoLog.Time = staticTime
		errorLog := NewErrorLog(errors.New("something bad happened"))
		errorLog.Time = staticTime

		ui.Print(infoLog, errorLog)

		assert.Equal(t, "01:23:45 UTC INFO  all good\n", out.String())
		assert.Equal(t, "01:23:45 UTC ERROR something bad happened\n", errOut.String())
	})

	t.Run("should write json output when configured to", func(t *testing.T) {
		out := new(bytes.Buffer)

		ui := NewUI(UIConfig{OutputFormat: OutputFormatJSON}, nil, out, out)

		log := NewTextLog("all good")
		log.Time = staticTime

		ui.Print(log)

		assert.Equal(t, `{"time":"1989-06-22T01:23:45Z","level":"info","message":"all good"}`+"\n", out.String())
	})
}

func TestUIConfirm(t *testing.T) {
	t.Run("should proceed without prompting when auto confirm is set", func(t *testing.T) {
		ui := NewUI(UIConfig{AutoConfirm: true}, nil, new(bytes.Buffer), new(bytes.Buffer))

		proceed, err := ui.Confirm("are you sure?")
		assert.Nil(t, err)
		assert.True(t, proceed, "auto confirm must proceed")
	})
}
