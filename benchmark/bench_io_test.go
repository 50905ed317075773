package benchmark

import (
	"bytes"
	"testing"

	"github.com/fatih/color"

	flagetio "github.com/dzonerzy/go-flaget/io"
)

// Category: io

func BenchmarkIO_Style(b *testing.B) {
	m := flagetio.New().ForceColor()
	style := flagetio.NewStyle(color.FgHiRed).Bold()
	s := "hello world"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = style.Sprint(m, s)
	}
}

func BenchmarkIO_Logger(b *testing.B) {
	buf := &bytes.Buffer{}
	m := flagetio.New().WithOut(buf).WithErr(buf)

	b.Run("Plain", func(b *testing.B) {
		log := flagetio.NewLogger(m.NoColor()).WithFormat(flagetio.LogFormatTagged)
		for i := 0; i < b.N; i++ {
			log.Info("parsed %d tokens", i)
			buf.Reset()
		}
	})
	b.Run("Colored", func(b *testing.B) {
		log := flagetio.NewLogger(m.ForceColor())
		for i := 0; i < b.N; i++ {
			log.Info("parsed %d tokens", i)
			buf.Reset()
		}
	})
	b.Run("Filtered", func(b *testing.B) {
		log := flagetio.NewLogger(m)
		for i := 0; i < b.N; i++ {
			log.Debug("parsed %d tokens", i)
		}
	})
}
