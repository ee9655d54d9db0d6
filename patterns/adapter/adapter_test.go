package adapter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrinterAdapter_TranslatesTheCall(t *testing.T) {
	var p Printer = PrinterAdapter{Prefix: "log"}
	require.Equal(t, "LOG: HELLO", p.Print("hello"))
}

func TestPrinterAdapter_DefaultPrefix(t *testing.T) {
	var p Printer = PrinterAdapter{}
	require.Equal(t, "OUT: HELLO", p.Print("hello"))
}
