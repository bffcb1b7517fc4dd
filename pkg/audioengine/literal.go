package audioengine

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"hdxwave/pkg/spec"
)

type LiteralOptions struct {
	Name            string
	TrailingNewline bool
	// Columns > 0 memecah daftar menjadi baris-baris rata kanan
	Columns int
}

func DefaultLiteralOptions() LiteralOptions {
	return LiteralOptions{Name: spec.ArrayName, TrailingNewline: true}
}

// WriteLiteral menulis tabel sebagai array literal:
//
//	const WAV: [u8; 75] = [128, 138, ..., 133];
func WriteLiteral(w io.Writer, table []uint8, opts LiteralOptions) error {
	if len(table) == 0 {
		return fmt.Errorf("empty table")
	}
	name := opts.Name
	if name == "" {
		name = spec.ArrayName
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "const %s: [%s; %d] = [", name, spec.ElementType, len(table))

	if opts.Columns > 0 {
		writeWrapped(bw, table, opts.Columns)
	} else {
		for i, s := range table {
			if i > 0 {
				bw.WriteString(", ")
			}
			bw.WriteString(strconv.Itoa(int(s)))
		}
	}

	bw.WriteString("];")
	if opts.TrailingNewline {
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func writeWrapped(bw *bufio.Writer, table []uint8, columns int) {
	for i, s := range table {
		if i%columns == 0 {
			bw.WriteString("\n" + spec.WrapIndent)
		} else {
			bw.WriteByte(' ')
		}
		fmt.Fprintf(bw, "%*d,", spec.WrapCellWidth, s)
	}
	bw.WriteByte('\n')
}
