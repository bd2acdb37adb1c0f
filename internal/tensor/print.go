package tensor

import (
	"bufio"
	"fmt"
	"io"
)

// Fprint writes a readable dump of t: a "Tensor(m, n)" header, then one line
// per row with values formatted as "%5.2f, ", then a blank line.
func Fprint(w io.Writer, t *Tensor) error {
	if !t.allocated {
		return fmt.Errorf("print: %w", ErrNotAllocated)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Tensor(%d, %d)\n", t.rows, t.cols)
	writeRows(bw, t, "%5.2f, ")
	return bw.Flush()
}

// FprintRaw writes the rows of t with values formatted as "%.3e ", then a
// blank line. The layout matches the body of the text file format.
func FprintRaw(w io.Writer, t *Tensor) error {
	if !t.allocated {
		return fmt.Errorf("print_raw: %w", ErrNotAllocated)
	}
	bw := bufio.NewWriter(w)
	writeRows(bw, t, "%.3e ")
	return bw.Flush()
}

func writeRows(w *bufio.Writer, t *Tensor, format string) {
	for i := 0; i < t.rows; i++ {
		for _, v := range t.data[i*t.cols : (i+1)*t.cols] {
			fmt.Fprintf(w, format, v)
		}
		w.WriteByte('\n')
	}
	w.WriteByte('\n')
}
