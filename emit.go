package hmapsizes

import (
	"fmt"
	"io"
	"strconv"
)

// structDecl opens the emitted array. It follows the witness list and is
// itself followed by one initializer line per entry.
const structDecl = `
struct HMapInfoT {
    std::uint32_t tcap; // capacity limit
    std::uint32_t tlen; // table size / multiplier
    std::uint32_t bias; // bias (actually de-bias correction helper)
};
static const HMapInfoT mapInfo[] = {

`

// WriteTo renders the table as C++ source text: the witness list, the
// HMapInfoT declaration, one aligned initializer per entry and the mapSize
// count. The output is deterministic. WriteTo does not validate the table.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(t.appendText(nil))
	return int64(n), err
}

// appendText appends the rendered table to dst.
func (t *Table) appendText(dst []byte) []byte {
	dst = append(dst, '[')
	for i, q := range t.witnesses {
		if i > 0 {
			dst = append(dst, ", "...)
		}
		dst = strconv.AppendUint(dst, uint64(q), 10)
	}
	dst = append(dst, "]\n"...)

	dst = append(dst, structDecl...)
	for _, e := range t.entries {
		dst = fmt.Appendf(dst, "    /* %2d */ { %10d, %10d, %10d },\n", e.Power, e.Limit, e.Size, e.Bias)
	}
	dst = fmt.Appendf(dst, "};\nstatic const size_t mapSize{ %d };\n", len(t.entries))
	return dst
}
