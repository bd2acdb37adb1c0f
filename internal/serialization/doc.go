// Package serialization saves and loads Nexum tensors.
//
// Two on-disk formats are supported.
//
// Text (any extension other than .bin):
//
//	<rows> <cols>
//	<v00> <v01> ... (each value as %.3e followed by a space)
//	...
//	(blank line)
//
// Text files keep about three significant digits. Readers parse the two
// header integers and then exactly rows*cols whitespace-separated values;
// line structure is not significant.
//
// Binary (.bin):
//
//	[8 bytes: rows (uint64)]
//	[8 bytes: cols (uint64)]
//	[rows*cols × 8 bytes: float64 elements, row-major]
//
// Binary files use the host byte order and carry no magic or checksum. They
// round-trip bit for bit on the same architecture.
//
// Example usage:
//
//	if err := serialization.Save("weights.bin", w); err != nil {
//	    log.Fatal(err)
//	}
//
//	var w2 tensor.Tensor
//	if err := serialization.Load("weights.bin", &w2); err != nil {
//	    log.Fatal(err)
//	}
//
// Readers fill the destination through Alloc, so a destination with a
// matching element count keeps its buffer. Other destinations are filled from
// a staging buffer that grows as elements arrive; a header claiming more
// elements than the input holds fails with ErrTruncated and never sizes an
// allocation. Header errors leave the destination untouched; a failure while
// decoding elements leaves it empty. Writes are not atomic.
//
// WriteTextBody, WriteBinaryBody, TextDecoder.DecodeBody and ReadBinaryBody
// handle the element payload alone, for containers that store the shape
// elsewhere.
package serialization
