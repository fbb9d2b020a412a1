package device

// pageChunk returns the number of bytes that one transaction starting at
// address may transfer without crossing a page boundary, capped at
// remaining. Both the write and read paths derive their decomposition
// from this single function so the address math cannot diverge.
func pageChunk(address, remaining int) int {
	n := PageSize - address%PageSize
	if n > remaining {
		return remaining
	}
	return n
}
