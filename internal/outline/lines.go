package outline

// SplitLines splits text into lines, keeping each line's terminator.
// "\r\n", "\n" and "\r" all end a line. A trailing line without a
// terminator is kept as is.
func SplitLines(text string) []string {
	var lines []string

	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i+1])
			start = i + 1
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			lines = append(lines, text[start:i+1])
			start = i + 1
		}
	}

	if start < len(text) {
		lines = append(lines, text[start:])
	}

	return lines
}
