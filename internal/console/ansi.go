package console

import "strings"

// parseStyleCodeToANSI parses fg:bg:flags format and returns ANSI codes.
// Colors may be the 16 ANSI names (with optional "bright-" prefix) or hex
// values, which are downgraded through the detected terminal profile.
func parseStyleCodeToANSI(content string) string {
	if content == "-" {
		return CodeReset
	}

	parts := strings.Split(content, ":")
	var codes strings.Builder

	// Part 0: foreground color
	if len(parts) > 0 && parts[0] != "" && parts[0] != "-" {
		name := strings.ToLower(parts[0])
		switch {
		case strings.HasPrefix(name, "#"):
			if c := preferredProfile.Color(name); c != nil {
				codes.WriteString(wrapSequence(c.Sequence(false)))
			}
		default:
			if code, ok := attributeMap[name]; ok {
				codes.WriteString(code)
			} else if code, ok := ansiMap[name]; ok {
				codes.WriteString(code)
			}
		}
	}

	// Part 1: background color
	if len(parts) > 1 && parts[1] != "" && parts[1] != "-" {
		name := strings.ToLower(parts[1])
		switch {
		case strings.HasPrefix(name, "#"):
			if c := preferredProfile.Color(name); c != nil {
				codes.WriteString(wrapSequence(c.Sequence(true)))
			}
		default:
			if code, ok := ansiMap[name+"bg"]; ok {
				codes.WriteString(code)
			}
		}
	}

	// Part 2: flags, one character each (B=bold, U=underline, lowercase = off)
	if len(parts) > 2 && parts[2] != "" {
		for _, flag := range parts[2] {
			if code, ok := ansiMap[string(flag)]; ok {
				codes.WriteString(code)
			}
		}
	}

	return codes.String()
}

// wrapSequence ensures a color sequence part is wrapped in CSI delimiters
func wrapSequence(seq string) string {
	if seq == "" {
		return ""
	}
	if strings.HasPrefix(seq, "\x1b[") {
		return seq
	}
	return "\033[" + seq + "m"
}
