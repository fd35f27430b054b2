package parse

// validNumber reports whether v matches the JSON number grammar:
//
//	-? (0 | [1-9][0-9]*) (. [0-9]+)? ([eE] [+-]? [0-9]+)?
func validNumber(v string) bool {
	i := 0
	if i < len(v) && v[i] == '-' {
		i++
	}
	switch {
	case i < len(v) && v[i] == '0':
		i++
	case i < len(v) && v[i] >= '1' && v[i] <= '9':
		i += digits(v[i:])
	default:
		return false
	}
	if i < len(v) && v[i] == '.' {
		i++
		n := digits(v[i:])
		if n == 0 {
			return false
		}
		i += n
	}
	if i < len(v) && (v[i] == 'e' || v[i] == 'E') {
		i++
		if i < len(v) && (v[i] == '+' || v[i] == '-') {
			i++
		}
		n := digits(v[i:])
		if n == 0 {
			return false
		}
		i += n
	}
	return i == len(v)
}

func digits(v string) int {
	i := 0
	for i < len(v) && v[i] >= '0' && v[i] <= '9' {
		i++
	}
	return i
}
