package common

// ContainsAny returns true if list contains any of the values.
func ContainsAny(list []string, values ...string) bool {
	for _, item := range list {
		for _, v := range values {
			if item == v {
				return true
			}
		}
	}
	return false
}
