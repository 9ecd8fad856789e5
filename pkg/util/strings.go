package util

// RemoveDuplicateStrings returns values with duplicates and empty strings
// removed, keeping first occurrence order.
func RemoveDuplicateStrings(values []string) []string {
	presentStrings := make(map[string]bool)
	var list []string

	for _, item := range values {
		if item == "" || presentStrings[item] {
			continue
		}

		presentStrings[item] = true
		list = append(list, item)
	}

	return list
}
