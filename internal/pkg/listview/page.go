package listview

const DefaultPageSize = 10

var DefaultPageSizes = []int{5, 10, 20, 50}

// PageCount is the number of pages needed for n rows.
func PageCount(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// ClampPage bounds page to [0, last page].
func ClampPage(n, page, size int) int {
	last := PageCount(n, size) - 1
	if page > last {
		page = last
	}
	if page < 0 {
		page = 0
	}
	return page
}

// Window returns the half-open slice bounds of page over n rows and the
// page index actually used.
func Window(n, page, size int) (start, end, clamped int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	clamped = ClampPage(n, page, size)
	start = clamped * size
	if start > n {
		start = n
	}
	end = start + size
	if end > n {
		end = n
	}
	return start, end, clamped
}

func containsSize(sizes []int, size int) bool {
	for _, s := range sizes {
		if s == size {
			return true
		}
	}
	return false
}
