package actor

// memo holds one lazily computed value
type memo[T any] struct {
	value T
	set   bool
}

func (m *memo[T]) get(compute func() T) T {
	if !m.set {
		m.value = compute()
		m.set = true
	}
	return m.value
}

type title struct {
	text string
	ok   bool
}

// cache holds every memoized query; Reset replaces it wholesale
type cache struct {
	classes    memo[[]int]
	classNames memo[[]string]
	classTitle memo[title]
	dualSwap   memo[bool]
	kitIndex   memo[int]
	levels     memo[[]int]
	nextLevels memo[[]int]
	numClasses memo[int]
}
