/*
Package cons provides pull-based adapters over Go iterators (iter.Seq) and slices
for walking consecutive elements.

It offers two independent adapters:

  - **Windowing**: [Cons] yields overlapping windows of N consecutive elements,
    advancing one element at a time, like Ruby's Enumerable#each_cons.
  - **Run grouping**: [Group] yields maximal runs of consecutive equal elements
    as sub-slices of the input.

Both come with a stateful form that has an explicit Next method ([New], [NewGroup]) and a
range-over-func form ([EachCons], [ConsGroup]). The fluent [Seq] and [Slice] types
give any sequence or slice the same operations as methods.

# Windows

A window is a []*T of exactly the requested size. Each source element is stored
once and every window covering it holds the same pointer, so overlapping windows
share elements instead of copying them. A source shorter than the window size
produces no windows at all.

	c, err := cons.New(2, slices.Values([]int{1, 2, 3}))
	if err != nil {
		return err
	}
	for w := range c.All() {
		fmt.Println(cons.Values(w)) // [1 2], then [2 3]
	}

A window size below 1 is rejected with [ErrInvalidSize].

# Runs

A run is a sub-slice of the input whose capacity is capped at its length, so
appending to it never overwrites the next run.

	for run := range cons.ConsGroup([]int{1, 1, 2, 3, 3}) {
		fmt.Println(run) // [1 1], [2], [3 3]
	}

# Concurrency

Adapters are not safe for concurrent use. Confine each instance to a single
goroutine. A [Cons] created with [New] pulls its source through iter.Pull, so a
caller that stops consuming before exhaustion must call [Cons.Stop]. [Cons.All]
and [Cons.Iterator] handle this automatically.
*/
package cons
