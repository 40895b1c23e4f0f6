package permugo_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/permugo"
)

// Example demonstrates the basic validate-then-apply flow.
func Example() {
	ix, err := permugo.NewIndex([]int{2, 0, 1})
	if err != nil {
		log.Fatal(err)
	}

	data := []int{10, 20, 30}
	if err := permugo.Apply(data, ix); err != nil {
		log.Fatal(err)
	}

	fmt.Println(data)
	// Output: [30 10 20]
}

// Example_sortIndex demonstrates propagating one sort order across aligned
// columns.
func Example_sortIndex() {
	keys := []int{30, 10, 20}
	vals := []string{"thirty", "ten", "twenty"}

	ix := permugo.SortIndex(keys)
	permugo.MustApply(keys, ix)
	permugo.MustApply(vals, ix)

	fmt.Println(keys)
	fmt.Println(vals)
	// Output:
	// [10 20 30]
	// [ten twenty thirty]
}

// Example_invalidIndex demonstrates validation failure on a duplicate value.
func Example_invalidIndex() {
	_, err := permugo.NewIndex([]int{0, 0, 2})
	fmt.Println(err)
	// Output: invalid index: duplicate value 0 at position 1
}

// ExamplePermuter_ApplyAll demonstrates fanning one index out over multiple
// datasets.
func ExamplePermuter_ApplyAll() {
	ctx := context.Background()

	ix := permugo.MustIndex([]int{1, 2, 0})
	p := permugo.New[int](ix)

	a := []int{1, 2, 3}
	b := []int{10, 20, 30}

	if err := p.ApplyAll(ctx, a, b); err != nil {
		log.Fatal(err)
	}

	fmt.Println(a)
	fmt.Println(b)
	// Output:
	// [2 3 1]
	// [20 30 10]
}

// ExampleIndex_Cycles demonstrates inspecting the cycle structure of a
// permutation.
func ExampleIndex_Cycles() {
	ix := permugo.MustIndex([]int{1, 0, 2, 4, 3})

	fmt.Println(ix.Cycles())
	fmt.Println(ix.Stats().FixedPoints)
	// Output:
	// [[0 1] [3 4]]
	// 1
}

// ExampleIndex_Inverse demonstrates undoing a permutation.
func ExampleIndex_Inverse() {
	ix := permugo.MustIndex([]int{2, 0, 1})
	data := []string{"a", "b", "c"}

	permugo.MustApply(data, ix)
	fmt.Println(data)

	permugo.MustApply(data, ix.Inverse())
	fmt.Println(data)
	// Output:
	// [c a b]
	// [a b c]
}
