package ipo_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/covergen/coverage"
	"github.com/katalvlaran/covergen/ipo"
)

// ExampleNew builds a pairwise array for four parameters of three values each.
// Nine rows is the minimum for this shape.
func ExampleNew() {
	domains := [][]any{
		{"a", "b", "c"},
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	g, err := ipo.New(domains, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	rows := g.Result()
	for _, row := range rows {
		fmt.Println(row)
	}
	fmt.Println("complete:", coverage.Check(domains, rows, 2) == nil)
	// Output:
	// [a 1 4 7]
	// [a 2 5 8]
	// [a 3 6 9]
	// [b 1 6 8]
	// [b 2 4 9]
	// [b 3 5 7]
	// [c 1 5 9]
	// [c 2 6 7]
	// [c 3 4 8]
	// complete: true
}

// ExampleGenerator_Rows shows the structure before the random fill: "_"
// marks a slot no combination required.
func ExampleGenerator_Rows() {
	g, err := ipo.New([][]bool{{false, true}, {false, true}, {false, true}, {false, true}}, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	rows, err := g.Rows(context.Background())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range rows {
		fmt.Println(r)
	}
	st := g.Stats()
	fmt.Printf("rows=%d seeded=%d flushed=%d\n", st.Rows, st.Seeded, st.Flushed)
	// Output:
	// [0 0 0 0]
	// [0 1 1 1]
	// [1 0 1 1]
	// [1 1 0 0]
	// [_ _ 0 1]
	// [_ _ 1 0]
	// rows=6 seeded=4 flushed=2
}

// ExampleWithEvictionThreshold compares the row count with and without the
// eviction knob on thirteen ternary parameters.
func ExampleWithEvictionThreshold() {
	domains := make([][]int, 13)
	for p := range domains {
		domains[p] = []int{0, 1, 2}
	}

	plain, _ := ipo.New(domains, 2)
	knob, _ := ipo.New(domains, 2, ipo.WithEvictionThreshold(2))

	fmt.Println("plain:", len(plain.Result()))
	fmt.Println("evict:", len(knob.Result()), "evicted", knob.Stats().Evicted)
	// Output:
	// plain: 24
	// evict: 23 evicted 8
}
