package bst_test

import (
	"fmt"

	"github.com/katalvlaran/ancestry/bst"
)

func ExampleTree() {
	tr := bst.New(3, 1, 2, 4, 5, 6)
	fmt.Println(tr.Values(), tr.Height())
	fmt.Println(tr)
	// Output:
	// [1 2 3 4 5 6] 4
	// 3
	//   L: 1
	//     R: 2
	//   R: 4
	//     R: 5
	//       R: 6
}
