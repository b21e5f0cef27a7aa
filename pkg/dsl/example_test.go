package dsl_test

import (
	"errors"
	"fmt"

	"github.com/matzehuels/zonegen/pkg/dsl"
	"github.com/matzehuels/zonegen/pkg/layout"
)

func ExampleParse() {
	instr, err := dsl.Parse("h(1,2:v(3,4),5)")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(layout.Format(instr))
	fmt.Printf("%+v\n", layout.StatsOf(instr))
	// Output:
	// h(1, 2: v(3, 4), 5)
	// {Leaves:4 Splits:2 Depth:2}
}

func ExampleParseError_Snippet() {
	_, err := dsl.Parse("h(1, 2: v(3 4), 5)")
	var pe *dsl.ParseError
	if errors.As(err, &pe) {
		fmt.Println(pe)
		fmt.Println(pe.Snippet())
	}
	// Output:
	// parse error at 1:13: expected "," or ")", found "4"
	// h(1, 2: v(3 4), 5)
	//             ^
}
