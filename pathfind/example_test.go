package pathfind_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/costar/cast"
	"github.com/katalvlaran/costar/pathfind"
)

func ExampleEngine_ActorPath() {
	data := "Actor\tMovie\tYear\n" +
		"A\tM1\t2000\nB\tM1\t2000\n" +
		"B\tM2\t2005\nC\tM2\t2005\n"
	ix, _ := cast.Load(strings.NewReader(data), nil)

	g := pathfind.Build(ix, pathfind.Unweighted, pathfind.DefaultBaseYear)
	line, _ := pathfind.NewEngine(g, pathfind.Unweighted).ActorPath("A", "C")
	fmt.Println(line)
	// Output:
	// (A)--[M1#@2000]-->(B)--[M2#@2005]-->(C)
}
