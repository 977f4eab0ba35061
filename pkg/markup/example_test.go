package markup_test

import (
	"fmt"

	"github.com/arthur-debert/tagtmpl/pkg/markup"
)

func ExampleParse() {
	nodes := markup.Parse("{b}hello{/r} world")
	leaf, ok := nodes[0].(markup.Leaf)
	fmt.Println(len(nodes), ok, string(leaf))
	// Output: 1 true hello world
}

func ExampleParse_unwind() {
	fmt.Println(markup.StripTags("{b}bold{/x} still{/b}"), len(markup.Parse("{b}bold{/x} still{/b}")))
	// Output: bold still 1
}
