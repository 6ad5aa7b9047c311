package replacer_test

import (
	"fmt"
	"log"

	"github.com/erraggy/recase/replacer"
)

func ExampleReplace() {
	fmt.Println(replacer.Replace("let fooBar = foo_bar + FooBar", "fooBar", "bazQux"))
	// Output: let bazQux = baz_qux + BazQux
}

func ExampleReplacer_Variants() {
	r, err := replacer.New("user_id", "account_key")
	if err != nil {
		log.Fatal(err)
	}
	for _, v := range r.Variants() {
		fmt.Printf("%-10s %s -> %s\n", v.Convention, v.Needle, v.Replacement)
	}
	// Output:
	// camelCase  userId -> accountKey
	// PascalCase UserId -> AccountKey
	// snake_case user_id -> account_key
	// kebab-case user-id -> account-key
}
