package morse_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/morse"
	"github.com/aretw0/morse/pkg/adapters/memory"
	"github.com/aretw0/morse/pkg/domain"
)

func ExampleEnglishToMorse() {
	fmt.Printf("%q\n", morse.EnglishToMorse("SOS!"))
	// Output:
	// ". . .   --- --- ---   . . ."
}

func ExampleMorseToEnglish() {
	fmt.Println(morse.MorseToEnglish(". ---       --- ."))
	fmt.Printf("%q\n", morse.MorseToEnglish("xyz   abc"))
	// Output:
	// A N
	// ""
}

// ExampleNew_cache shows a Transcoder serving the second call from its cache.
func ExampleNew_cache() {
	tc, err := morse.New(morse.WithCache(memory.NewCache(16)))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		res, err := tc.Translate(ctx, domain.ToEnglish, ". . . .   . .")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(res.Output, res.Cached)
	}
	// Output:
	// HI false
	// HI true
}
