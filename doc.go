/*
Package morse is a bidirectional transcoder between plain text and International Morse Code.

Text is restricted to ASCII letters and digits; everything else is filtered
out before encoding. Morse streams use "." for a dot and "---" for a dash,
with one space between the tokens of a letter, three spaces between letters
and seven spaces between words.

# Concept

The core is two pure, total functions: EnglishToMorse and MorseToEnglish.
They never fail, hold no state and are safe to call from any number of
goroutines. Malformed input is filtered rather than rejected: unknown
characters are dropped when encoding and unknown tokens are skipped when
decoding.

The Transcoder wraps the same core for hosts that need more: an input guard
(size limit, UTF-8 validation), a translation cache (in memory or Redis),
lifecycle hooks for metrics and structured logging. It is what the HTTP,
MCP and REPL adapters run on.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/morse"
		"github.com/aretw0/morse/pkg/adapters/memory"
		"github.com/aretw0/morse/pkg/domain"
	)

	func main() {
		fmt.Println(morse.EnglishToMorse("sos")) // ". . .   --- --- ---   . . ."

		tc, err := morse.New(morse.WithCache(memory.NewCache(512)))
		if err != nil {
			log.Fatal(err)
		}

		res, err := tc.Translate(context.Background(), domain.ToEnglish, ". ---       --- .")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(res.Output) // "A N"
	}
*/
package morse
