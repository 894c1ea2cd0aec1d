/*
Package codec converts between plain text and Morse streams.

A Morse stream is built from tokens ("." and "---") joined by one space
inside a letter, three spaces between letters and seven spaces between
words:

	hi there -> ". . . .   . .       ---   . . . .   .   . --- .   ."

Encoding first reduces the input to canonical text (see Sanitize): lowercase
letters and digits separated by single spaces. Anything else is dropped.

Decoding is a best-effort filter rather than a validator. Tokens that are not
in the alphabet are skipped and words that decode to nothing are omitted, so
any input yields some, possibly empty, output. Neither direction returns an
error.

All functions are pure and a Codec is safe for concurrent use.
*/
package codec
