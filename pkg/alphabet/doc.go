/*
Package alphabet holds the lookup tables between symbols and Morse codes.

A Table maps each of the 36 symbols a-z and 0-9 to a code written in wire
notation: "." for a dot, "---" for a dash, tokens separated by one space.
The reverse index maps each code back to its symbol. Tables are immutable
once built and safe for concurrent use.

Two tables are built in:

  - International: the ITU-R M.1677 codes.
  - Legacy: the data set shipped by earlier releases, kept verbatim so text
    encoded by them still decodes. Several of its codes deviate from the
    standard (C, 1, 2, 3 and 8).

New enforces that no two symbols share a code, so a table with a collision
is rejected at construction instead of decoding to whichever symbol happened
to be indexed last.
*/
package alphabet
