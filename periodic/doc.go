/*
Package periodic sums the integers in a range whose decimal digits are a
repeated block, without walking the range.

A number like 1212 or 987987 is a block written twice; SumDoubles adds those
up. A number like 111111, 121212 or 123123 is a block written k >= 2 times;
SumRepeats adds those up, counting each value once even when it splits into
blocks more than one way.

Both work by generating candidates directly. For a block length l and repeat
count k the candidates are p * (1 + 10^l + 10^2l + ...) for every l-digit
block p, and those grow with p, so each family is scanned from the first
block at or above the start of the range to the first one past its end.
Arithmetic is checked: a multiplier or product that would overflow 64 bits
ends its family instead of wrapping around.
*/
package periodic
