// Package calc implements the expression engine of a scientific calculator.
//
// An expression is a single line of arithmetic as a person would type it on a
// calculator keypad: "2+3*4", "sin(30)^2 + cos(30)^2", "5!/3", "ans*2".
// Operators, from least to most binding, are + and -; *, / and %; ^, which is
// right-associative; unary + and -; and the postfix factorial !. Functions
// sqrt, sin, cos, tan, log and ln take one parenthesized argument. The names
// pi, e and ans are constants, the last being the most recently committed
// answer of the Evaluator. Names are case-insensitive.
//
// The keypad glyphs ×, ÷, √ and π are accepted in place of *, /, sqrt and pi.
//
// Results are float64. Invalid input and the few guarded domain errors, such
// as division by zero, produce an error; other undefined arithmetic produces
// NaN or an infinity as an ordinary result.
//
package calc
