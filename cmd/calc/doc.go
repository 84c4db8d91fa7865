/*
Calc is a menu-driven calculator for the terminal.

It shows a numbered menu of operations, reads the operands it needs
one line at a time, and prints the result to two decimal places:

	% calc
	===============================
	      CONSOLE CALCULATOR
	===============================

	Select an operation:
	1. Addition (+)
	2. Subtraction (-)
	3. Multiplication (*)
	4. Division (/)
	5. Power (^)
	6. Square Root (√)
	7. Exit
	Enter your choice (1-7): 4
	Enter first number: 20
	Enter second number: 4

	Result: 20.00 / 4.00 = 5.00

	Do you want to perform another calculation? (y/n): n

	%

Dividing by zero or taking the square root of a negative number
prints an error instead of a result. A menu choice outside the
menu prints a message and shows the menu again. Text that does
not parse as a finite number, or that is longer than the line
limit, is asked for again.

Answering anything other than y or Y at the continuation prompt
ends the session, as does choosing Exit or reaching the end of
the input. The exit status is zero in all these cases; if reading
or writing fails part way through, the error is logged and the
status is still zero.

Usage:

	calc [flags]

The flags are:

	-color
		colour the banner, results and errors with ANSI escape sequences.
	-acme
		copy the session transcript into a new acme window named +calc.
	-debug
		log each step of the session to standard error.
	-maxline n
		reject input lines longer than n bytes (default 50).
	-selftest
		run the built-in table of reference calculations,
		print a report and exit with status 1 if any fail.
*/
package main
